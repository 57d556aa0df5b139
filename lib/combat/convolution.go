package combat

import "sort"

// Add returns the canonical distribution of A+B for independent random
// variables with distributions a and b. Mass is accumulated in a map keyed
// by the exact integer sum, so equal sums always land in the same bucket
// regardless of how their probabilities round.
func Add(a, b Distribution) Distribution {
	acc := make(map[int64]float64, len(a)+len(b))
	for _, o1 := range a {
		for _, o2 := range b {
			acc[o1.Value+o2.Value] += o1.Probability * o2.Probability
		}
	}
	out := make(Distribution, 0, len(acc))
	for v, p := range acc {
		out = append(out, Outcome{Value: v, Probability: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// Subtract returns the canonical distribution of A-B for independent random
// variables with distributions a and b. The cross product is collected as a
// flat list of differences and merged afterwards; duplicate differences are
// expected and crushed in one pass.
func Subtract(a, b Distribution) Distribution {
	flat := make(Distribution, 0, len(a)*len(b))
	for _, o1 := range a {
		for _, o2 := range b {
			flat = append(flat, Outcome{
				Value:       o1.Value - o2.Value,
				Probability: o1.Probability * o2.Probability,
			})
		}
	}
	return CrushDuplicates(flat)
}
