package combat

import (
	"math"
	"sort"
)

// Outcome is one entry of a sparse probability mass function: an integer
// result and the probability of rolling it.
type Outcome struct {
	Value       int64
	Probability float64
}

// Distribution is a sparse probability mass function over integer results.
// A distribution is canonical when it is sorted ascending by Value and no
// Value appears twice. Probabilities are expected to sum to 1.0; nothing in
// this package re-normalizes or checks that.
type Distribution []Outcome

// SortByValue returns a copy of dist sorted ascending by Value. The input is
// left untouched so cached distributions can be shared between callers.
func SortByValue(dist Distribution) Distribution {
	out := make(Distribution, len(dist))
	copy(out, dist)
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// CrushDuplicates returns the canonical form of dist: sorted ascending by
// Value with equal Values merged by summing their probability mass.
func CrushDuplicates(dist Distribution) Distribution {
	if len(dist) == 0 {
		return Distribution{}
	}
	sorted := SortByValue(dist)
	out := make(Distribution, 0, len(sorted))
	out = append(out, sorted[0])
	for _, o := range sorted[1:] {
		last := &out[len(out)-1]
		if o.Value == last.Value {
			last.Probability += o.Probability
			continue
		}
		out = append(out, o)
	}
	return out
}

// BaseCase returns the distribution of a single six-sided die: 1..6, each
// with probability exactly 1/6.
func BaseCase() Distribution {
	base := make(Distribution, 0, sides)
	for face := int64(1); face <= sides; face++ {
		base = append(base, Outcome{Value: face, Probability: 1.0 / sides})
	}
	return base
}

// ClampInt coerces n into [min, max]. Values are floored, out-of-range
// values are clamped, and NaN or -Inf collapse to min. There is no error
// path; malformed input degrades to the nearest bound.
func ClampInt(n float64, min, max int64) int64 {
	if math.IsNaN(n) {
		return min
	}
	n = math.Floor(n)
	if n < float64(min) {
		return min
	}
	if n > float64(max) {
		return max
	}
	return int64(n)
}
