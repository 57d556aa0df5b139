package combat

// Shift returns a copy of dist with offset added to every Value. A uniform
// shift preserves ordering, so a canonical input stays canonical.
func Shift(dist Distribution, offset int64) Distribution {
	out := make(Distribution, len(dist))
	for i, o := range dist {
		out[i] = Outcome{Value: o.Value + offset, Probability: o.Probability}
	}
	return out
}

// ClampZeros floors dist at zero damage: every negative Value becomes
// exactly 0 with its probability mass intact, then the result is crushed so
// all the zero mass ends up in a single entry.
func ClampZeros(dist Distribution) Distribution {
	floored := make(Distribution, len(dist))
	for i, o := range dist {
		if o.Value < 0 {
			o.Value = 0
		}
		floored[i] = o
	}
	return CrushDuplicates(floored)
}

// AverageDamage returns the expected value of dist. The input must carry
// its full probability mass; nothing is re-normalized.
func AverageDamage(dist Distribution) float64 {
	var avg float64
	for _, o := range dist {
		avg += float64(o.Value) * o.Probability
	}
	return avg
}

// HitChance returns the probability of dealing any damage at all:
// one minus the mass at zero. dist must be canonical so the first entry is
// the minimum value. If the minimum is not zero there is no zero-damage
// outcome and the chance is 1. An empty distribution also reports 1; see
// the errors package for how servers fence that off before it gets here.
func HitChance(dist Distribution) float64 {
	if len(dist) == 0 {
		return 1
	}
	if dist[0].Value != 0 {
		return 1
	}
	return 1 - dist[0].Probability
}

// CalculationResult is the summary of one attack-versus-defense evaluation.
type CalculationResult struct {
	AverageDamage float64
	HitChance     float64
	Crushed       Distribution
}

// FullCalculation evaluates an attack of atkDice six-sided dice plus
// baseAttackBonus against a defense of resistance six-sided dice, flooring
// damage at zero.
//
// Resistance shows up twice: the defense distribution is subtracted from
// the attack distribution, and resistance is then also added back as a flat
// bonus next to baseAttackBonus. That matches the behavior this engine
// replaces and stands until the product rules say otherwise.
//
// cover is accepted but not yet part of any computation.
func (c *Calculator) FullCalculation(resistance, baseAttackBonus, atkDice, cover int64) CalculationResult {
	attack := c.NDice(atkDice)
	defense := c.NDice(resistance)
	adjusted := Subtract(attack, defense)
	finished := Shift(adjusted, baseAttackBonus+resistance)
	crushed := ClampZeros(finished)
	return CalculationResult{
		AverageDamage: AverageDamage(crushed),
		HitChance:     HitChance(crushed),
		Crushed:       crushed,
	}
}
