package combat

import (
	"fmt"
	"strconv"
	"strings"
)

// ToPMF converts an engine distribution to its wire form.
func ToPMF(dist Distribution) *PMF {
	out := &PMF{}
	for _, o := range dist {
		out.Outcomes = append(out.Outcomes, &PMFOutcome{Value: o.Value, Probability: o.Probability})
	}
	return out
}

// FromPMF converts a wire distribution back to the engine form. Nil
// outcomes are skipped rather than rejected.
func FromPMF(pmf *PMF) Distribution {
	if pmf == nil {
		return Distribution{}
	}
	out := make(Distribution, 0, len(pmf.Outcomes))
	for _, o := range pmf.Outcomes {
		if o == nil {
			continue
		}
		out = append(out, Outcome{Value: o.Value, Probability: o.Probability})
	}
	return out
}

// DistributionString formats a distribution as one line per outcome with
// percentages, for humans reading terminals and debug logs.
func DistributionString(dist Distribution) string {
	var s []string
	for _, o := range dist {
		s = append(s, fmt.Sprintf("%s: %s%%", strconv.FormatInt(o.Value, 10), strconv.FormatFloat(o.Probability*100, 'f', 2, 64)))
	}
	return strings.Join(s, "\n")
}

// StringFromCalculationResponse parses the response from combat-server into
// a human readable format.
func (cr *CalculationResponse) StringFromCalculationResponse() string {
	var s []string
	s = append(s, fmt.Sprintf("average damage = *%s*", strconv.FormatFloat(cr.AverageDamage, 'f', 2, 64)))
	s = append(s, fmt.Sprintf("hit chance = *%s%%*", strconv.FormatFloat(cr.HitChance*100, 'f', 1, 64)))
	if cr.Crushed != nil && len(cr.Crushed.Outcomes) > 0 {
		s = append(s, DistributionString(FromPMF(cr.Crushed)))
	}
	return strings.Join(s, "\n")
}
