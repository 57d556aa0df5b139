package main

import (
	"bytes"
	"strconv"

	"github.com/wcharczuk/go-chart"

	"github.com/aasmall/combatmagic/lib/combat"
	errors "github.com/aasmall/combatmagic/lib/combat-errors"
)

// renderDistributionChart renders a damage distribution as a PNG bar chart,
// one bar per outcome, heights in percent.
func renderDistributionChart(dist combat.Distribution) ([]byte, error) {
	if len(dist) == 0 {
		return nil, errors.NewCalcError("cannot chart an empty distribution", errors.InvalidDistribution, nil)
	}
	bars := make([]chart.Value, 0, len(dist))
	for _, o := range dist {
		bars = append(bars, chart.Value{
			Value: o.Probability * 100,
			Label: strconv.FormatInt(o.Value, 10),
		})
	}
	sbc := chart.BarChart{
		Title:      "Damage",
		TitleStyle: chart.StyleShow(),
		Background: chart.Style{
			Padding: chart.Box{
				Top: 40,
			},
		},
		Height:   512,
		BarWidth: 30,
		XAxis: chart.Style{
			Show: true,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{
				Show: true,
			},
		},
		Bars: bars,
	}
	var buf bytes.Buffer
	if err := sbc.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
