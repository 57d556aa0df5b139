package combat

import (
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestShift(t *testing.T) {
	in := Distribution{{Value: -1, Probability: 0.5}, {Value: 2, Probability: 0.5}}
	got := Shift(in, 3)
	want := Distribution{{Value: 2, Probability: 0.5}, {Value: 5, Probability: 0.5}}
	if !distEquals(got, want) {
		t.Errorf("Shift() = %+v, want %+v", got, want)
	}
	if in[0].Value != -1 {
		t.Errorf("Shift() mutated its input: %+v", in)
	}
}

func TestClampZeros(t *testing.T) {
	in := Distribution{
		{Value: -2, Probability: 0.3},
		{Value: -1, Probability: 0.2},
		{Value: 0, Probability: 0.1},
		{Value: 1, Probability: 0.4},
	}
	want := Distribution{{Value: 0, Probability: 0.6}, {Value: 1, Probability: 0.4}}
	if got := ClampZeros(in); !distEquals(got, want) {
		t.Errorf("ClampZeros() = %+v, want %+v", got, want)
	}
}

func TestAverageDamage(t *testing.T) {
	in := Distribution{{Value: 0, Probability: 0.5}, {Value: 2, Probability: 0.5}}
	if got := AverageDamage(in); !floatEquals(got, 1.0) {
		t.Errorf("AverageDamage() = %v, want 1.0", got)
	}
}

func TestHitChance(t *testing.T) {
	tests := []struct {
		name string
		in   Distribution
		want float64
	}{
		{
			name: "mass at zero",
			in:   Distribution{{Value: 0, Probability: 0.25}, {Value: 1, Probability: 0.75}},
			want: 0.75,
		},
		{
			name: "no zero entry",
			in:   Distribution{{Value: 1, Probability: 1.0}},
			want: 1,
		},
		{
			name: "empty",
			in:   Distribution{},
			want: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitChance(tt.in); !floatEquals(got, tt.want) {
				t.Errorf("HitChance() = %v, want %v", got, tt.want)
			}
		})
	}
}

// FullCalculation has to agree with composing its stages by hand.
func TestFullCalculation(t *testing.T) {
	c := NewCalculator(WithWarmDepth(0))

	attack := c.NDice(1)
	defense := c.NDice(2)
	adjusted := Subtract(attack, defense)
	finished := Shift(adjusted, 1+2)
	crushed := ClampZeros(finished)

	got := c.FullCalculation(2, 1, 1, 0)
	if !distEquals(got.Crushed, crushed) {
		t.Errorf("FullCalculation().Crushed = %+v, want %+v", got.Crushed, crushed)
	}
	if !floatEquals(got.AverageDamage, AverageDamage(crushed)) {
		t.Errorf("FullCalculation().AverageDamage = %v, want %v", got.AverageDamage, AverageDamage(crushed))
	}
	if !floatEquals(got.HitChance, HitChance(crushed)) {
		t.Errorf("FullCalculation().HitChance = %v, want %v", got.HitChance, HitChance(crushed))
	}

	// deterministic across fresh engines
	again := NewCalculator(WithWarmDepth(0)).FullCalculation(2, 1, 1, 0)
	if !floatEquals(got.AverageDamage, again.AverageDamage) || !floatEquals(got.HitChance, again.HitChance) {
		t.Errorf("FullCalculation() not reproducible: %+v vs %+v", got, again)
	}
}

func TestFullCalculationCoverInert(t *testing.T) {
	c := NewCalculator(WithWarmDepth(0))
	without := c.FullCalculation(2, 1, 3, 0)
	with := c.FullCalculation(2, 1, 3, 7)
	if !distEquals(without.Crushed, with.Crushed) {
		t.Errorf("cover changed the result: %+v vs %+v", without.Crushed, with.Crushed)
	}
}

// Cross-check AverageDamage against gonum's weighted mean on a few cached
// distributions.
func TestAverageDamageAgainstGonum(t *testing.T) {
	c := NewCalculator(WithWarmDepth(0))
	for _, n := range []int64{1, 2, 5, 12} {
		dist := c.NDice(n)
		values := make([]float64, len(dist))
		weights := make([]float64, len(dist))
		for i, o := range dist {
			values[i] = float64(o.Value)
			weights[i] = o.Probability
		}
		want := stat.Mean(values, weights)
		if got := AverageDamage(dist); !floatEquals(got, want) {
			t.Errorf("AverageDamage(%dd6) = %v, gonum says %v", n, got, want)
		}
		// n six-sided dice average 3.5n
		if !floatEquals(want, 3.5*float64(n)) {
			t.Errorf("mean of %dd6 = %v, want %v", n, want, 3.5*float64(n))
		}
	}
}
