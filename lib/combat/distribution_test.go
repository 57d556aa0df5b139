package combat

import (
	"math"
	"reflect"
	"testing"
)

func floatEquals(a, b float64) bool {
	espilon := float64(0.00000001)
	if (a-b) < espilon && (b-a) < espilon {
		return true
	}
	return false
}

func distEquals(left, right Distribution) bool {
	if len(left) != len(right) {
		return false
	}
	for i := range left {
		if left[i].Value != right[i].Value || !floatEquals(left[i].Probability, right[i].Probability) {
			return false
		}
	}
	return true
}

func TestSortByValue(t *testing.T) {
	in := Distribution{{Value: 3, Probability: 0.2}, {Value: 1, Probability: 0.5}, {Value: 2, Probability: 0.3}}
	want := Distribution{{Value: 1, Probability: 0.5}, {Value: 2, Probability: 0.3}, {Value: 3, Probability: 0.2}}
	got := SortByValue(in)
	if !distEquals(got, want) {
		t.Errorf("SortByValue() = %+v, want %+v", got, want)
	}
	// the input must not be reordered; cached distributions are shared
	if in[0].Value != 3 || in[1].Value != 1 || in[2].Value != 2 {
		t.Errorf("SortByValue() mutated its input: %+v", in)
	}
}

func TestCrushDuplicates(t *testing.T) {
	tests := []struct {
		name string
		in   Distribution
		want Distribution
	}{
		{
			name: "merges equal values and sorts",
			in:   Distribution{{Value: 3, Probability: 0.1}, {Value: 3, Probability: 0.2}, {Value: 1, Probability: 0.5}},
			want: Distribution{{Value: 1, Probability: 0.5}, {Value: 3, Probability: 0.3}},
		},
		{
			name: "canonical input unchanged",
			in:   Distribution{{Value: 1, Probability: 0.5}, {Value: 2, Probability: 0.5}},
			want: Distribution{{Value: 1, Probability: 0.5}, {Value: 2, Probability: 0.5}},
		},
		{
			name: "empty",
			in:   Distribution{},
			want: Distribution{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CrushDuplicates(tt.in); !distEquals(got, tt.want) {
				t.Errorf("CrushDuplicates() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCrushDuplicatesIdempotent(t *testing.T) {
	in := Distribution{{Value: 5, Probability: 0.25}, {Value: -2, Probability: 0.25}, {Value: 5, Probability: 0.5}}
	once := CrushDuplicates(in)
	twice := CrushDuplicates(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("CrushDuplicates() not idempotent: once %+v, twice %+v", once, twice)
	}
}

func TestBaseCase(t *testing.T) {
	base := BaseCase()
	if len(base) != 6 {
		t.Fatalf("BaseCase() has %d entries, want 6", len(base))
	}
	for i, o := range base {
		if o.Value != int64(i+1) {
			t.Errorf("BaseCase()[%d].Value = %d, want %d", i, o.Value, i+1)
		}
		if !floatEquals(o.Probability, 1.0/6.0) {
			t.Errorf("BaseCase()[%d].Probability = %v, want 1/6", i, o.Probability)
		}
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct {
		name string
		n    float64
		min  int64
		max  int64
		want int64
	}{
		{name: "in range", n: 7, min: 1, max: 1000, want: 7},
		{name: "floors", n: 3.9, min: 1, max: 1000, want: 3},
		{name: "below min", n: -5, min: 1, max: 1000, want: 1},
		{name: "above max", n: 5000, min: 1, max: 1000, want: 1000},
		{name: "NaN collapses to min", n: math.NaN(), min: 1, max: 1000, want: 1},
		{name: "negative infinity collapses to min", n: math.Inf(-1), min: 1, max: 1000, want: 1},
		{name: "positive infinity collapses to max", n: math.Inf(1), min: 1, max: 1000, want: 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampInt(tt.n, tt.min, tt.max); got != tt.want {
				t.Errorf("ClampInt(%v, %d, %d) = %d, want %d", tt.n, tt.min, tt.max, got, tt.want)
			}
		})
	}
}
