package combat

import (
	"testing"
)

// https://anydice.com/ used for "correct" values
func TestAddTwoDice(t *testing.T) {
	got := Add(BaseCase(), BaseCase())
	want := Distribution{
		{Value: 2, Probability: 1.0 / 36},
		{Value: 3, Probability: 2.0 / 36},
		{Value: 4, Probability: 3.0 / 36},
		{Value: 5, Probability: 4.0 / 36},
		{Value: 6, Probability: 5.0 / 36},
		{Value: 7, Probability: 6.0 / 36},
		{Value: 8, Probability: 5.0 / 36},
		{Value: 9, Probability: 4.0 / 36},
		{Value: 10, Probability: 3.0 / 36},
		{Value: 11, Probability: 2.0 / 36},
		{Value: 12, Probability: 1.0 / 36},
	}
	if !distEquals(got, want) {
		t.Errorf("Add(1d6, 1d6) = %+v, want %+v", got, want)
	}
}

func TestAddCommutes(t *testing.T) {
	a := Distribution{{Value: 0, Probability: 0.4}, {Value: 2, Probability: 0.6}}
	b := Add(BaseCase(), BaseCase())
	left := Add(a, b)
	right := Add(b, a)
	if !distEquals(left, right) {
		t.Errorf("Add() is order dependent: %+v vs %+v", left, right)
	}
}

func TestAddPreservesMass(t *testing.T) {
	dist := BaseCase()
	for i := 0; i < 10; i++ {
		dist = Add(dist, BaseCase())
		var mass float64
		for _, o := range dist {
			mass += o.Probability
		}
		if !floatEquals(mass, 1.0) {
			t.Fatalf("mass after %d convolutions = %v, want 1.0", i+2, mass)
		}
	}
}

func TestSubtract(t *testing.T) {
	a := Distribution{{Value: 1, Probability: 0.5}, {Value: 2, Probability: 0.5}}
	b := Distribution{{Value: 1, Probability: 0.5}, {Value: 2, Probability: 0.5}}
	got := Subtract(a, b)
	want := Distribution{
		{Value: -1, Probability: 0.25},
		{Value: 0, Probability: 0.5},
		{Value: 1, Probability: 0.25},
	}
	if !distEquals(got, want) {
		t.Errorf("Subtract() = %+v, want %+v", got, want)
	}
}

// Subtracting a certain zero must be the identity on canonical input.
func TestSubtractZeroIdentity(t *testing.T) {
	a := Add(BaseCase(), BaseCase())
	zero := Distribution{{Value: 0, Probability: 1}}
	if got := Subtract(a, zero); !distEquals(got, a) {
		t.Errorf("Subtract(a, 0) = %+v, want %+v", got, a)
	}
}

// Adding n dice to m dice has to agree with rolling n+m dice directly.
func TestAddAgreesWithNDice(t *testing.T) {
	c := NewCalculator(WithWarmDepth(0))
	composed := Add(c.NDice(3), c.NDice(4))
	direct := c.NDice(7)
	if !distEquals(composed, direct) {
		t.Errorf("Add(3d6, 4d6) disagrees with 7d6:\n%+v\n%+v", composed, direct)
	}
}
