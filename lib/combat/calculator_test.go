package combat

import (
	"math"
	"reflect"
	"sync"
	"testing"
)

var result Distribution

func benchmarkNDice(n int64, b *testing.B) {
	var r Distribution
	c := NewCalculator(WithWarmDepth(0))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r = c.NDice(n)
	}
	result = r
}
func BenchmarkNDice2(b *testing.B)   { benchmarkNDice(2, b) }
func BenchmarkNDice20(b *testing.B)  { benchmarkNDice(20, b) }
func BenchmarkNDice200(b *testing.B) { benchmarkNDice(200, b) }

func TestNDiceZero(t *testing.T) {
	c := NewCalculator(WithWarmDepth(0))
	got := c.NDice(0)
	want := Distribution{{Value: 0, Probability: 1}}
	if !distEquals(got, want) {
		t.Errorf("NDice(0) = %+v, want %+v", got, want)
	}
	if c.Depth() != 1 {
		t.Errorf("NDice(0) touched the cache: depth = %d, want 1", c.Depth())
	}
}

func TestNDiceOne(t *testing.T) {
	c := NewCalculator(WithWarmDepth(0))
	got := c.NDice(1)
	if len(got) != 6 {
		t.Fatalf("NDice(1) has %d entries, want 6", len(got))
	}
	for i, o := range got {
		if o.Value != int64(i+1) || !floatEquals(o.Probability, 1.0/6.0) {
			t.Errorf("NDice(1)[%d] = %+v, want {%d 1/6}", i, o, i+1)
		}
	}
}

func TestNDiceClampsNegative(t *testing.T) {
	c := NewCalculator(WithWarmDepth(0))
	if got, want := c.NDice(-5), c.NDice(1); !distEquals(got, want) {
		t.Errorf("NDice(-5) = %+v, want NDice(1) %+v", got, want)
	}
}

func TestNDiceMass(t *testing.T) {
	c := NewCalculator(WithWarmDepth(0))
	for _, n := range []int64{1, 2, 5, 17, 60} {
		dist := c.NDice(n)
		if int64(len(dist)) != n*5+1 {
			t.Errorf("NDice(%d) has %d entries, want %d", n, len(dist), n*5+1)
		}
		if dist[0].Value != n || dist[len(dist)-1].Value != n*6 {
			t.Errorf("NDice(%d) spans [%d, %d], want [%d, %d]",
				n, dist[0].Value, dist[len(dist)-1].Value, n, n*6)
		}
		var mass float64
		for _, o := range dist {
			mass += o.Probability
		}
		if math.Abs(mass-1.0) > 1e-9 {
			t.Errorf("NDice(%d) mass = %v, want 1.0", n, mass)
		}
	}
}

// Repeated and out-of-order lookups must return identical slices; the cache
// only ever appends.
func TestNDiceStable(t *testing.T) {
	c := NewCalculator(WithWarmDepth(0))
	first := c.NDice(5)
	c.NDice(3)
	again := c.NDice(5)
	if !reflect.DeepEqual(first, again) {
		t.Errorf("NDice(5) changed between calls:\n%+v\n%+v", first, again)
	}
}

func TestNDiceConcurrent(t *testing.T) {
	c := NewCalculator(WithWarmDepth(0))
	want := c.NDice(40)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int64) {
			defer wg.Done()
			got := c.NDice(n)
			if int64(len(got)) != n*5+1 {
				t.Errorf("NDice(%d) has %d entries, want %d", n, len(got), n*5+1)
			}
		}(int64(i%40 + 1))
	}
	wg.Wait()
	if got := c.NDice(40); !reflect.DeepEqual(got, want) {
		t.Errorf("concurrent access disturbed the cache")
	}
}

func TestNewCalculatorWarms(t *testing.T) {
	c := NewCalculator()
	if c.Depth() != DefaultWarmDepth {
		t.Errorf("NewCalculator() depth = %d, want %d", c.Depth(), DefaultWarmDepth)
	}
	c = NewCalculator(WithWarmDepth(10))
	if c.Depth() != 10 {
		t.Errorf("NewCalculator(WithWarmDepth(10)) depth = %d, want 10", c.Depth())
	}
}
