package combat

import "sync"

const (
	sides = 6

	// MaxDice is the hard ceiling on the number of dice in a throw. Anything
	// above it clamps down; I can't hold that many dice.
	MaxDice = 1000

	// DefaultWarmDepth is how many dice the cache is pre-computed for when a
	// Calculator is created. Typical calls stay at or under this and never
	// pay a convolution.
	DefaultWarmDepth = 50
)

// Calculator owns the dice-sum cache: slot k holds the canonical
// distribution for k+1 six-sided dice. The cache only ever grows. Slot 0 is
// the single-die base case and slot k is Add(slot k-1, slot 0), so every
// slot is canonical by construction. Callers must treat returned
// distributions as read-only; every operation in this package copies rather
// than mutates, so sharing slots is safe.
type Calculator struct {
	mu    sync.Mutex
	slots []Distribution
}

// CalculatorOption configures a Calculator.
type CalculatorOption func(*calculatorOptions)

type calculatorOptions struct {
	warmDepth int64
}

// WithWarmDepth sets how many dice the cache is eagerly extended to at
// construction time. Zero means no warming beyond the base case.
func WithWarmDepth(depth int64) CalculatorOption {
	return func(o *calculatorOptions) {
		o.warmDepth = depth
	}
}

// NewCalculator returns a Calculator seeded with the base case and warmed
// to DefaultWarmDepth unless overridden.
func NewCalculator(options ...CalculatorOption) *Calculator {
	opts := calculatorOptions{warmDepth: DefaultWarmDepth}
	for _, o := range options {
		o(&opts)
	}
	c := &Calculator{slots: []Distribution{BaseCase()}}
	if opts.warmDepth > 1 {
		c.NDice(opts.warmDepth)
	}
	return c
}

// NDice returns the canonical distribution of the sum of n six-sided dice.
// n == 0 returns the degenerate certainty of zero without touching the
// cache. All other n are clamped into [1, MaxDice], never rejected. The
// cache is extended one convolution at a time under the lock so a reader
// always sees complete slots; slots are never rebuilt or replaced.
func (c *Calculator) NDice(n int64) Distribution {
	if n == 0 {
		return Distribution{{Value: 0, Probability: 1}}
	}
	clamped := ClampInt(float64(n), 1, MaxDice)
	c.mu.Lock()
	defer c.mu.Unlock()
	for int64(len(c.slots)) < clamped {
		c.slots = append(c.slots, Add(c.slots[len(c.slots)-1], c.slots[0]))
	}
	return c.slots[clamped-1]
}

// Depth reports how many dice the cache currently covers.
func (c *Calculator) Depth() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return int64(len(c.slots))
}
