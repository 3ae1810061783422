// options.go — functional options for the generator.
//
// Contract (strict):
//   - Options are functional (type Option func(*generatorConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     the generation pipeline itself never panics.
//   - Determinism is explicit: freeze stochastic paths via WithSeed/WithRand.

package generate

import (
	"math/rand"

	"go.uber.org/zap"
)

// Option customizes generator behavior by mutating the resolved config
// before generation begins.
// Complexity: applying N options costs O(N).
type Option func(*generatorConfig)

// WithSeed creates a seeded RNG for scrambling (deterministic).
// Use this in tests and fixtures to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}

	return func(c *generatorConfig) {
		c.rng = r
	}
}

// WithLogger routes generation diagnostics (degree shortfall, residual
// crossings, disconnected topology, store failures) to the given logger.
// Panics on nil; use zap.NewNop() to silence explicitly.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("generate: WithLogger(nil)")
	}

	return func(c *generatorConfig) {
		c.logger = l
	}
}

// WithMargin sets the canvas inset in pixels. Panics if m <= 0.
func WithMargin(m float64) Option {
	if m <= 0 {
		panic("generate: WithMargin(m<=0)")
	}

	return func(c *generatorConfig) {
		c.margin = m
	}
}

// WithCircleRadius sets the circle draw/hit radius. Panics if r <= 0.
func WithCircleRadius(r float64) Option {
	if r <= 0 {
		panic("generate: WithCircleRadius(r<=0)")
	}

	return func(c *generatorConfig) {
		c.radius = r
	}
}

// WithAssignPasses bounds the neediest-first refill loop. Panics if n < 1.
// Tunable quality/performance trade-off.
func WithAssignPasses(n int) Option {
	if n < 1 {
		panic("generate: WithAssignPasses(n<1)")
	}

	return func(c *generatorConfig) {
		c.assignPasses = n
	}
}

// WithScrambleAttempts bounds the per-circle sampling loop. Panics if n < 1.
func WithScrambleAttempts(n int) Option {
	if n < 1 {
		panic("generate: WithScrambleAttempts(n<1)")
	}

	return func(c *generatorConfig) {
		c.scrambleAttempts = n
	}
}

// WithMinSeparation sets the scramble early-accept distance threshold.
// Panics if d <= 0. Without this option the threshold is 2×margin.
func WithMinSeparation(d float64) Option {
	if d <= 0 {
		panic("generate: WithMinSeparation(d<=0)")
	}

	return func(c *generatorConfig) {
		c.minSeparation = d
	}
}

// WithStore attaches a level store: exact (level, extent) repeats are
// answered from it and fresh levels are saved back. Panics on nil.
func WithStore(s Store) Option {
	if s == nil {
		panic("generate: WithStore(nil)")
	}

	return func(c *generatorConfig) {
		c.store = s
	}
}
