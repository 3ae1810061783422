// config.go — internal configuration and deterministic defaults.
//
// Design:
//   - generatorConfig is the single source of truth for all generator knobs.
//   - newGeneratorConfig applies options in order (later overrides earlier).
//   - No globals; the resolved config is passed by value down the pipeline.

package generate

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// generatorConfig aggregates all knobs used by the generation pipeline.
// It is passed by VALUE (immutable to callers once resolved).
type generatorConfig struct {
	// rng drives scrambling. Defaults to a time-seeded source: replay
	// stability comes from the store contract, not from seeding.
	rng *rand.Rand

	// logger receives generation diagnostics. Defaults to a no-op.
	logger *zap.Logger

	// margin is the canvas inset for the ring and the scramble frame.
	margin float64

	// radius is the circle draw/hit radius.
	radius float64

	// assignPasses bounds the neediest-first refill loop.
	assignPasses int

	// scrambleAttempts bounds the per-circle sampling loop.
	scrambleAttempts int

	// minSeparation is the early-accept distance threshold for scrambling.
	// Zero means "derive from margin" (2×margin), resolved below.
	minSeparation float64

	// store, when non-nil, answers exact (level, extent) repeats and
	// receives freshly generated levels.
	store Store
}

// newGeneratorConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
// Complexity: O(len(opts)).
func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:           zap.NewNop(),
		margin:           DefaultMargin,
		radius:           DefaultCircleRadius,
		assignPasses:     DefaultAssignPasses,
		scrambleAttempts: DefaultScrambleAttempts,
		minSeparation:    0, // resolved against the final margin below
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	// Resolve the separation threshold against the (possibly overridden)
	// margin unless the caller pinned it explicitly.
	if cfg.minSeparation == 0 {
		cfg.minSeparation = 2 * cfg.margin
	}

	return cfg
}
