// api.go — thin public entry-point orchestrating the generation pipeline.
//
// Design contract:
//   - One orchestrator: Generate(level, extent, opts...). Resolves config,
//     consults the store, then runs layout → assignment → diagnostics →
//     capture → scramble in a fixed order.
//   - Only parameter violations are caller-visible errors; geometric
//     shortfalls are diagnostics and never block level delivery.

package generate

import (
	"fmt"

	"github.com/msarica/untangle-game/core"
	"github.com/msarica/untangle-game/geom"
	"github.com/msarica/untangle-game/intersect"

	"go.uber.org/zap"
)

// Store is the persistence collaborator accepted by the generator.
//
// Load answers an exact (level number, extent) lookup; ok reports a hit.
// Both Load and Save must exchange deep, caller-owned copies — neither side
// may retain references into the other's state.
type Store interface {
	Load(number int, extent geom.Extent) (lv *core.Level, ok bool, err error)
	Save(lv *core.Level) error
}

// Generate produces the level for the given difficulty number and canvas
// extent: circles, fixed line topology, captured solution, scrambled start.
//
// An attached store (WithStore) short-circuits exact repeats: the same
// (level, extent) request returns an independent copy of the stored puzzle,
// which is what makes re-entering a level look deterministic to the player
// without a seeded RNG — and why a viewport resize forces regeneration.
//
// Errors: ErrBadLevel, ErrBadExtent. Store failures and geometric
// shortfalls are logged diagnostics only.
// Complexity: O(V·E) assignment dominates; inputs are tens of circles.
func Generate(level int, extent geom.Extent, opts ...Option) (*core.Level, error) {
	params, err := Params(level)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	cfg := newGeneratorConfig(opts...)

	// The ring must have positive radius and the scramble frame a positive
	// interior; both collapse at min(w,h) ≤ 2×margin.
	if extent.Min() <= 2*cfg.margin {
		return nil, fmt.Errorf("%s: extent %gx%g with margin %g: %w",
			MethodGenerate, extent.Width, extent.Height, cfg.margin, ErrBadExtent)
	}

	if lv, ok := loadStored(level, extent, cfg); ok {
		return lv, nil
	}

	lv := core.NewLevel(level, extent)
	placeOnRing(lv, params.Circles, cfg)
	assignLines(lv, params.Degree, cfg)
	verifyLayout(lv, params, cfg)

	// Capture the solution while the layout is still crossing-free, then
	// scramble positions only.
	lv.Solution = lv.Capture()
	scramble(lv, cfg)

	// Leave the crossing flags valid for the delivered starting state.
	if err = intersect.Update(lv.Circles, lv.Lines); err != nil {
		// Unreachable for a level built here; surface it loudly anyway.
		cfg.logger.Error("intersection update on fresh level failed",
			zap.Int("level", level), zap.Error(err))
	}

	saveStored(lv, cfg)

	return lv, nil
}

// loadStored answers the request from the store when one is attached and the
// lookup hits. Store failures are logged and treated as a miss: the store is
// an accelerator, never a gate on delivery.
func loadStored(level int, extent geom.Extent, cfg generatorConfig) (*core.Level, bool) {
	if cfg.store == nil {
		return nil, false
	}
	lv, ok, err := cfg.store.Load(level, extent)
	if err != nil {
		cfg.logger.Warn("level store lookup failed; regenerating",
			zap.Int("level", level), zap.Error(err))

		return nil, false
	}
	if !ok {
		return nil, false
	}
	cfg.logger.Debug("level served from store",
		zap.Int("level", level),
		zap.Float64("width", extent.Width),
		zap.Float64("height", extent.Height))

	return lv, true
}

// saveStored hands the fresh level to the store, if any. Failures are logged.
func saveStored(lv *core.Level, cfg generatorConfig) {
	if cfg.store == nil {
		return
	}
	if err := cfg.store.Save(lv); err != nil {
		cfg.logger.Warn("level store save failed",
			zap.Int("level", lv.Number), zap.Error(err))
	}
}
