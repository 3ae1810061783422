// Package generate builds untangle levels: it derives difficulty parameters
// from the level number, lays circles out on a ring, greedily assigns
// degree-constrained non-crossing lines, captures that arrangement as the
// solution, and scrambles positions to produce the starting state.
//
// Pipeline (Generate):
//
//  1. Params(level) → (circle count, target degree)
//  2. store lookup — an exact (level, extent) hit returns the stored copy,
//     so an unchanged viewport replays the same puzzle with no seeded RNG
//  3. ring layout — circles evenly spaced on radius min(w,h)/2 − margin
//  4. greedy assignment — neediest-first up to the degree floor, then a
//     best-effort top-up toward the target degree; every chord is validated
//     against the accepted set before it lands, so the layout stays
//     crossing-free by construction
//  5. diagnostics — residual crossings, degree shortfall, disconnectedness
//     are logged (zap), never returned: a playable-if-imperfect puzzle is
//     preferred over blocking delivery
//  6. solution capture (deep snapshot), then scrambling — positions only,
//     topology untouched, so the puzzle is solvable by construction
//
// Configuration follows the functional-option style: options resolve into an
// immutable config; WithSeed/WithRand freeze the stochastic paths for
// reproducible fixtures; bounded-attempt limits are tunable knobs, not
// correctness constants (see LoadTuning for the TOML form).
//
// Error policy: only parameter violations surface (ErrBadLevel, ErrBadExtent,
// ErrBadTuning). Geometric difficulty never errors. Option constructors
// panic on programmer error (nil RNG, non-positive margin).
package generate
