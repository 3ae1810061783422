// Sentinel errors for the generate package.
//
// Error policy (strict):
//   - Only sentinels are exposed; callers branch with errors.Is.
//   - Implementations attach context via %w wrapping with the method name.
//   - Geometric difficulty (degree shortfall, residual crossings) is NOT an
//     error class here — it is logged diagnostics by design.

package generate

import "errors"

// ErrBadLevel indicates a level number below MinLevel.
// Usage: if errors.Is(err, ErrBadLevel) { /* reject the request */ }.
var ErrBadLevel = errors.New("generate: level number out of range")

// ErrBadExtent indicates a canvas extent too small for the configured margin
// (no ring radius or playable interior remains).
// Usage: if errors.Is(err, ErrBadExtent) { /* enlarge canvas or shrink margin */ }.
var ErrBadExtent = errors.New("generate: extent too small")

// ErrBadTuning indicates an invalid value in a tuning file (non-positive
// margin or radius, negative attempt bounds).
// Usage: if errors.Is(err, ErrBadTuning) { /* fix the TOML document */ }.
var ErrBadTuning = errors.New("generate: invalid tuning value")
