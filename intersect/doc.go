// Package intersect recomputes line-crossing state for an untangle puzzle.
//
// Update is the single entry point: given the current circle positions and
// the fixed line list, it resets and recomputes every line's Crossing flag
// over all unordered line pairs (O(L²)), skipping adjacent lines — two lines
// sharing a circle never count as crossing, even when geometrically
// coincident at the shared endpoint.
//
// The engine is pure and stateless between calls, and it must run to
// completion after every position change: crossing flags are only meaningful
// immediately after the latest Update. The derived win condition is
// Solved(lines), a plain AND over "not crossing", recomputed on demand and
// never cached.
//
// Error policy: a line referencing a circle id absent from the circle list
// is caller state desynchronization, not geometry. Update fails fast with
// ErrUnknownCircle and leaves the flags unspecified; degenerate geometry
// (parallel/collinear pairs) is resolved by policy in geom, never an error.
package intersect
