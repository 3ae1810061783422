package geom

import "errors"

var (
	// ErrBadExtent indicates an extent too small to host the requested
	// margin (no playable interior remains).
	ErrBadExtent = errors.New("geom: extent too small for margin")
	// ErrNilRand indicates a stochastic helper was invoked without an RNG.
	ErrNilRand = errors.New("geom: rng is required")
)
