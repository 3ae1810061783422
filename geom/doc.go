// Package geom provides the 2D primitives shared by the puzzle generator and
// the intersection engine:
//
//   - Point and Extent value types
//   - Euclidean distance, scalar and per-axis point clamping
//   - Straight-segment intersection (the single geometric predicate the whole
//     game's win condition rests on)
//   - GridSampler, a grid-biased uniform position sampler used to spread
//     scrambled circles more evenly than naive uniform sampling
//
// All functions are pure and allocation-free except GridSampler construction.
// Degenerate inputs follow a fixed policy rather than erroring: parallel or
// numerically unstable segment pairs report "not intersecting".
package geom
