package geom

import "math"

// Point is a position in the canvas plane.
type Point struct {
	X float64
	Y float64
}

// Extent is the usable canvas size, anchored at the origin.
type Extent struct {
	Width  float64
	Height float64
}

// Min returns the smaller of the extent's two dimensions.
// Complexity: O(1).
func (e Extent) Min() float64 {
	return math.Min(e.Width, e.Height)
}

// Center returns the midpoint of the extent.
// Complexity: O(1).
func (e Extent) Center() Point {
	return Point{X: e.Width / 2, Y: e.Height / 2}
}

// Dist returns the Euclidean distance between a and b.
// Complexity: O(1).
func Dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Clamp restricts v to the closed interval [lo, hi].
// When lo > hi the interval is empty; lo wins (deterministic fallback).
// Complexity: O(1).
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// ClampPoint restricts p per axis to [r, extent−r] so that a circle of
// radius r stays fully inside the canvas. This is the drag-input clamping
// contract: raw pointer positions pass through here before being stored.
// Complexity: O(1).
func ClampPoint(p Point, r float64, ext Extent) Point {
	return Point{
		X: Clamp(p.X, r, ext.Width-r),
		Y: Clamp(p.Y, r, ext.Height-r),
	}
}
