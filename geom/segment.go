package geom

import "math"

// parallelEps is the denominator magnitude below which two segments are
// treated as parallel/collinear and reported as non-intersecting. Collinear
// overlap is deliberately NOT a crossing: visually stacked lines resolve the
// moment either endpoint moves, so flagging them would only flicker.
const parallelEps = 1e-10

// SegmentsIntersect reports whether segments p1p2 and p3p4 cross, counting
// interior and boundary contact alike (closed interval on both parameters).
//
// Standard parametric 2D line intersection:
//
//	denom = (y4−y3)(x2−x1) − (x4−x3)(y2−y1)
//	ua    = ((x4−x3)(y1−y3) − (y4−y3)(x1−x3)) / denom
//	ub    = ((x2−x1)(y1−y3) − (y2−y1)(x1−x3)) / denom
//
// The segments intersect iff ua ∈ [0,1] and ub ∈ [0,1].
// |denom| < 1e-10 ⇒ parallel/collinear ⇒ false by policy.
// Complexity: O(1).
func SegmentsIntersect(p1, p2, p3, p4 Point) bool {
	denom := (p4.Y-p3.Y)*(p2.X-p1.X) - (p4.X-p3.X)*(p2.Y-p1.Y)
	if math.Abs(denom) < parallelEps {
		return false
	}

	ua := ((p4.X-p3.X)*(p1.Y-p3.Y) - (p4.Y-p3.Y)*(p1.X-p3.X)) / denom
	ub := ((p2.X-p1.X)*(p1.Y-p3.Y) - (p2.Y-p1.Y)*(p1.X-p3.X)) / denom

	return ua >= 0 && ua <= 1 && ub >= 0 && ub <= 1
}
