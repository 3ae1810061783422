package generate

import (
	"math"

	"github.com/msarica/untangle-game/core"
	"github.com/msarica/untangle-game/geom"
)

// placeOnRing adds n circles evenly spaced on a ring of radius
// min(w,h)/2 − margin centered in the canvas.
//
// The ring is the non-intersecting base of the whole construction: all
// circles sit in convex position, so any chord set that re-validates each
// new chord against the accepted ones (assignLines) stays crossing-free.
// Complexity: O(n).
func placeOnRing(lv *core.Level, n int, cfg generatorConfig) {
	center := lv.Extent.Center()
	radius := lv.Extent.Min()/2 - cfg.margin
	step := 2 * math.Pi / float64(n)

	for i := 0; i < n; i++ {
		angle := step * float64(i)
		lv.AddCircle(geom.Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}, cfg.radius)
	}
}
