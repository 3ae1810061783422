package geom

import (
	"fmt"
	"math/rand"
)

// GridSampler partitions the playable interior (margin, extent−margin) into
// an approximate square grid and draws positions as "uniform point inside a
// uniform cell". Compared to naive uniform sampling over the whole interior
// this spreads consecutive draws far more evenly, which is exactly what
// scrambling wants: circles scattered across the canvas, not clumped.
//
// The cell edge is the margin itself, so the cell count is roughly
// playableArea / margin². A degenerate interior collapses to a single cell.
type GridSampler struct {
	origin Point   // top-left corner of the playable interior
	cols   int     // grid columns (≥ 1)
	rows   int     // grid rows (≥ 1)
	cellW  float64 // cell width
	cellH  float64 // cell height
}

// NewGridSampler builds a sampler over the interior of ext inset by margin
// on every side. Returns ErrBadExtent when no interior remains.
// Complexity: O(1).
func NewGridSampler(ext Extent, margin float64) (*GridSampler, error) {
	playW := ext.Width - 2*margin
	playH := ext.Height - 2*margin
	if playW <= 0 || playH <= 0 {
		return nil, fmt.Errorf("geom: NewGridSampler(%gx%g, margin=%g): %w",
			ext.Width, ext.Height, margin, ErrBadExtent)
	}

	// One cell per margin-length along each axis, at least one per axis.
	cols := int(playW / margin)
	if cols < 1 {
		cols = 1
	}
	rows := int(playH / margin)
	if rows < 1 {
		rows = 1
	}

	return &GridSampler{
		origin: Point{X: margin, Y: margin},
		cols:   cols,
		rows:   rows,
		cellW:  playW / float64(cols),
		cellH:  playH / float64(rows),
	}, nil
}

// Cells returns the total number of grid cells.
// Complexity: O(1).
func (s *GridSampler) Cells() int {
	return s.cols * s.rows
}

// Sample draws one position: a uniformly random cell, then a uniformly
// random point inside it. Returns ErrNilRand without an RNG.
// Complexity: O(1).
func (s *GridSampler) Sample(rng *rand.Rand) (Point, error) {
	if rng == nil {
		return Point{}, ErrNilRand
	}

	cell := rng.Intn(s.cols * s.rows)
	cx := cell % s.cols
	cy := cell / s.cols

	return Point{
		X: s.origin.X + (float64(cx)+rng.Float64())*s.cellW,
		Y: s.origin.Y + (float64(cy)+rng.Float64())*s.cellH,
	}, nil
}
