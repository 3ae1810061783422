package intersect

import (
	"fmt"

	"github.com/msarica/untangle-game/core"
	"github.com/msarica/untangle-game/geom"
)

// Update recomputes every line's Crossing flag in place from the current
// circle positions.
//
// Algorithm: reset all flags, then for every unordered pair of distinct
// lines (i<j) skip adjacent pairs (shared endpoint) and run the segment
// intersection test on the resolved endpoint positions; a hit marks both
// lines. The recomputation is global on purpose — correctness first, and at
// puzzle sizes (tens of lines) the O(L²) pass is far below frame budget.
//
// Returns ErrUnknownCircle if any line endpoint has no circle; flags are
// unspecified after an error.
// Complexity: O(V + L²) time, O(V) space for the position index.
func Update(circles []*core.Circle, lines []*core.Line) error {
	// Position index: endpoint resolution must not depend on slice order.
	pos := make(map[int]geom.Point, len(circles))
	for _, c := range circles {
		pos[c.ID] = c.Pos
	}

	// Resolve all endpoints up front so a desync fails before any flag
	// changes are half-applied.
	type segment struct{ a, b geom.Point }
	segs := make([]segment, len(lines))
	for i, l := range lines {
		a, ok := pos[l.From]
		if !ok {
			return fmt.Errorf("intersect: line %d—%d endpoint %d: %w", l.From, l.To, l.From, ErrUnknownCircle)
		}
		b, ok := pos[l.To]
		if !ok {
			return fmt.Errorf("intersect: line %d—%d endpoint %d: %w", l.From, l.To, l.To, ErrUnknownCircle)
		}
		segs[i] = segment{a: a, b: b}
	}

	for _, l := range lines {
		l.Crossing = false
	}

	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			// Adjacency exemption: lines meeting at a shared circle are
			// never "crossing", whatever the geometry says.
			if lines[i].SharesEndpoint(lines[j]) {
				continue
			}
			if geom.SegmentsIntersect(segs[i].a, segs[i].b, segs[j].a, segs[j].b) {
				lines[i].Crossing = true
				lines[j].Crossing = true
			}
		}
	}

	return nil
}

// Solved reports whether no line is crossing. Only meaningful immediately
// after Update on the same arrangement. An empty line list is solved.
// Complexity: O(L).
func Solved(lines []*core.Line) bool {
	for _, l := range lines {
		if l.Crossing {
			return false
		}
	}

	return true
}

// Count returns the number of lines currently flagged as crossing.
// Diagnostic convenience for generation verification and tooling.
// Complexity: O(L).
func Count(lines []*core.Line) int {
	n := 0
	for _, l := range lines {
		if l.Crossing {
			n++
		}
	}

	return n
}
