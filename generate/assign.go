package generate

import (
	"sort"

	"github.com/msarica/untangle-game/core"
	"github.com/msarica/untangle-game/geom"
)

// assignLines fills the level with degree-constrained, non-crossing lines.
//
// Phase 1 (floor): repeat up to cfg.assignPasses times — order circles by
// unmet floor need max(0, DegreeFloor−degree) descending (ties by id for
// determinism) and, for each needy circle, connect it to the nearest
// compatible candidate whose chord crosses no accepted chord. A full pass
// with no assignment means the greedy search has stalled; stop. The floor is
// independent of the per-level target so a playable minimum survives even
// when the target is out of geometric reach.
//
// Phase 2 (top-up): best-effort per-circle refill toward the target degree
// with the same nearest/non-crossing search. Under-delivery here is reported
// by verifyLayout, not treated as failure.
//
// Complexity: each connect attempt is O(V log V + V·E); puzzle sizes keep
// this far below any interactive budget.
func assignLines(lv *core.Level, target int, cfg generatorConfig) {
	for pass := 0; pass < cfg.assignPasses; pass++ {
		needy := circlesByNeed(lv)
		if len(needy) == 0 {
			break
		}
		made := false
		for _, c := range needy {
			// An earlier assignment this pass may have satisfied c already.
			if c.Degree() >= DegreeFloor {
				continue
			}
			if connectNearest(lv, c, target) {
				made = true
			}
		}
		if !made {
			break
		}
	}

	// Top-up toward the per-level target, best effort.
	for _, c := range lv.Circles {
		for c.Degree() < target {
			if !connectNearest(lv, c, target) {
				break
			}
		}
	}
}

// circlesByNeed returns the circles still under the degree floor, neediest
// first, ties broken by ascending id.
func circlesByNeed(lv *core.Level) []*core.Circle {
	needy := make([]*core.Circle, 0, len(lv.Circles))
	for _, c := range lv.Circles {
		if c.Degree() < DegreeFloor {
			needy = append(needy, c)
		}
	}
	sort.SliceStable(needy, func(i, j int) bool {
		ni, nj := DegreeFloor-needy[i].Degree(), DegreeFloor-needy[j].Degree()
		if ni != nj {
			return ni > nj
		}

		return needy[i].ID < needy[j].ID
	})

	return needy
}

// connectNearest links c to the nearest compatible circle whose chord does
// not cross any accepted chord, and reports whether a line was added.
//
// Candidates: other circles under the target degree and not yet connected
// to c, nearest first (ties by id). The crossing check exempts chords
// sharing an endpoint with the prospective one.
func connectNearest(lv *core.Level, c *core.Circle, target int) bool {
	candidates := make([]*core.Circle, 0, len(lv.Circles))
	for _, o := range lv.Circles {
		if o.ID == c.ID || o.Degree() >= target {
			continue
		}
		if _, linked := c.Neighbors[o.ID]; linked {
			continue
		}
		candidates = append(candidates, o)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := geom.Dist(c.Pos, candidates[i].Pos), geom.Dist(c.Pos, candidates[j].Pos)
		if di != dj {
			return di < dj
		}

		return candidates[i].ID < candidates[j].ID
	})

	for _, cand := range candidates {
		if chordCrosses(lv, c, cand) {
			continue
		}
		if _, err := lv.Connect(c.ID, cand.ID); err != nil {
			// Candidate filtering already excludes every rejection cause;
			// a failure here means the filter and Connect disagree.
			continue
		}

		return true
	}

	return false
}

// chordCrosses reports whether the prospective chord c—cand crosses any
// accepted line. Lines sharing either endpoint are exempt (adjacent lines
// meet, they do not cross).
func chordCrosses(lv *core.Level, c, cand *core.Circle) bool {
	for _, l := range lv.Lines {
		if l.Touches(c.ID) || l.Touches(cand.ID) {
			continue
		}
		from, err := lv.Circle(l.From)
		if err != nil {
			continue
		}
		to, err := lv.Circle(l.To)
		if err != nil {
			continue
		}
		if geom.SegmentsIntersect(c.Pos, cand.Pos, from.Pos, to.Pos) {
			return true
		}
	}

	return false
}
