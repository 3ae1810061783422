package generate

import (
	"github.com/msarica/untangle-game/core"
	"github.com/msarica/untangle-game/intersect"

	"go.uber.org/zap"
)

// verifyLayout independently re-checks the constructed layout before it is
// captured as the solution, and logs every shortfall as a diagnostic:
//
//   - residual crossings (the construction failed its own invariant)
//   - circles under the degree floor or under the per-level target
//   - a disconnected puzzle graph
//
// Nothing here aborts delivery: a playable-if-imperfect puzzle beats
// blocking the player.
func verifyLayout(lv *core.Level, params LevelParams, cfg generatorConfig) {
	if err := intersect.Update(lv.Circles, lv.Lines); err != nil {
		cfg.logger.Error("solution verification could not run",
			zap.Int("level", lv.Number), zap.Error(err))

		return
	}
	if n := intersect.Count(lv.Lines); n > 0 {
		cfg.logger.Warn("generated layout has residual crossings",
			zap.Int("level", lv.Number), zap.Int("crossingLines", n))
	}

	for _, c := range lv.Circles {
		switch {
		case c.Degree() < DegreeFloor:
			cfg.logger.Warn("circle under degree floor",
				zap.Int("level", lv.Number),
				zap.Int("circle", c.ID),
				zap.Int("degree", c.Degree()),
				zap.Int("floor", DegreeFloor))
		case c.Degree() < params.Degree:
			cfg.logger.Info("circle under target degree",
				zap.Int("level", lv.Number),
				zap.Int("circle", c.ID),
				zap.Int("degree", c.Degree()),
				zap.Int("target", params.Degree))
		}
	}

	if !connected(lv) {
		cfg.logger.Warn("puzzle graph is disconnected",
			zap.Int("level", lv.Number))
	}
}

// connected reports whether every circle is reachable from the first over
// the neighbor relation. Plain BFS over the symmetric neighbor sets.
// Complexity: O(V + E).
func connected(lv *core.Level) bool {
	if len(lv.Circles) == 0 {
		return true
	}

	visited := make(map[int]struct{}, len(lv.Circles))
	queue := []*core.Circle{lv.Circles[0]}
	visited[lv.Circles[0].ID] = struct{}{}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for id := range c.Neighbors {
			if _, seen := visited[id]; seen {
				continue
			}
			n, err := lv.Circle(id)
			if err != nil {
				continue
			}
			visited[id] = struct{}{}
			queue = append(queue, n)
		}
	}

	return len(visited) == len(lv.Circles)
}
