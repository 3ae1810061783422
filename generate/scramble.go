package generate

import (
	"math"

	"github.com/msarica/untangle-game/core"
	"github.com/msarica/untangle-game/geom"

	"go.uber.org/zap"
)

// scramble randomizes every circle's position inside the margin frame using
// the grid-biased sampler, leaving topology untouched — the captured
// solution proves a zero-crossing arrangement exists for exactly these
// lines, so the scrambled puzzle is solvable by construction.
//
// Per circle, up to cfg.scrambleAttempts candidates are drawn. A candidate
// whose minimum distance to all other circles' current positions reaches
// cfg.minSeparation is accepted immediately; otherwise the best-scoring
// candidate seen across all attempts wins. Scoring uses current positions
// on purpose: earlier circles may already occupy scrambled spots.
// Complexity: O(V² · attempts) worst case; trivial at puzzle sizes.
func scramble(lv *core.Level, cfg generatorConfig) {
	sampler, err := geom.NewGridSampler(lv.Extent, cfg.margin)
	if err != nil {
		// Extent was validated against the margin in Generate; reaching
		// this means the two checks drifted apart.
		cfg.logger.Error("scramble sampler unavailable; positions left as laid out",
			zap.Int("level", lv.Number), zap.Error(err))

		return
	}

	for _, c := range lv.Circles {
		best := c.Pos
		bestScore := -1.0

		for attempt := 0; attempt < cfg.scrambleAttempts; attempt++ {
			p, sampleErr := sampler.Sample(cfg.rng)
			if sampleErr != nil {
				cfg.logger.Error("scramble sampling failed",
					zap.Int("level", lv.Number), zap.Error(sampleErr))

				return
			}

			score := minSeparation(lv, c, p)
			if score >= cfg.minSeparation {
				best = p

				break
			}
			if score > bestScore {
				best, bestScore = p, score
			}
		}

		c.Pos = geom.ClampPoint(best, c.Radius, lv.Extent)
	}
}

// minSeparation returns the distance from p to the nearest other circle's
// current position. A lone circle is unconstrained.
func minSeparation(lv *core.Level, self *core.Circle, p geom.Point) float64 {
	best := math.MaxFloat64
	for _, o := range lv.Circles {
		if o.ID == self.ID {
			continue
		}
		if d := geom.Dist(p, o.Pos); d < best {
			best = d
		}
	}

	return best
}
