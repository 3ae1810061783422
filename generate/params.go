package generate

import "fmt"

// LevelParams are the derived difficulty parameters of one level.
type LevelParams struct {
	// Circles is the number of circles to place.
	Circles int
	// Degree is the per-circle target degree for edge assignment.
	Degree int
}

// Params derives (circle count, target degree) from the level number.
//
// Pure progression: with cycle = (level−1)/3 and step = (level−1)%3,
// Circles = 6 + cycle and Degree = 3 + step. The degree climbs 3→5 at a
// fixed circle count, then the circle count increments and the degree
// resets, so difficulty is monotonically non-decreasing:
//
//	level 1 → (6,3)   level 3 → (6,5)   level 4 → (7,3)   level 7 → (8,3)
//
// Returns ErrBadLevel for level < MinLevel.
// Complexity: O(1).
func Params(level int) (LevelParams, error) {
	if level < MinLevel {
		return LevelParams{}, fmt.Errorf("%s: level=%d < min=%d: %w",
			MethodParams, level, MinLevel, ErrBadLevel)
	}

	cycle := (level - MinLevel) / DegreePhases
	step := (level - MinLevel) % DegreePhases

	return LevelParams{
		Circles: BaseCircles + cycle,
		Degree:  DegreeFloor + step,
	}, nil
}
