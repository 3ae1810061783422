package generate

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Tuning is the TOML form of the generation-quality knobs. The bounded
// attempt limits are trade-offs, not load-bearing constants, so deployments
// tune them from a file instead of recompiling:
//
//	margin            = 30.0
//	circle_radius     = 15.0
//	assign_passes     = 1000
//	scramble_attempts = 100
//	min_separation    = 60.0
//	seed              = 42    # omit for time-seeded scrambling
//
// Zero / omitted fields keep their defaults.
type Tuning struct {
	Margin           float64 `toml:"margin"`
	CircleRadius     float64 `toml:"circle_radius"`
	AssignPasses     int     `toml:"assign_passes"`
	ScrambleAttempts int     `toml:"scramble_attempts"`
	MinSeparation    float64 `toml:"min_separation"`
	Seed             *int64  `toml:"seed"`
}

// Options converts the tuning document into generator options, validating
// every set field. Returns ErrBadTuning on negative bounds or non-positive
// geometry values.
// Complexity: O(1).
func (t Tuning) Options() ([]Option, error) {
	opts := make([]Option, 0, 6)

	if t.Margin < 0 {
		return nil, fmt.Errorf("generate: margin=%g: %w", t.Margin, ErrBadTuning)
	}
	if t.Margin > 0 {
		opts = append(opts, WithMargin(t.Margin))
	}

	if t.CircleRadius < 0 {
		return nil, fmt.Errorf("generate: circle_radius=%g: %w", t.CircleRadius, ErrBadTuning)
	}
	if t.CircleRadius > 0 {
		opts = append(opts, WithCircleRadius(t.CircleRadius))
	}

	if t.AssignPasses < 0 {
		return nil, fmt.Errorf("generate: assign_passes=%d: %w", t.AssignPasses, ErrBadTuning)
	}
	if t.AssignPasses > 0 {
		opts = append(opts, WithAssignPasses(t.AssignPasses))
	}

	if t.ScrambleAttempts < 0 {
		return nil, fmt.Errorf("generate: scramble_attempts=%d: %w", t.ScrambleAttempts, ErrBadTuning)
	}
	if t.ScrambleAttempts > 0 {
		opts = append(opts, WithScrambleAttempts(t.ScrambleAttempts))
	}

	if t.MinSeparation < 0 {
		return nil, fmt.Errorf("generate: min_separation=%g: %w", t.MinSeparation, ErrBadTuning)
	}
	if t.MinSeparation > 0 {
		opts = append(opts, WithMinSeparation(t.MinSeparation))
	}

	if t.Seed != nil {
		opts = append(opts, WithSeed(*t.Seed))
	}

	return opts, nil
}

// LoadTuning reads a TOML tuning file and converts it into options.
// Returns ErrBadTuning for invalid values; file and parse errors pass
// through from the TOML decoder.
func LoadTuning(path string) ([]Option, error) {
	var t Tuning
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("generate: tuning file %s: %w", path, err)
	}

	return t.Options()
}
