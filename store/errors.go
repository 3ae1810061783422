package store

import "errors"

var (
	// ErrNilLevel indicates Save was handed a nil level.
	ErrNilLevel = errors.New("store: nil level")

	// ErrCorrupt indicates a level document that cannot be decoded into a
	// consistent level (bad YAML, or lines referencing absent circle ids).
	ErrCorrupt = errors.New("store: corrupt level document")
)
