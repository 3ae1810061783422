package store

import (
	"sync"

	"github.com/msarica/untangle-game/core"
	"github.com/msarica/untangle-game/geom"
)

// memKey identifies a stored level: lookups match only on the exact
// (number, extent) pair.
type memKey struct {
	number int
	width  float64
	height float64
}

// MemoryStore is the per-process level store. It holds deep copies and
// answers with deep copies, so callers can mutate what they get back
// without corrupting a later restore.
type MemoryStore struct {
	mu     sync.RWMutex
	levels map[memKey]*core.Level
}

// NewMemoryStore creates an empty in-memory level store.
// Complexity: O(1).
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{levels: make(map[memKey]*core.Level)}
}

// Load returns an independent copy of the level stored under the exact
// (number, extent) key; ok reports a hit.
// Complexity: O(V + E) for the clone on hit.
func (s *MemoryStore) Load(number int, extent geom.Extent) (*core.Level, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lv, ok := s.levels[memKey{number: number, width: extent.Width, height: extent.Height}]
	if !ok {
		return nil, false, nil
	}

	return lv.Clone(), true, nil
}

// Save stores an independent copy of the level under its (number, extent)
// key, replacing any previous entry. Returns ErrNilLevel for nil input.
// Complexity: O(V + E).
func (s *MemoryStore) Save(lv *core.Level) error {
	if lv == nil {
		return ErrNilLevel
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.levels[memKey{number: lv.Number, width: lv.Extent.Width, height: lv.Extent.Height}] = lv.Clone()

	return nil
}

// Len reports the number of stored levels.
// Complexity: O(1).
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.levels)
}
