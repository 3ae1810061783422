package core

import (
	"fmt"

	"github.com/msarica/untangle-game/geom"
)

// NewLevel creates an empty level for the given difficulty number and canvas
// extent. Circles and lines are added by the generator.
// Complexity: O(1).
func NewLevel(number int, extent geom.Extent) *Level {
	return &Level{
		Number:  number,
		Extent:  extent,
		Circles: make([]*Circle, 0),
		Lines:   make([]*Line, 0),
	}
}

// AddCircle appends a circle with the next dense id at pos.
// Complexity: O(1).
func (lv *Level) AddCircle(pos geom.Point, radius float64) *Circle {
	c := &Circle{
		ID:        len(lv.Circles),
		Pos:       pos,
		Radius:    radius,
		Neighbors: make(map[int]struct{}),
	}
	lv.Circles = append(lv.Circles, c)

	return c
}

// Circle returns the circle with the given id, or ErrUnknownCircle.
// Ids are dense slice indexes, so the hot path is O(1) with a defensive
// identity check; the fallback scan covers restored snapshots whose slice
// order may not match ids.
func (lv *Level) Circle(id int) (*Circle, error) {
	if id >= 0 && id < len(lv.Circles) && lv.Circles[id].ID == id {
		return lv.Circles[id], nil
	}
	for _, c := range lv.Circles {
		if c.ID == id {
			return c, nil
		}
	}

	return nil, fmt.Errorf("core: circle %d: %w", id, ErrUnknownCircle)
}

// Connected reports whether circles a and b share a line.
// Complexity: O(1) via the neighbor set.
func (lv *Level) Connected(a, b int) bool {
	ca, err := lv.Circle(a)
	if err != nil {
		return false
	}
	_, ok := ca.Neighbors[b]

	return ok
}

// Degree returns the current degree of circle id, or ErrUnknownCircle.
// Complexity: O(1).
func (lv *Level) Degree(id int) (int, error) {
	c, err := lv.Circle(id)
	if err != nil {
		return 0, err
	}

	return c.Degree(), nil
}

// Connect adds the line a—b and records both symmetric neighbor entries.
// Rejects self lines, unknown ids, and duplicate unordered pairs with the
// corresponding sentinel; on any rejection the level is left unchanged.
// Complexity: O(1).
func (lv *Level) Connect(a, b int) (*Line, error) {
	if a == b {
		return nil, fmt.Errorf("core: Connect(%d,%d): %w", a, b, ErrSelfLine)
	}
	ca, err := lv.Circle(a)
	if err != nil {
		return nil, fmt.Errorf("core: Connect(%d,%d): %w", a, b, err)
	}
	cb, err := lv.Circle(b)
	if err != nil {
		return nil, fmt.Errorf("core: Connect(%d,%d): %w", a, b, err)
	}
	if _, dup := ca.Neighbors[b]; dup {
		return nil, fmt.Errorf("core: Connect(%d,%d): %w", a, b, ErrDuplicateLine)
	}

	line := &Line{From: a, To: b}
	lv.Lines = append(lv.Lines, line)
	ca.Neighbors[b] = struct{}{}
	cb.Neighbors[a] = struct{}{}

	return line, nil
}

// MoveCircle stores a new position for circle id, clamped per axis into
// [radius, extent−radius]. This is the single entry point for drag input:
// raw pointer coordinates are never stored unclamped.
// Complexity: O(1).
func (lv *Level) MoveCircle(id int, pos geom.Point) error {
	c, err := lv.Circle(id)
	if err != nil {
		return fmt.Errorf("core: MoveCircle(%d): %w", id, err)
	}
	c.Pos = geom.ClampPoint(pos, c.Radius, lv.Extent)

	return nil
}

// SetDragged toggles the drag flag of circle id.
// Complexity: O(1).
func (lv *Level) SetDragged(id int, dragged bool) error {
	c, err := lv.Circle(id)
	if err != nil {
		return fmt.Errorf("core: SetDragged(%d): %w", id, err)
	}
	c.Dragged = dragged

	return nil
}

// Capture deep-copies the current circles and lines into a Snapshot.
// Used by the generator to record the solution before scrambling.
// Complexity: O(V + E).
func (lv *Level) Capture() *Snapshot {
	s := &Snapshot{
		Circles: make([]*Circle, 0, len(lv.Circles)),
		Lines:   make([]*Line, 0, len(lv.Lines)),
	}
	for _, c := range lv.Circles {
		s.Circles = append(s.Circles, c.Clone())
	}
	for _, l := range lv.Lines {
		s.Lines = append(s.Lines, l.Clone())
	}

	return s
}

// TopologyKey returns the set of unordered endpoint pairs as normalized
// [2]int keys (min,max). Two arrangements with equal keys have identical
// topology regardless of positions.
// Complexity: O(E).
func TopologyKey(lines []*Line) map[[2]int]struct{} {
	keys := make(map[[2]int]struct{}, len(lines))
	var a, b int
	for _, l := range lines {
		a, b = l.From, l.To
		if a > b {
			a, b = b, a
		}
		keys[[2]int{a, b}] = struct{}{}
	}

	return keys
}
