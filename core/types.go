package core

import (
	"errors"

	"github.com/msarica/untangle-game/geom"
)

// Sentinel errors for core puzzle operations.
var (
	// ErrUnknownCircle indicates an operation referenced a non-existent circle id.
	ErrUnknownCircle = errors.New("core: circle not found")

	// ErrSelfLine indicates a line from a circle to itself was attempted.
	ErrSelfLine = errors.New("core: self line not allowed")

	// ErrDuplicateLine indicates the unordered endpoint pair is already connected.
	ErrDuplicateLine = errors.New("core: duplicate line")

	// ErrEmptyLevel indicates an operation that requires at least one circle.
	ErrEmptyLevel = errors.New("core: level has no circles")
)

// Circle is a draggable puzzle node.
//
// ID uniquely identifies the circle for the lifetime of its Level. Neighbors
// is the set of connected circle ids; the relation is kept symmetric by
// Level.Connect (if A lists B, B lists A). Degree == len(Neighbors).
type Circle struct {
	// ID is the stable identifier of this circle within its level.
	ID int

	// Pos is the current canvas position. Mutated by drags and scrambling.
	Pos geom.Point

	// Radius is the fixed draw/hit radius.
	Radius float64

	// Dragged marks the circle currently held by the pointer.
	Dragged bool

	// Neighbors holds the ids of connected circles (symmetric).
	Neighbors map[int]struct{}
}

// Degree returns the number of lines incident to the circle.
// Complexity: O(1).
func (c *Circle) Degree() int {
	return len(c.Neighbors)
}

// Line is an unordered connection between two circle ids.
//
// Crossing is derived state: it is only meaningful immediately after a call
// to intersect.Update on the current positions, and is never an input.
type Line struct {
	// From and To are the endpoint circle ids. The pair is unordered;
	// construction normalizes nothing, lookups compare both orders.
	From int
	To   int

	// Crossing reports whether this line crossed another non-adjacent line
	// at the last intersection recomputation.
	Crossing bool
}

// Touches reports whether the line is incident to circle id.
// Complexity: O(1).
func (l *Line) Touches(id int) bool {
	return l.From == id || l.To == id
}

// SharesEndpoint reports whether two lines are adjacent (share a circle).
// Adjacent lines are exempt from crossing detection.
// Complexity: O(1).
func (l *Line) SharesEndpoint(o *Line) bool {
	return l.Touches(o.From) || l.Touches(o.To)
}

// Snapshot is a plain circles+lines arrangement. It backs the solution
// (a captured zero-crossing arrangement with the same topology as the
// puzzle) and persistence round-trips. A snapshot is immutable by
// convention once captured; reveal/restore paths must Clone it.
type Snapshot struct {
	Circles []*Circle
	Lines   []*Line
}

// Level is one generated puzzle: the mutable play state plus the captured
// solution. Extent records the canvas size the level was generated for;
// a store lookup only matches on the exact (Number, Extent) pair, which is
// what forces regeneration after a viewport resize.
type Level struct {
	// Number is the 1-based difficulty index.
	Number int

	// Extent is the canvas size this level was laid out for.
	Extent geom.Extent

	// Circles is the current node arrangement, indexed by position in the
	// slice; ids are dense 0..n-1 but lookups go through Circle(id).
	Circles []*Circle

	// Lines is the fixed topology. Created in one batch by the generator,
	// never added to or removed from during play.
	Lines []*Line

	// Solution is the captured zero-crossing arrangement, nil until the
	// generator captures it.
	Solution *Snapshot
}
