// File: methods_clone.go
// Role: deep-copy semantics for every core type.
//
// Every boundary that stores or restores puzzle state clones: the generator
// when capturing the solution and when answering from a store, the stores on
// both Save and Load. Mutating any clone must never reach the original.

package core

// Clone returns a deep copy of the circle, including an independent copy of
// the neighbor set.
// Complexity: O(deg).
func (c *Circle) Clone() *Circle {
	nc := &Circle{
		ID:        c.ID,
		Pos:       c.Pos,
		Radius:    c.Radius,
		Dragged:   c.Dragged,
		Neighbors: make(map[int]struct{}, len(c.Neighbors)),
	}
	for id := range c.Neighbors {
		nc.Neighbors[id] = struct{}{}
	}

	return nc
}

// Clone returns a copy of the line.
// Complexity: O(1).
func (l *Line) Clone() *Line {
	nl := *l

	return &nl
}

// Clone returns a deep copy of the snapshot.
// Complexity: O(V + E).
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	ns := &Snapshot{
		Circles: make([]*Circle, 0, len(s.Circles)),
		Lines:   make([]*Line, 0, len(s.Lines)),
	}
	for _, c := range s.Circles {
		ns.Circles = append(ns.Circles, c.Clone())
	}
	for _, l := range s.Lines {
		ns.Lines = append(ns.Lines, l.Clone())
	}

	return ns
}

// Clone returns a deep copy of the level: circles, lines, and solution.
// Complexity: O(V + E).
func (lv *Level) Clone() *Level {
	nl := &Level{
		Number:   lv.Number,
		Extent:   lv.Extent,
		Circles:  make([]*Circle, 0, len(lv.Circles)),
		Lines:    make([]*Line, 0, len(lv.Lines)),
		Solution: lv.Solution.Clone(),
	}
	for _, c := range lv.Circles {
		nl.Circles = append(nl.Circles, c.Clone())
	}
	for _, l := range lv.Lines {
		nl.Lines = append(nl.Lines, l.Clone())
	}

	return nl
}
