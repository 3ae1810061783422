// Package core defines the central Circle, Line, Level, and Snapshot types
// of the untangle puzzle, and provides primitives for building, querying,
// and deep-copying them.
//
// Ownership model: a Level is exclusively owned by whichever caller holds it.
// The generator and the intersection engine never retain references between
// calls, so no locking is needed — the game loop is single-threaded and
// cooperative by design. Every boundary that stores or restores puzzle state
// goes through explicit value-semantics cloning (Clone / Capture) so that no
// reference ever aliases back into caller state.
//
// This file set declares:
//
//	types.go         — Circle, Line, Snapshot, Level, sentinel errors
//	methods.go       — construction, lookup, degree and drag operations
//	methods_clone.go — deep-copy semantics for every type
//
// Errors:
//
//	ErrUnknownCircle  - a referenced circle id does not exist in the level.
//	ErrSelfLine       - a line from a circle to itself was requested.
//	ErrDuplicateLine  - the unordered endpoint pair already has a line.
//	ErrEmptyLevel     - an operation requires at least one circle.
package core
