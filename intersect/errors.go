package intersect

import "errors"

// ErrUnknownCircle indicates a line endpoint id with no matching circle.
// This is a programming-contract violation (stale lines against a new circle
// list); callers must treat it as fatal rather than skip the pair.
var ErrUnknownCircle = errors.New("intersect: line references unknown circle")
