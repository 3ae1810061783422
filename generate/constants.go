// Package generate shared constants: difficulty progression anchors and the
// deterministic defaults behind the bounded-attempt loops.

package generate

//-----------------------------------------------------------------------------
// Difficulty progression
//-----------------------------------------------------------------------------

// MinLevel is the first valid level number.
const MinLevel = 1

// BaseCircles is the circle count of level 1; it grows by one per full
// degree cycle.
const BaseCircles = 6

// DegreeFloor is both the first target degree of each cycle and the
// guaranteed per-circle minimum the assignment loop works toward regardless
// of the per-level target.
const DegreeFloor = 3

// DegreePhases is the number of degree steps per cycle: the target degree
// climbs DegreeFloor..DegreeFloor+DegreePhases−1 before the circle count
// increments and the degree resets.
const DegreePhases = 3

//-----------------------------------------------------------------------------
// Layout and scrambling defaults (tunable via options / LoadTuning)
//-----------------------------------------------------------------------------

// DefaultMargin is the canvas inset in pixels: the ring radius is
// min(w,h)/2 − margin and scrambled positions stay inside the margin frame.
const DefaultMargin = 30.0

// DefaultCircleRadius is the draw/hit radius of generated circles.
const DefaultCircleRadius = 15.0

// DefaultAssignPasses bounds the neediest-first refill loop. Generation
// quality/performance trade-off, not a correctness constant.
const DefaultAssignPasses = 1000

// DefaultScrambleAttempts bounds the per-circle position sampling loop.
const DefaultScrambleAttempts = 100

// DefaultMinSeparation is the scramble acceptance threshold: a candidate
// position at least this far from every other circle is accepted early.
// Defaults to twice the margin.
const DefaultMinSeparation = 2 * DefaultMargin

//-----------------------------------------------------------------------------
// Method name constants (error/log context prefixes)
//-----------------------------------------------------------------------------

const (
	// MethodParams is the canonical name of the parameter derivation.
	MethodParams = "Params"
	// MethodGenerate is the canonical name of the level orchestrator.
	MethodGenerate = "Generate"
)
