package core_test

import (
	"testing"

	"github.com/msarica/untangle-game/core"
	"github.com/msarica/untangle-game/geom"
	"github.com/stretchr/testify/require"
)

func TestCircleClone_Independent(t *testing.T) {
	c := &core.Circle{
		ID:        3,
		Pos:       geom.Point{X: 10, Y: 20},
		Radius:    testRadius,
		Neighbors: map[int]struct{}{1: {}, 2: {}},
	}
	nc := c.Clone()
	require.Equal(t, c, nc)

	nc.Pos.X = 999
	nc.Neighbors[7] = struct{}{}
	require.Equal(t, 10.0, c.Pos.X)
	require.NotContains(t, c.Neighbors, 7)
}

func TestSnapshotClone_NilSafe(t *testing.T) {
	var s *core.Snapshot
	require.Nil(t, s.Clone())
}

func TestLevelClone_DeepAndValueEqual(t *testing.T) {
	lv := square(t)
	lv.Solution = lv.Capture()

	cp := lv.Clone()
	require.Equal(t, lv, cp)

	// Reference-distinct at every layer.
	require.NotSame(t, lv.Circles[0], cp.Circles[0])
	require.NotSame(t, lv.Lines[0], cp.Lines[0])
	require.NotSame(t, lv.Solution, cp.Solution)
	require.NotSame(t, lv.Solution.Circles[0], cp.Solution.Circles[0])

	// Mutating the copy must not bleed into the original.
	cp.Circles[0].Pos = geom.Point{X: -1, Y: -1}
	cp.Lines[0].Crossing = true
	cp.Solution.Circles[0].Neighbors[99] = struct{}{}
	require.Equal(t, geom.Point{X: 0, Y: 0}, lv.Circles[0].Pos)
	require.False(t, lv.Lines[0].Crossing)
	require.NotContains(t, lv.Solution.Circles[0].Neighbors, 99)
}

func TestCapture_FreezesArrangement(t *testing.T) {
	lv := square(t)
	snap := lv.Capture()

	// Moving the live circle afterwards leaves the snapshot untouched.
	require.NoError(t, lv.MoveCircle(0, geom.Point{X: 400, Y: 300}))
	require.Equal(t, geom.Point{X: 0, Y: 0}, snap.Circles[0].Pos)

	// Same topology either way.
	require.Equal(t, core.TopologyKey(lv.Lines), core.TopologyKey(snap.Lines))
}
