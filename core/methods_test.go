package core_test

import (
	"testing"

	"github.com/msarica/untangle-game/core"
	"github.com/msarica/untangle-game/geom"
	"github.com/stretchr/testify/require"
)

const testRadius = 15.0

var testExtent = geom.Extent{Width: 800, Height: 600}

// square builds four circles at the corners of a 100x100 square connected
// as a ring: (0-1),(1-2),(2-3),(3-0).
func square(t *testing.T) *core.Level {
	t.Helper()
	lv := core.NewLevel(1, testExtent)
	for _, p := range []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}} {
		lv.AddCircle(p, testRadius)
	}
	for _, pair := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		_, err := lv.Connect(pair[0], pair[1])
		require.NoError(t, err)
	}

	return lv
}

func TestAddCircle_DenseIDs(t *testing.T) {
	lv := core.NewLevel(1, testExtent)
	for i := 0; i < 5; i++ {
		c := lv.AddCircle(geom.Point{X: float64(i)}, testRadius)
		require.Equal(t, i, c.ID)
	}
	c, err := lv.Circle(3)
	require.NoError(t, err)
	require.Equal(t, 3, c.ID)
}

func TestCircle_Unknown(t *testing.T) {
	lv := square(t)
	_, err := lv.Circle(42)
	require.ErrorIs(t, err, core.ErrUnknownCircle)
	_, err = lv.Circle(-1)
	require.ErrorIs(t, err, core.ErrUnknownCircle)
}

func TestConnect_SymmetricNeighbors(t *testing.T) {
	lv := square(t)
	for _, pair := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		require.True(t, lv.Connected(pair[0], pair[1]))
		require.True(t, lv.Connected(pair[1], pair[0]))
	}
	// Every corner of the ring has degree 2.
	for id := 0; id < 4; id++ {
		d, err := lv.Degree(id)
		require.NoError(t, err)
		require.Equal(t, 2, d)
	}
}

func TestConnect_Sentinels(t *testing.T) {
	lv := square(t)

	_, err := lv.Connect(1, 1)
	require.ErrorIs(t, err, core.ErrSelfLine)

	_, err = lv.Connect(0, 9)
	require.ErrorIs(t, err, core.ErrUnknownCircle)

	_, err = lv.Connect(0, 1)
	require.ErrorIs(t, err, core.ErrDuplicateLine)
	// Duplicate rejection is order-insensitive (unordered pair).
	_, err = lv.Connect(1, 0)
	require.ErrorIs(t, err, core.ErrDuplicateLine)

	// Rejections must not grow the line list.
	require.Len(t, lv.Lines, 4)
}

func TestMoveCircle_Clamps(t *testing.T) {
	lv := square(t)

	require.NoError(t, lv.MoveCircle(0, geom.Point{X: -500, Y: 300}))
	c, err := lv.Circle(0)
	require.NoError(t, err)
	require.Equal(t, geom.Point{X: testRadius, Y: 300}, c.Pos)

	require.NoError(t, lv.MoveCircle(0, geom.Point{X: 5000, Y: 5000}))
	require.Equal(t, geom.Point{X: testExtent.Width - testRadius, Y: testExtent.Height - testRadius}, c.Pos)

	require.ErrorIs(t, lv.MoveCircle(77, geom.Point{}), core.ErrUnknownCircle)
}

func TestSetDragged(t *testing.T) {
	lv := square(t)
	require.NoError(t, lv.SetDragged(2, true))
	c, err := lv.Circle(2)
	require.NoError(t, err)
	require.True(t, c.Dragged)
	require.NoError(t, lv.SetDragged(2, false))
	require.False(t, c.Dragged)
	require.ErrorIs(t, lv.SetDragged(9, true), core.ErrUnknownCircle)
}

func TestLine_Adjacency(t *testing.T) {
	a := &core.Line{From: 0, To: 1}
	b := &core.Line{From: 1, To: 2}
	c := &core.Line{From: 2, To: 3}
	require.True(t, a.SharesEndpoint(b))
	require.True(t, b.SharesEndpoint(a))
	require.False(t, a.SharesEndpoint(c))
	require.True(t, a.Touches(0))
	require.False(t, a.Touches(3))
}

func TestTopologyKey(t *testing.T) {
	lv := square(t)
	keys := core.TopologyKey(lv.Lines)
	require.Len(t, keys, 4)
	// Normalized to (min,max) regardless of line orientation.
	require.Contains(t, keys, [2]int{0, 3})
	require.Contains(t, keys, [2]int{0, 1})

	flipped := []*core.Line{{From: 1, To: 0}, {From: 2, To: 1}, {From: 3, To: 2}, {From: 0, To: 3}}
	require.Equal(t, keys, core.TopologyKey(flipped))
}
