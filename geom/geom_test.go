package geom_test

import (
	"testing"

	"github.com/msarica/untangle-game/geom"
	"github.com/stretchr/testify/require"
)

func TestDist(t *testing.T) {
	require.Equal(t, 5.0, geom.Dist(geom.Point{X: 0, Y: 0}, geom.Point{X: 3, Y: 4}))
	require.Equal(t, 0.0, geom.Dist(geom.Point{X: 7, Y: -2}, geom.Point{X: 7, Y: -2}))
	// symmetric
	a, b := geom.Point{X: 1, Y: 2}, geom.Point{X: -4, Y: 9}
	require.Equal(t, geom.Dist(a, b), geom.Dist(b, a))
}

func TestClamp(t *testing.T) {
	require.Equal(t, 2.0, geom.Clamp(1.5, 2, 8))
	require.Equal(t, 8.0, geom.Clamp(9.1, 2, 8))
	require.Equal(t, 5.0, geom.Clamp(5, 2, 8))
	// boundary values stay put
	require.Equal(t, 2.0, geom.Clamp(2, 2, 8))
	require.Equal(t, 8.0, geom.Clamp(8, 2, 8))
}

func TestClampPoint(t *testing.T) {
	ext := geom.Extent{Width: 800, Height: 600}
	const r = 15.0

	// Interior point is untouched.
	p := geom.ClampPoint(geom.Point{X: 100, Y: 100}, r, ext)
	require.Equal(t, geom.Point{X: 100, Y: 100}, p)

	// Off-canvas drag snaps to the radius inset on each axis independently.
	p = geom.ClampPoint(geom.Point{X: -40, Y: 700}, r, ext)
	require.Equal(t, geom.Point{X: r, Y: ext.Height - r}, p)

	p = geom.ClampPoint(geom.Point{X: 900, Y: -3}, r, ext)
	require.Equal(t, geom.Point{X: ext.Width - r, Y: r}, p)
}

func TestExtentHelpers(t *testing.T) {
	ext := geom.Extent{Width: 800, Height: 600}
	require.Equal(t, 600.0, ext.Min())
	require.Equal(t, geom.Point{X: 400, Y: 300}, ext.Center())
}
