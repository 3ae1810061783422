package geom_test

import (
	"testing"

	"github.com/msarica/untangle-game/geom"
	"github.com/stretchr/testify/require"
)

func pt(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 geom.Point
		want           bool
	}{
		{
			name: "plain X crossing",
			a1:   pt(0, 0), a2: pt(100, 100),
			b1: pt(0, 100), b2: pt(100, 0),
			want: true,
		},
		{
			name: "square diagonals",
			a1:   pt(0, 0), a2: pt(100, 100),
			b1: pt(100, 0), b2: pt(0, 100),
			want: true,
		},
		{
			name: "disjoint parallel horizontals",
			a1:   pt(0, 0), a2: pt(100, 0),
			b1: pt(0, 50), b2: pt(100, 50),
			want: false,
		},
		{
			name: "collinear overlapping (policy: not crossing)",
			a1:   pt(0, 0), a2: pt(100, 0),
			b1: pt(50, 0), b2: pt(150, 0),
			want: false,
		},
		{
			name: "T junction: endpoint on interior counts",
			a1:   pt(0, 0), a2: pt(100, 0),
			b1: pt(50, 0), b2: pt(50, 80),
			want: true,
		},
		{
			name: "shared endpoint counts geometrically",
			a1:   pt(0, 0), a2: pt(100, 0),
			b1: pt(100, 0), b2: pt(100, 100),
			want: true,
		},
		{
			name: "lines would cross but segments stop short",
			a1:   pt(0, 0), a2: pt(10, 10),
			b1: pt(100, 0), b2: pt(90, 10),
			want: false,
		},
		{
			name: "near-parallel under epsilon",
			a1:   pt(0, 0), a2: pt(100, 0),
			b1: pt(0, 1), b2: pt(100, 1 + 1e-13),
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := geom.SegmentsIntersect(tc.a1, tc.a2, tc.b1, tc.b2)
			require.Equal(t, tc.want, got)
			// The predicate is symmetric in its two segments.
			require.Equal(t, tc.want, geom.SegmentsIntersect(tc.b1, tc.b2, tc.a1, tc.a2))
		})
	}
}
