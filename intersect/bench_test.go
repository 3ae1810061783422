package intersect_test

import (
	"math/rand"
	"testing"

	"github.com/msarica/untangle-game/core"
	"github.com/msarica/untangle-game/geom"
	"github.com/msarica/untangle-game/intersect"
)

// buildDenseLevel scatters n circles randomly and connects every pair whose
// index distance is below k, giving roughly n*k lines.
func buildDenseLevel(n, k int) *core.Level {
	rng := rand.New(rand.NewSource(1))
	lv := core.NewLevel(1, geom.Extent{Width: 800, Height: 600})
	for i := 0; i < n; i++ {
		lv.AddCircle(geom.Point{
			X: 30 + rng.Float64()*740,
			Y: 30 + rng.Float64()*540,
		}, 15)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n && j <= i+k; j++ {
			_, _ = lv.Connect(i, j)
		}
	}

	return lv
}

// BenchmarkUpdate_Typical measures a realistic level size (tens of lines).
func BenchmarkUpdate_Typical(b *testing.B) {
	lv := buildDenseLevel(12, 4) // ~40 lines

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = intersect.Update(lv.Circles, lv.Lines)
	}
}

// BenchmarkUpdate_Large stresses the O(L²) pass well past game sizes.
func BenchmarkUpdate_Large(b *testing.B) {
	lv := buildDenseLevel(100, 6) // ~570 lines

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = intersect.Update(lv.Circles, lv.Lines)
	}
}
