package threestage_test

import (
	"testing"

	"github.com/katalvlaran/spatialpart/spatial"
)

func BenchmarkIndex_AddThenQuery(b *testing.B) {
	ix := newTestIndex()
	for i := 0; i < 1000; i++ {
		x := float64(i)
		ix.Add(spatial.EntityHandle(i+1), box(x, 0, 0, x+1, 1, 1), 1)
	}
	ix.Rebuild()
	q := box(-1, -1, -1, 1000, 2, 2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = aabbHits(ix, q, 0xFFFFFFFF)
	}
}
