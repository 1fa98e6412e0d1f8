package dynbvh_test

import (
	"testing"

	"github.com/katalvlaran/spatialpart/dynbvh"
	"github.com/katalvlaran/spatialpart/query"
	"github.com/katalvlaran/spatialpart/spatial"
)

func BenchmarkTree_Add(b *testing.B) {
	tr := dynbvh.New(spatial.EntityHandle(b.N + 1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x := float64(i)
		tr.Add(spatial.EntityHandle(i+1), box(x, 0, 0, x+1, 1, 1), 1)
	}
}

func BenchmarkTree_IntersectAabb(b *testing.B) {
	tr := dynbvh.New(1024)
	for i := 0; i < 1000; i++ {
		x := float64(i)
		tr.Add(spatial.EntityHandle(i+1), box(x, 0, 0, x+1, 1, 1), 1)
	}
	q := box(-1, -1, -1, 1000, 2, 2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cb := query.NewAabbCallback(q, 0xFFFFFFFF, func(e spatial.EntityHandle) {})
		tr.IntersectAabb(cb)
	}
}
