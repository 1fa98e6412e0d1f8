package densemap_test

import (
	"testing"

	"github.com/katalvlaran/spatialpart/densemap"
	"github.com/katalvlaran/spatialpart/spatial"
)

func BenchmarkMap_SetDense(b *testing.B) {
	m := densemap.New(1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Set(spatial.EntityHandle(i%1024), int64(i))
	}
}

func BenchmarkMap_SetSparse(b *testing.B) {
	m := densemap.New(16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Set(spatial.EntityHandle(1000+i), int64(i))
	}
}
