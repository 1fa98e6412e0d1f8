package nodepool_test

import (
	"testing"

	"github.com/katalvlaran/spatialpart/nodepool"
)

func BenchmarkPool_AddRemoveChurn(b *testing.B) {
	p := nodepool.New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		off := p.Add(i)
		p.Remove(off)
	}
}
