package spatial_test

import (
	"testing"

	"github.com/katalvlaran/spatialpart/spatial"
)

var sinkAabb spatial.Aabb
var sinkBool bool

func BenchmarkAabb_Union(b *testing.B) {
	a := spatial.Aabb{Min: spatial.Vec3{X: 0, Y: 0, Z: 0}, Max: spatial.Vec3{X: 1, Y: 1, Z: 1}}
	c := spatial.Aabb{Min: spatial.Vec3{X: 0.3, Y: 0.3, Z: 0.3}, Max: spatial.Vec3{X: 2, Y: 2, Z: 2}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkAabb = a.Union(c)
	}
}

func BenchmarkAabb_SlabRayTest(b *testing.B) {
	box := spatial.Aabb{Min: spatial.Vec3{X: 0, Y: 0, Z: 0}, Max: spatial.Vec3{X: 1, Y: 1, Z: 1}}
	origin := spatial.Vec3{X: -5}
	invDir := spatial.Vec3{X: 1, Y: 1, Z: 1}
	signs := spatial.SignsFromInvDir(invDir)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, sinkBool = box.SlabRayTest(origin, invDir, signs, 1.0)
	}
}
