package spatial_test

import (
	"fmt"

	"github.com/katalvlaran/spatialpart/spatial"
)

func ExampleAabb_Union() {
	a := spatial.Aabb{Min: spatial.Vec3{X: 0, Y: 0, Z: 0}, Max: spatial.Vec3{X: 1, Y: 1, Z: 1}}
	b := spatial.Aabb{Min: spatial.Vec3{X: 2, Y: -1, Z: 0}, Max: spatial.Vec3{X: 3, Y: 0, Z: 1}}
	u := a.Union(b)
	fmt.Println(u.Min, u.Max)
	// Output: {0 -1 0} {3 1 1}
}

func ExampleAabb_HasIntersection() {
	a := spatial.Aabb{Min: spatial.Vec3{X: 0, Y: 0, Z: 0}, Max: spatial.Vec3{X: 1, Y: 1, Z: 1}}
	b := spatial.Aabb{Min: spatial.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, Max: spatial.Vec3{X: 2, Y: 2, Z: 2}}
	fmt.Println(a.HasIntersection(b, 0))
	// Output: true
}
