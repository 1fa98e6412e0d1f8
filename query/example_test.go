package query_test

import (
	"fmt"

	"github.com/katalvlaran/spatialpart/query"
	"github.com/katalvlaran/spatialpart/spatial"
)

func ExampleAabbCallback_ExecuteIfRelevant() {
	box := spatial.Aabb{Min: spatial.Vec3{X: 0, Y: 0, Z: 0}, Max: spatial.Vec3{X: 1, Y: 1, Z: 1}}
	var hit bool
	cb := query.NewAabbCallback(box, 0xFFFFFFFF, func(e spatial.EntityHandle) { hit = true })

	entityBox := spatial.Aabb{Min: spatial.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, Max: spatial.Vec3{X: 2, Y: 2, Z: 2}}
	cb.ExecuteIfRelevant(entityBox, 1)
	fmt.Println(hit)
	// Output: true
}
