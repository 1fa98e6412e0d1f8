package dynbvh_test

import (
	"fmt"

	"github.com/katalvlaran/spatialpart/dynbvh"
	"github.com/katalvlaran/spatialpart/query"
	"github.com/katalvlaran/spatialpart/spatial"
)

func ExampleTree_Update() {
	tr := dynbvh.New(64)
	tr.Add(1, box(0, 0, 0, 1, 1, 1), 1)
	tr.Update(1, box(10, 0, 0, 11, 1, 1))

	var hits []spatial.EntityHandle
	cb := query.NewAabbCallback(box(9, -1, -1, 12, 2, 2), 0xFFFFFFFF, func(e spatial.EntityHandle) {
		hits = append(hits, e)
	})
	tr.IntersectAabb(cb)
	fmt.Println(hits)
	// Output: [1]
}
