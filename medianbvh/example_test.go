package medianbvh_test

import (
	"fmt"

	"github.com/katalvlaran/spatialpart/medianbvh"
	"github.com/katalvlaran/spatialpart/query"
	"github.com/katalvlaran/spatialpart/spatial"
)

func ExampleTree_IntersectAabb() {
	tr := medianbvh.New(64)
	tr.Add(1, box(0, 0, 0, 1, 1, 1), 1)
	tr.Add(2, box(10, 0, 0, 11, 1, 1), 1)
	tr.Rebuild()

	var hits []spatial.EntityHandle
	cb := query.NewAabbCallback(box(-1, -1, -1, 2, 2, 2), 0xFFFFFFFF, func(e spatial.EntityHandle) {
		hits = append(hits, e)
	})
	tr.IntersectAabb(cb)
	fmt.Println(hits)
	// Output: [1]
}
