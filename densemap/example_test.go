package densemap_test

import (
	"fmt"

	"github.com/katalvlaran/spatialpart/densemap"
	"github.com/katalvlaran/spatialpart/spatial"
)

func ExampleMap_Set() {
	m := densemap.New(16)
	m.Set(3, 100)
	m.Set(spatial.EntityHandle(1000), 7) // falls into the sparse tier
	fmt.Println(m.Get(3), m.Get(1000), m.Has(4))
	// Output: 100 7 false
}
