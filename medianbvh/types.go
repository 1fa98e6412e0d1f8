package medianbvh

import (
	"github.com/katalvlaran/spatialpart/densemap"
	"github.com/katalvlaran/spatialpart/spatial"
)

type nodeData struct {
	aabb spatial.Aabb
	mask spatial.Mask
}

type entityData struct {
	aabb   spatial.Aabb
	entity spatial.EntityHandle
	mask   spatial.Mask
}

func (e entityData) empty() bool { return e.entity == spatial.EmptyHandle }

// Tree is a bulk-built, heap-array BVH (spec §4.5).
type Tree struct {
	opts Options

	offsets *densemap.Map // entity -> offset into entities
	nodes   []nodeData    // 1-based heap array; index 0 unused
	entities []entityData

	count      int
	pow2Count  int
	leafGroups int
	dirty      bool
}

// New constructs an empty Tree. denseRange sizes the dense prefix of the
// internal entity->offset map (spec §4.1); pass the expected number of
// densely allocated low-valued handles.
func New(denseRange spatial.EntityHandle, opts ...Option) *Tree {
	return &Tree{
		opts:    gatherOptions(opts...),
		offsets: densemap.New(denseRange),
	}
}
