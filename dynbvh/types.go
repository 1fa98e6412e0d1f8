package dynbvh

import (
	"github.com/katalvlaran/spatialpart/densemap"
	"github.com/katalvlaran/spatialpart/nodepool"
	"github.com/katalvlaran/spatialpart/spatial"
)

// child is a tagged reference to either an internal node (IsLeaf false,
// Index an offset into Tree.nodes) or a leaf (IsLeaf true, Index an offset
// into Tree.leaves). The zero child is the distinguished "no child" value,
// since nodepool offsets never reuse 0.
type child struct {
	IsLeaf bool
	Index  int
}

func (c child) empty() bool { return !c.IsLeaf && c.Index == 0 }

// leafData is one entity's record.
type leafData struct {
	aabb   spatial.Aabb
	entity spatial.EntityHandle
	mask   spatial.Mask
	parent int // offset into Tree.nodes; 0 if this leaf sits directly at root
}

// nodeData is one internal node: two typed children, their cached AABBs,
// and the OR of their masks.
type nodeData struct {
	children [2]child
	aabb     [2]spatial.Aabb
	mask     spatial.Mask
	parent   int // offset into Tree.nodes; 0 if this is the root node
}

// Tree is a pointer-style dynamic BVH (spec §4.6).
type Tree struct {
	opts Options

	offsets *densemap.Map // entity -> leaves offset
	leaves  *nodepool.Pool[leafData]
	nodes   *nodepool.Pool[nodeData]

	root  child
	count int
}

// New constructs an empty Tree. denseRange sizes the dense prefix of the
// internal entity->offset map (spec §4.1); pass the expected number of
// densely allocated low-valued handles.
func New(denseRange spatial.EntityHandle, opts ...Option) *Tree {
	return &Tree{
		opts:    gatherOptions(opts...),
		offsets: densemap.New(denseRange),
		leaves:  nodepool.New[leafData](),
		nodes:   nodepool.New[nodeData](),
	}
}
