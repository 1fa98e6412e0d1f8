package dynbvh

import (
	"github.com/katalvlaran/spatialpart/query"
	"github.com/katalvlaran/spatialpart/spatial"
)

// Iterator walks every live leaf in a Tree snapshot taken at
// RestartIterator time. Mutating the tree mid-walk does not affect an
// in-progress Iterator.
type Iterator struct {
	leaves []leafData
	pos    int
}

// RestartIterator snapshots the tree's current live leaves and returns an
// Iterator starting before the first one.
func (t *Tree) RestartIterator() query.Iterator {
	leaves := make([]leafData, 0, t.count)
	t.leaves.Each(func(_ int, l leafData) {
		leaves = append(leaves, l)
	})
	return &Iterator{leaves: leaves, pos: -1}
}

// Next advances to the next live leaf, reporting whether one exists.
func (it *Iterator) Next() bool {
	it.pos++
	return it.pos < len(it.leaves)
}

// Valid reports whether the iterator currently sits on a leaf.
func (it *Iterator) Valid() bool {
	return it.pos >= 0 && it.pos < len(it.leaves)
}

// Entity returns the current leaf's entity handle.
func (it *Iterator) Entity() spatial.EntityHandle { return it.leaves[it.pos].entity }

// Aabb returns the current leaf's AABB.
func (it *Iterator) Aabb() spatial.Aabb { return it.leaves[it.pos].aabb }

// Mask returns the current leaf's mask.
func (it *Iterator) Mask() spatial.Mask { return it.leaves[it.pos].mask }

// Size returns the total number of entities this iterator will visit.
func (it *Iterator) Size() int { return len(it.leaves) }
