package medianbvh

import (
	"github.com/katalvlaran/spatialpart/query"
	"github.com/katalvlaran/spatialpart/spatial"
)

// Iterator walks every live entity in Tree in dense-array order, skipping
// slots left empty by a Remove that has not yet been compacted away by
// Rebuild. It satisfies query.Iterator.
type Iterator struct {
	t   *Tree
	pos int
}

// RestartIterator returns a fresh Iterator positioned before the first
// entity.
func (t *Tree) RestartIterator() query.Iterator {
	return &Iterator{t: t, pos: -1}
}

// Next advances to the next live entity and reports whether one was found.
func (it *Iterator) Next() bool {
	for {
		it.pos++
		if it.pos >= len(it.t.entities) {
			return false
		}
		if !it.t.entities[it.pos].empty() {
			return true
		}
	}
}

// Valid reports whether the iterator currently sits on a live entity.
func (it *Iterator) Valid() bool {
	return it.pos >= 0 && it.pos < len(it.t.entities) && !it.t.entities[it.pos].empty()
}

// Entity returns the current entity's handle.
func (it *Iterator) Entity() spatial.EntityHandle { return it.t.entities[it.pos].entity }

// Aabb returns the current entity's AABB.
func (it *Iterator) Aabb() spatial.Aabb { return it.t.entities[it.pos].aabb }

// Mask returns the current entity's mask.
func (it *Iterator) Mask() spatial.Mask { return it.t.entities[it.pos].mask }

// Size returns the number of live entities the iterator will yield.
func (it *Iterator) Size() int { return it.t.count }
