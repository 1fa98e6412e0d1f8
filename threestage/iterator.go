package threestage

import (
	"github.com/katalvlaran/spatialpart/query"
	"github.com/katalvlaran/spatialpart/spatial"
)

// Iterator walks dynamic's live records first, then optimised's.
type Iterator struct {
	first, second query.Iterator
	onSecond      bool
}

// RestartIterator returns a fresh iterator over every live entity in both
// shards. Call TryIntegrateOptimised first so a just-finished rebuild is
// reflected.
func (ix *Index) RestartIterator() query.Iterator {
	ix.TryIntegrateOptimised()
	return &Iterator{first: ix.dynamic.RestartIterator(), second: ix.optimised.RestartIterator()}
}

// Next advances to the next live record, returning false once both shards
// are exhausted.
func (it *Iterator) Next() bool {
	if !it.onSecond {
		if it.first.Next() {
			return true
		}
		it.onSecond = true
	}
	return it.second.Next()
}

// Valid reports whether the iterator currently sits on a live record.
func (it *Iterator) Valid() bool {
	if !it.onSecond {
		return it.first.Valid()
	}
	return it.second.Valid()
}

// Entity returns the current record's handle.
func (it *Iterator) Entity() spatial.EntityHandle { return it.cur().Entity() }

// Aabb returns the current record's AABB.
func (it *Iterator) Aabb() spatial.Aabb { return it.cur().Aabb() }

// Mask returns the current record's mask.
func (it *Iterator) Mask() spatial.Mask { return it.cur().Mask() }

func (it *Iterator) cur() query.Iterator {
	if !it.onSecond {
		return it.first
	}
	return it.second
}

// Size returns the total number of entities this iterator will visit.
func (it *Iterator) Size() int { return it.first.Size() + it.second.Size() }
