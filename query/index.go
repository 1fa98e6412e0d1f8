package query

import "github.com/katalvlaran/spatialpart/spatial"

// Iterator walks every live record of an index exactly once, in
// implementation-defined order. Mutating the owning index invalidates any
// iterator obtained from it; callers must call RestartIterator again.
type Iterator interface {
	// Next advances to the next live record, returning false once
	// exhausted.
	Next() bool
	// Valid reports whether the iterator currently points at a live
	// record (false before the first Next call and after exhaustion).
	Valid() bool
	// Entity returns the current record's handle.
	Entity() spatial.EntityHandle
	// Aabb returns the current record's AABB.
	Aabb() spatial.Aabb
	// Mask returns the current record's mask.
	Mask() spatial.Mask
	// Size returns the total number of records this iterator will visit.
	Size() int
}

// Index is the common contract every broadphase shard (medianbvh.Tree,
// dynbvh.Tree, threestage.Index) implements: add/update/remove entities,
// query by AABB or ray, and manage index-wide housekeeping.
//
// Preconditions are not checked. An operation on a missing entity returns
// a zero value and leaves the index's contents unchanged; a double Add is
// not detected.
type Index interface {
	// Add inserts a new entity. Precondition: entity does not already
	// exist in this index.
	Add(entity spatial.EntityHandle, aabb spatial.Aabb, mask spatial.Mask)
	// Update replaces an existing entity's AABB. Precondition: entity
	// exists.
	Update(entity spatial.EntityHandle, aabb spatial.Aabb)
	// Remove deletes an entity. Precondition: entity exists.
	Remove(entity spatial.EntityHandle)
	// SetMask replaces an existing entity's mask.
	SetMask(entity spatial.EntityHandle, mask spatial.Mask)

	// Exists reports whether entity is currently tracked.
	Exists(entity spatial.EntityHandle) bool
	// GetAabb returns entity's last-known AABB, or the zero value if absent.
	GetAabb(entity spatial.EntityHandle) spatial.Aabb
	// GetMask returns entity's last-known mask, or zero if absent.
	GetMask(entity spatial.EntityHandle) spatial.Mask
	// GetCount returns the number of live entities.
	GetCount() int

	// IntersectAabb streams every entity overlapping cb's query box and
	// admitted by cb's mask to cb's user function.
	IntersectAabb(cb *AabbCallback)
	// IntersectRay streams candidates along cb's segment to cb's user
	// function, honouring its shrinking cutFactor.
	IntersectRay(cb *RayCallback)

	// Rebuild performs an implementation-defined batch optimisation pass.
	Rebuild()

	// StartFastAdding hints that a burst of Add calls follows; the index
	// may defer maintenance until StopFastAdding.
	StartFastAdding()
	// StopFastAdding ends a fast-adding burst, performing any deferred
	// maintenance.
	StopFastAdding()

	// Clear drops all records. medianbvh.Tree keeps its entity and node
	// slices; the entity->offset maps and dynbvh.Tree's node pools are
	// reallocated rather than kept.
	Clear()
	// ShrinkToFit releases unused buffer capacity back to the allocator.
	ShrinkToFit()

	// RestartIterator returns a fresh iterator over all live records.
	RestartIterator() Iterator

	// GetMemoryUsage returns an approximate byte accounting of the index's
	// backing storage.
	GetMemoryUsage() int
}
