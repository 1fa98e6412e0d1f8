package medianbvh

import "github.com/katalvlaran/spatialpart/spatial"

// Add appends entity to the tree and marks it dirty for the next Rebuild.
// Precondition: entity does not already exist (spec §7). This is not
// checked: a duplicate Add appends a second record and repoints the
// offset table entry at it.
func (t *Tree) Add(entity spatial.EntityHandle, aabb spatial.Aabb, mask spatial.Mask) {
	t.offsets.Set(entity, int64(len(t.entities)))
	t.entities = append(t.entities, entityData{aabb: aabb, entity: entity, mask: mask})
	t.dirty = true
	t.count++
}

// Update rewrites entity's AABB, per the tree's AabbUpdatePolicy.
func (t *Tree) Update(entity spatial.EntityHandle, aabb spatial.Aabb) {
	off := t.offsets.Get(entity)
	if off < 0 {
		return
	}
	t.entities[off].aabb = aabb
	if t.opts.updatePolicy == PolicyExtendAabb && !t.dirty {
		t.extendAabb(int(off))
	} else {
		t.dirty = true
	}
}

// Remove deletes entity, compacting trailing empty slots and re-propagating
// along the heap path if the tree is not already pending a full rebuild.
func (t *Tree) Remove(entity spatial.EntityHandle) {
	off := t.offsets.Get(entity)
	if off < 0 {
		return
	}
	t.offsets.Remove(entity)
	t.entities[off].entity = spatial.EmptyHandle
	t.entities[off].mask = 0
	t.count--

	if t.count == 0 {
		t.Clear()
		return
	}

	t.pruneEmptyTail()

	if !t.dirty && int(off) < len(t.entities) {
		t.extendAabb(int(off))
	}
}

// SetMask rewrites entity's mask, then recomputes its leaf-group node's
// mask by rescan (SkipLowLayers can collapse more than one sibling into
// that group) and ORs the result up along the heap path to the root.
func (t *Tree) SetMask(entity spatial.EntityHandle, mask spatial.Mask) {
	off := t.offsets.Get(entity)
	if off < 0 {
		return
	}
	if t.entities[off].mask == mask {
		return
	}
	t.entities[off].mask = mask

	if len(t.nodes) == 0 {
		return
	}

	n := t.leafGroups + int(off)/(t.pow2Count/t.leafGroups)
	if n <= 0 || n >= len(t.nodes) {
		return
	}

	t.nodes[n].mask = t.leafGroupMask(n)
	acc := t.nodes[n].mask
	for n >>= 1; n > 0 && n < len(t.nodes); n >>= 1 {
		sib := n ^ 1
		combined := acc
		if sib > 0 && sib < len(t.nodes) {
			combined |= t.nodes[sib].mask
		}
		t.nodes[n].mask = combined
		acc = combined
	}
}

// Exists reports whether entity is currently tracked.
func (t *Tree) Exists(entity spatial.EntityHandle) bool { return t.offsets.Has(entity) }

// GetAabb returns entity's last-known AABB, or the zero value if absent.
func (t *Tree) GetAabb(entity spatial.EntityHandle) spatial.Aabb {
	off := t.offsets.Get(entity)
	if off < 0 {
		return spatial.Aabb{}
	}
	return t.entities[off].aabb
}

// GetMask returns entity's last-known mask, or zero if absent.
func (t *Tree) GetMask(entity spatial.EntityHandle) spatial.Mask {
	off := t.offsets.Get(entity)
	if off < 0 {
		return 0
	}
	return t.entities[off].mask
}

// GetCount returns the number of live entities.
func (t *Tree) GetCount() int { return t.count }

// Clear drops all records. The entity and node slices are truncated to
// length 0 and keep their capacity; the offset map is reallocated.
func (t *Tree) Clear() {
	t.entities = t.entities[:0]
	t.nodes = t.nodes[:0]
	t.offsets.Clear()
	t.dirty = false
	t.count = 0
	t.pow2Count = 0
	t.leafGroups = 0
}

// ShrinkToFit reallocates backing slices to their exact current length.
func (t *Tree) ShrinkToFit() {
	entities := make([]entityData, len(t.entities))
	copy(entities, t.entities)
	t.entities = entities

	nodes := make([]nodeData, len(t.nodes))
	copy(nodes, t.nodes)
	t.nodes = nodes

	t.offsets.ShrinkToFit()
}

// GetMemoryUsage returns an approximate byte accounting of the tree's
// backing storage.
func (t *Tree) GetMemoryUsage() int {
	const nodeSize = 64 // Aabb (48B) + Mask, rounded
	const entitySize = 72
	return t.offsets.GetMemoryUsage() + cap(t.nodes)*nodeSize + cap(t.entities)*entitySize
}

// StartFastAdding is a no-op hint; Tree's Add path defers all index
// maintenance to Rebuild regardless.
func (t *Tree) StartFastAdding() {}

// StopFastAdding unconditionally rebuilds, matching the original's
// BvhMedianSplitHeap behaviour for the fast-adding hint pair.
func (t *Tree) StopFastAdding() { t.Rebuild() }
