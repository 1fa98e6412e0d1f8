package dynbvh

import "github.com/katalvlaran/spatialpart/spatial"

// Rebuild discards the current tree shape and reinserts every live entity
// from scratch, in the same order Each happens to enumerate them. Unlike
// medianbvh's amortisable Rebuild, Tree's incremental insertion plus
// bounded rotation already keeps the tree close to balanced as it churns,
// so a full rebuild here is a coarse, occasionally-useful reset rather
// than the routine maintenance operation it is for medianbvh: a from-
// scratch Insert of every live entity, O(N log N).
func (t *Tree) Rebuild() {
	type record struct {
		entity spatial.EntityHandle
		aabb   spatial.Aabb
		mask   spatial.Mask
	}
	snapshot := make([]record, 0, t.count)
	t.leaves.Each(func(_ int, l leafData) {
		snapshot = append(snapshot, record{entity: l.entity, aabb: l.aabb, mask: l.mask})
	})

	t.Clear()
	for _, r := range snapshot {
		t.Add(r.entity, r.aabb, r.mask)
	}
}
