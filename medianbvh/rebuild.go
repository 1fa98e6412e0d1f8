package medianbvh

import "github.com/katalvlaran/spatialpart/spatial"

// nextPow2 returns the smallest power of two >= n, or 1 if n <= 1.
func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// rangeBounds unions the AABBs of entities[lo:hi].
func rangeBounds(entities []entityData, lo, hi int) spatial.Aabb {
	box := spatial.Invalid()
	for i := lo; i < hi; i++ {
		box = box.Union(entities[i].aabb)
	}
	return box
}

// compact removes every entry marked empty (by a prior Remove), sliding
// survivors down and repointing the offset map. Rebuild always starts from
// a gap-free array; SetMask's closed-form heap index and the leaf-group
// math in rebuildNode both assume entity offsets are dense in [0, count).
func (t *Tree) compact() {
	write := 0
	for read := 0; read < len(t.entities); read++ {
		e := t.entities[read]
		if e.empty() {
			continue
		}
		if write != read {
			t.entities[write] = e
		}
		t.offsets.Set(e.entity, int64(write))
		write++
	}
	t.entities = t.entities[:write]
}

// pruneEmptyTail drops trailing empty slots left by Remove so a later
// extend-aabb propagation (which does not compact) never walks dead
// entries. Interior gaps are left for the next Rebuild/compact.
func (t *Tree) pruneEmptyTail() {
	n := len(t.entities)
	for n > 0 && t.entities[n-1].empty() {
		n--
	}
	t.entities = t.entities[:n]
}

// extendAabb grows the node AABBs and masks along the heap path from the
// entity at offset upward to the root, without touching tree shape. Valid
// only while the tree is not dirty (i.e. the heap array already reflects
// the current entity count and layout).
func (t *Tree) extendAabb(offset int) {
	if len(t.nodes) == 0 {
		return
	}
	e := t.entities[offset]

	n := t.leafGroups + offset/(t.pow2Count/t.leafGroups)
	if n <= 0 || n >= len(t.nodes) {
		return
	}

	// The lowest (leaf-group) level is special: a removal can only shrink
	// its bounds, which a pure union-grow cannot express, so it gets a
	// local rescan instead. Every ancestor above it is a plain grow-by-
	// union of the child result, whether that child grew or shrank.
	if e.empty() {
		t.rebuildLeafGroupContaining(n, offset)
	} else {
		t.nodes[n].aabb = t.nodes[n].aabb.Union(e.aabb).Expanded(t.opts.epsilon)
		t.nodes[n].mask |= e.mask
	}

	box, mask := t.nodes[n].aabb, t.nodes[n].mask
	for n >>= 1; n > 0 && n < len(t.nodes); n >>= 1 {
		t.nodes[n].aabb = t.nodes[n].aabb.Union(box).Expanded(t.opts.epsilon)
		t.nodes[n].mask |= mask
		box, mask = t.nodes[n].aabb, t.nodes[n].mask
	}
}

// rebuildLeafGroupContaining recomputes the leaf-group node nodeID (which
// must be >= t.leafGroups) by rescanning its physical entity range. Used
// when an entity inside the group was removed and the group's bounds may
// have shrunk, which a pure extend cannot express.
func (t *Tree) rebuildLeafGroupContaining(nodeID, offset int) {
	lo, hi, ok := t.leafGroupRange(nodeID)
	if !ok {
		return
	}
	box := spatial.Invalid()
	var mask spatial.Mask
	for i := lo; i < hi; i++ {
		if t.entities[i].empty() {
			continue
		}
		box = box.Union(t.entities[i].aabb)
		mask |= t.entities[i].mask
	}
	t.nodes[nodeID] = nodeData{aabb: box.Expanded(t.opts.epsilon), mask: mask}
}

// leafGroupMask recomputes nodeID's mask (without touching its AABB) by
// rescanning its physical entity range. Used by SetMask, whose mask-only
// change can affect any entity in a collapsed SkipLowLayers group, not
// just the immediate sibling.
func (t *Tree) leafGroupMask(nodeID int) spatial.Mask {
	lo, hi, ok := t.leafGroupRange(nodeID)
	if !ok {
		return 0
	}
	var mask spatial.Mask
	for i := lo; i < hi; i++ {
		if !t.entities[i].empty() {
			mask |= t.entities[i].mask
		}
	}
	return mask
}

// leafGroupRange returns the physical entity range [lo, hi) a leaf-group
// node covers, clipped to the live entity slice, and whether nodeID is
// actually a leaf-group node in range.
func (t *Tree) leafGroupRange(nodeID int) (lo, hi int, ok bool) {
	if nodeID < t.leafGroups || nodeID >= len(t.nodes) || t.leafGroups == 0 {
		return 0, 0, false
	}
	groupSize := t.pow2Count / t.leafGroups
	lo = (nodeID - t.leafGroups) * groupSize
	hi = lo + groupSize
	if n := len(t.entities); hi > n {
		hi = n
	}
	return lo, hi, true
}

// Rebuild fully reconstructs the heap array from the current entity set: it
// compacts away removed entries, then recursively median-splits the
// remaining entities along each node's longest axis using a quickselect
// partial sort, so the whole pass is O(N log N).
func (t *Tree) Rebuild() {
	t.compact()
	n := len(t.entities)
	if n == 0 {
		t.nodes = t.nodes[:0]
		t.pow2Count = 0
		t.leafGroups = 0
		t.dirty = false
		return
	}

	t.pow2Count = nextPow2(n)
	shift := uint(t.opts.skipLowLayers + 1)
	leafGroups := t.pow2Count >> shift
	if leafGroups < 1 {
		leafGroups = 1
	}
	t.leafGroups = leafGroups

	size := 2 * leafGroups
	if cap(t.nodes) < size {
		t.nodes = make([]nodeData, size)
	} else {
		t.nodes = t.nodes[:size]
		for i := range t.nodes {
			t.nodes[i] = nodeData{}
		}
	}

	t.rebuildNode(1, 0, t.pow2Count)
	t.dirty = false
}

// rebuildNode builds the subtree rooted at nodeID over the pow2-space
// range [lo, hi) (always a power-of-two width). Physical entity offsets at
// or beyond len(t.entities) do not exist; rebuildNode clips to them
// implicitly via physHi on every call, which keeps the split point
// consistent with the recursion's own clipping one level down.
func (t *Tree) rebuildNode(nodeID, lo, hi int) {
	n := len(t.entities)
	physHi := hi
	if physHi > n {
		physHi = n
	}
	if lo >= physHi {
		t.nodes[nodeID] = nodeData{aabb: spatial.Invalid()}
		return
	}

	if nodeID >= t.leafGroups {
		box := spatial.Invalid()
		var mask spatial.Mask
		for i := lo; i < physHi; i++ {
			box = box.Union(t.entities[i].aabb)
			mask |= t.entities[i].mask
			t.offsets.Set(t.entities[i].entity, int64(i))
		}
		t.nodes[nodeID] = nodeData{aabb: box.Expanded(t.opts.epsilon), mask: mask}
		return
	}

	mid := lo + (hi-lo)/2
	split := mid
	if split > physHi {
		split = physHi
	}
	if split > lo && split < physHi {
		axis := longestAxis(rangeBounds(t.entities, lo, physHi))
		selectMedian(t.entities, lo, split, physHi, axis)
	}

	t.rebuildNode(2*nodeID, lo, mid)
	t.rebuildNode(2*nodeID+1, mid, hi)

	left, right := t.nodes[2*nodeID], t.nodes[2*nodeID+1]
	t.nodes[nodeID] = nodeData{aabb: left.aabb.Union(right.aabb), mask: left.mask | right.mask}
}

// RebuildProgress tracks an in-flight amortised Rebuild, letting the caller
// spread the O(N log N) cost across several calls to RebuildStep instead of
// paying it in one frame. Used by threestage.Index's shadow-shard rebuild.
type RebuildProgress struct {
	started bool
	stack   []rebuildFrame
}

type rebuildFrame struct {
	nodeID, lo, hi int
}

// RebuildStep advances a Rebuild by roughly budget node-builds and reports
// whether the rebuild is still in progress (true) or has completed (false).
// The zero RebuildProgress starts a fresh rebuild on first use; callers
// must not reuse a RebuildProgress across two different Trees.
func (t *Tree) RebuildStep(progress *RebuildProgress, budget int) bool {
	if !progress.started {
		t.compact()
		n := len(t.entities)
		progress.started = true
		if n == 0 {
			t.nodes = t.nodes[:0]
			t.pow2Count = 0
			t.leafGroups = 0
			t.dirty = false
			return false
		}
		t.pow2Count = nextPow2(n)
		shift := uint(t.opts.skipLowLayers + 1)
		leafGroups := t.pow2Count >> shift
		if leafGroups < 1 {
			leafGroups = 1
		}
		t.leafGroups = leafGroups
		size := 2 * leafGroups
		if cap(t.nodes) < size {
			t.nodes = make([]nodeData, size)
		} else {
			t.nodes = t.nodes[:size]
			for i := range t.nodes {
				t.nodes[i] = nodeData{}
			}
		}
		progress.stack = append(progress.stack, rebuildFrame{1, 0, t.pow2Count})
	}

	for budget > 0 && len(progress.stack) > 0 {
		top := progress.stack[len(progress.stack)-1]
		progress.stack = progress.stack[:len(progress.stack)-1]

		if top.nodeID < 0 {
			nodeID := -top.nodeID - 1
			left, right := t.nodes[2*nodeID], t.nodes[2*nodeID+1]
			t.nodes[nodeID] = nodeData{aabb: left.aabb.Union(right.aabb), mask: left.mask | right.mask}
			budget--
			continue
		}

		n := len(t.entities)
		physHi := top.hi
		if physHi > n {
			physHi = n
		}
		if top.lo >= physHi {
			t.nodes[top.nodeID] = nodeData{aabb: spatial.Invalid()}
			budget--
			continue
		}
		if top.nodeID >= t.leafGroups {
			box := spatial.Invalid()
			var mask spatial.Mask
			for i := top.lo; i < physHi; i++ {
				box = box.Union(t.entities[i].aabb)
				mask |= t.entities[i].mask
				t.offsets.Set(t.entities[i].entity, int64(i))
			}
			t.nodes[top.nodeID] = nodeData{aabb: box.Expanded(t.opts.epsilon), mask: mask}
			budget--
			continue
		}

		mid := top.lo + (top.hi-top.lo)/2
		split := mid
		if split > physHi {
			split = physHi
		}
		if split > top.lo && split < physHi {
			axis := longestAxis(rangeBounds(t.entities, top.lo, physHi))
			selectMedian(t.entities, top.lo, split, physHi, axis)
		}
		budget--

		// Push a completion marker (encoded as nodeID<0) so the union step
		// runs after both children are built, then push the children.
		progress.stack = append(progress.stack,
			rebuildFrame{-top.nodeID - 1, 0, 0},
			rebuildFrame{2 * top.nodeID, top.lo, mid},
			rebuildFrame{2*top.nodeID + 1, mid, top.hi},
		)
	}

	for len(progress.stack) > 0 {
		top := progress.stack[len(progress.stack)-1]
		if top.nodeID >= 0 {
			break
		}
		progress.stack = progress.stack[:len(progress.stack)-1]
		nodeID := -top.nodeID - 1
		left, right := t.nodes[2*nodeID], t.nodes[2*nodeID+1]
		t.nodes[nodeID] = nodeData{aabb: left.aabb.Union(right.aabb), mask: left.mask | right.mask}
	}

	if len(progress.stack) == 0 {
		t.dirty = false
		return false
	}
	return true
}
