package dynbvh

import "github.com/katalvlaran/spatialpart/spatial"

// Add inserts entity, descending from the root toward the child whose
// AABB would grow least, then splicing a fresh internal node in at
// whichever leaf the descent lands on.
func (t *Tree) Add(entity spatial.EntityHandle, aabb spatial.Aabb, mask spatial.Mask) {
	leafOff := t.leaves.Add(leafData{aabb: aabb, entity: entity, mask: mask})
	t.offsets.Set(entity, int64(leafOff))
	t.count++
	newChild := child{IsLeaf: true, Index: leafOff}

	if t.root.empty() {
		t.root = newChild
		return
	}
	if t.root.IsLeaf {
		siblingOff := t.root.Index
		sibling := t.leaves.At(siblingOff)
		nodeOff := t.nodes.Add(nodeData{
			children: [2]child{t.root, newChild},
			aabb:     [2]spatial.Aabb{sibling.aabb, aabb},
			mask:     sibling.mask | mask,
		})
		sibling.parent = nodeOff
		t.leaves.Set(siblingOff, sibling)
		leaf := t.leaves.At(leafOff)
		leaf.parent = nodeOff
		t.leaves.Set(leafOff, leaf)
		t.root = child{IsLeaf: false, Index: nodeOff}
		return
	}
	t.insertInto(t.root.Index, newChild, aabb, mask, 1)
}

// insertInto descends from nodeOff, choosing the child whose AABB would
// grow least to contain newAabb, until it reaches a leaf child, which it
// replaces with a fresh internal node uniting that leaf and newChild. The
// recursive unwind re-unions each ancestor's cached AABB on the way back
// up, so no separate upward-propagation pass is needed. It returns the
// depth at which the splice happened; when that depth reaches the rotation
// bound, every node on the unwind, up to and including the root, is rotated.
func (t *Tree) insertInto(nodeOff int, newChild child, newAabb spatial.Aabb, newMask spatial.Mask, depth int) int {
	node := t.nodes.At(nodeOff)
	grow0 := node.aabb[0].Union(newAabb).Volume() - node.aabb[0].Volume()
	grow1 := node.aabb[1].Union(newAabb).Volume() - node.aabb[1].Volume()
	side := 0
	if grow1 < grow0 {
		side = 1
	}
	target := node.children[side]
	reached := depth

	if target.IsLeaf {
		siblingOff := target.Index
		sibling := t.leaves.At(siblingOff)
		mn := t.nodes.Add(nodeData{
			children: [2]child{target, newChild},
			aabb:     [2]spatial.Aabb{sibling.aabb, newAabb},
			mask:     sibling.mask | newMask,
			parent:   nodeOff,
		})
		sibling.parent = mn
		t.leaves.Set(siblingOff, sibling)
		leaf := t.leaves.At(newChild.Index)
		leaf.parent = mn
		t.leaves.Set(newChild.Index, leaf)

		node.children[side] = child{IsLeaf: false, Index: mn}
		node.aabb[side] = sibling.aabb.Union(newAabb)
		node.mask |= newMask
		t.nodes.Set(nodeOff, node)
	} else {
		reached = t.insertInto(target.Index, newChild, newAabb, newMask, depth+1)
		inner := t.nodes.At(target.Index)
		node.aabb[side] = inner.aabb[0].Union(inner.aabb[1])
		node.mask |= newMask
		t.nodes.Set(nodeOff, node)
	}

	if reached >= t.opts.rotationDepth {
		t.rotate(nodeOff)
	}
	return reached
}

// sideOf reports which of node's two children is c.
func sideOf(node nodeData, c child) int {
	if node.children[0].IsLeaf == c.IsLeaf && node.children[0].Index == c.Index {
		return 0
	}
	return 1
}

// Update rewrites entity's AABB, then walks the ancestor chain to the root,
// recomputing each visited node's cached AABB/mask (there is no early stop
// on containment) and attempting one rotation at each.
func (t *Tree) Update(entity spatial.EntityHandle, aabb spatial.Aabb) {
	off := t.offsets.Get(entity)
	if off < 0 {
		return
	}
	leafOff := int(off)
	leaf := t.leaves.At(leafOff)
	leaf.aabb = aabb
	t.leaves.Set(leafOff, leaf)

	t.propagateUp(child{IsLeaf: true, Index: leafOff}, leaf.parent, true)
}

// propagateUp walks from parentOff upward, refreshing the cached AABB/mask
// of the side that held from (now updated), attempting one rotation at
// each visited ancestor when doRotate is true. When doRotate is false
// (the Remove path) it additionally stops early the moment an ancestor's
// cached bound already contains the propagated box, since nothing above
// that point can possibly be stale (the containment-propagation shortcut,
// spec §4.6).
func (t *Tree) propagateUp(from child, parentOff int, doRotate bool) {
	box := t.aabbOf(from)
	for parentOff != 0 {
		node := t.nodes.At(parentOff)
		side := sideOf(node, from)
		if !doRotate && node.aabb[side].ContainsAll(box, t.opts.epsilon) {
			return
		}
		node.aabb[side] = box
		node.mask = t.maskOf(node.children[0]) | t.maskOf(node.children[1])
		t.nodes.Set(parentOff, node)
		if doRotate {
			t.rotate(parentOff)
			node = t.nodes.At(parentOff)
		}
		from = child{IsLeaf: false, Index: parentOff}
		box = node.aabb[0].Union(node.aabb[1])
		parentOff = node.parent
	}
}

// Remove deletes entity: its parent node collapses, with the sibling
// taking the parent's former place, and the AABB/mask fix propagates
// upward until a node is reached whose cached bound already contains the
// sibling (containment-propagation shortcut). The root is special-cased
// and never collapsed.
func (t *Tree) Remove(entity spatial.EntityHandle) {
	off := t.offsets.Get(entity)
	if off < 0 {
		return
	}
	leafOff := int(off)
	leaf := t.leaves.At(leafOff)
	t.offsets.Remove(entity)
	t.count--

	parentOff := leaf.parent
	t.leaves.Remove(leafOff)

	if parentOff == 0 {
		// the removed leaf was the root itself
		t.root = child{}
		return
	}

	parent := t.nodes.At(parentOff)
	leafAsChild := child{IsLeaf: true, Index: leafOff}
	side := sideOf(parent, leafAsChild)
	sibling := parent.children[1-side]
	grandparentOff := parent.parent

	t.nodes.Remove(parentOff)
	t.setParentOf(sibling, grandparentOff)

	if grandparentOff == 0 {
		t.root = sibling
		return
	}

	gp := t.nodes.At(grandparentOff)
	gpSide := sideOf(gp, child{IsLeaf: false, Index: parentOff})
	gp.children[gpSide] = sibling
	gp.aabb[gpSide] = t.aabbOf(sibling)
	gp.mask = t.maskOf(gp.children[0]) | t.maskOf(gp.children[1])
	t.nodes.Set(grandparentOff, gp)

	t.propagateUp(child{IsLeaf: false, Index: grandparentOff}, gp.parent, false)
}

// SetMask rewrites entity's mask, then walks the ancestor chain
// recomputing each node's mask as the OR of its two children's masks,
// stopping at the first ancestor whose recomputed mask equals its cached
// one.
func (t *Tree) SetMask(entity spatial.EntityHandle, mask spatial.Mask) {
	off := t.offsets.Get(entity)
	if off < 0 {
		return
	}
	leafOff := int(off)
	leaf := t.leaves.At(leafOff)
	if leaf.mask == mask {
		return
	}
	leaf.mask = mask
	t.leaves.Set(leafOff, leaf)

	parentOff := leaf.parent
	for parentOff != 0 {
		node := t.nodes.At(parentOff)
		combined := t.maskOf(node.children[0]) | t.maskOf(node.children[1])
		if combined == node.mask {
			break
		}
		node.mask = combined
		t.nodes.Set(parentOff, node)
		parentOff = node.parent
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
	return t.leaves.At(int(off)).aabb
}

// GetMask returns entity's last-known mask, or zero if absent.
func (t *Tree) GetMask(entity spatial.EntityHandle) spatial.Mask {
	off := t.offsets.Get(entity)
	if off < 0 {
		return 0
	}
	return t.leaves.At(int(off)).mask
}

// GetCount returns the number of live entities.
func (t *Tree) GetCount() int { return t.count }

// Clear drops all records.
func (t *Tree) Clear() {
	t.leaves.Clear()
	t.nodes.Clear()
	t.offsets.Clear()
	t.root = child{}
	t.count = 0
}

// ShrinkToFit releases unused buffer capacity back to the allocator.
func (t *Tree) ShrinkToFit() {
	t.leaves.ShrinkToFit()
	t.nodes.ShrinkToFit()
	t.offsets.ShrinkToFit()
}

// GetMemoryUsage returns an approximate byte accounting of the tree's
// backing storage.
func (t *Tree) GetMemoryUsage() int {
	const leafSize = 80
	const nodeSize = 136
	return t.offsets.GetMemoryUsage() + t.leaves.GetMemoryUsage(leafSize) + t.nodes.GetMemoryUsage(nodeSize)
}

// StartFastAdding is a no-op hint: Tree's Add path already performs all of
// its bookkeeping incrementally, so there is nothing to defer.
func (t *Tree) StartFastAdding() {}

// StopFastAdding is a no-op, the mirror image of StartFastAdding.
func (t *Tree) StopFastAdding() {}
