package dynbvh

import "github.com/katalvlaran/spatialpart/spatial"

// maskOf returns c's current mask, reading through to the leaf or node
// pool as appropriate. The zero child (empty subtree) contributes no bits.
func (t *Tree) maskOf(c child) spatial.Mask {
	if c.empty() {
		return 0
	}
	if c.IsLeaf {
		return t.leaves.At(c.Index).mask
	}
	return t.nodes.At(c.Index).mask
}

// aabbOf returns c's current cached AABB.
func (t *Tree) aabbOf(c child) spatial.Aabb {
	if c.IsLeaf {
		return t.leaves.At(c.Index).aabb
	}
	return t.nodes.At(c.Index).aabb[0].Union(t.nodes.At(c.Index).aabb[1])
}

// setParentOf rewrites c's stored parent link to newParent.
func (t *Tree) setParentOf(c child, newParent int) {
	if c.IsLeaf {
		l := t.leaves.At(c.Index)
		l.parent = newParent
		t.leaves.Set(c.Index, l)
		return
	}
	n := t.nodes.At(c.Index)
	n.parent = newParent
	t.nodes.Set(c.Index, n)
}

// rotate evaluates every swap of "one grandchild for the opposite child's
// whole subtree" at nodeOff, plus the no-op, and applies whichever
// minimises the combined volume of the two new child AABBs. This is a
// simplified stand-in for a larger canonical rotation table: it covers the
// moves that matter for keeping a churned tree balanced without needing
// the ancestor-merge bookkeeping a full seven-case table requires.
func (t *Tree) rotate(nodeOff int) {
	node := t.nodes.At(nodeOff)
	baseCost := node.aabb[0].Volume() + node.aabb[1].Volume()

	bestCost := baseCost
	bestSide, bestGrand := -1, -1

	for side := 0; side < 2; side++ {
		c := node.children[side]
		if c.IsLeaf {
			continue
		}
		ln := t.nodes.At(c.Index)
		otherAabb := node.aabb[1-side]
		for g := 0; g < 2; g++ {
			// applyRotation(side, g) promotes ln.aabb[g] into node's other
			// slot and demotes otherAabb into inner's slot g, leaving
			// ln.aabb[1-g] where it is: the resulting two top-level child
			// volumes are Vol(ln.aabb[1-g] ∪ otherAabb) and Vol(ln.aabb[g]).
			cost := ln.aabb[1-g].Union(otherAabb).Volume() + ln.aabb[g].Volume()
			if cost < bestCost {
				bestCost, bestSide, bestGrand = cost, side, g
			}
		}
	}

	if bestSide < 0 {
		return
	}
	t.applyRotation(nodeOff, bestSide, bestGrand)
}

// applyRotation promotes grandchild children[side].children[grand] to
// occupy node.children[1-side], pushing the old node.children[1-side]
// down into the vacated grandchild slot.
func (t *Tree) applyRotation(nodeOff, side, grand int) {
	node := t.nodes.At(nodeOff)
	other := 1 - side

	innerOff := node.children[side].Index
	inner := t.nodes.At(innerOff)

	promoted := inner.children[grand]
	promotedAabb := inner.aabb[grand]
	demoted := node.children[other]
	demotedAabb := node.aabb[other]

	inner.children[grand] = demoted
	inner.aabb[grand] = demotedAabb
	inner.mask = t.maskOf(inner.children[0]) | t.maskOf(inner.children[1])
	t.nodes.Set(innerOff, inner)
	t.setParentOf(demoted, innerOff)

	node.children[other] = promoted
	node.aabb[other] = promotedAabb
	node.aabb[side] = inner.aabb[0].Union(inner.aabb[1])
	node.mask = t.maskOf(node.children[0]) | t.maskOf(node.children[1])
	t.nodes.Set(nodeOff, node)
	t.setParentOf(promoted, nodeOff)
}
