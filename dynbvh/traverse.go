package dynbvh

import "github.com/katalvlaran/spatialpart/query"

// IntersectAabb visits every live entity whose mask intersects cb's query
// mask and whose AABB overlaps cb's query box.
func (t *Tree) IntersectAabb(cb *query.AabbCallback) {
	if t.root.empty() {
		return
	}
	t.intersectAabbChild(cb, t.root)
}

func (t *Tree) intersectAabbChild(cb *query.AabbCallback, c child) {
	if c.IsLeaf {
		leaf := t.leaves.At(c.Index)
		if cb.Mask&leaf.mask == 0 {
			return
		}
		cb.ExecuteIfRelevant(leaf.aabb, leaf.entity)
		return
	}

	node := t.nodes.At(c.Index)
	cb.NodesTested++
	if cb.Mask&node.mask == 0 {
		return
	}
	for side := 0; side < 2; side++ {
		if node.children[side].empty() {
			continue
		}
		if cb.Mask&t.maskOf(node.children[side]) == 0 {
			continue
		}
		if !node.aabb[side].HasIntersection(cb.Query, 0) {
			continue
		}
		t.intersectAabbChild(cb, node.children[side])
	}
}

// IntersectRay visits every live entity whose mask intersects cb's mask
// and whose AABB the segment [cb.Start, cb.End] passes through before
// cb.CutFactor, descending the nearer child first so a close hit can
// prune the farther subtree via cb's shrinking cutFactor.
func (t *Tree) IntersectRay(cb *query.RayCallback) {
	if t.root.empty() {
		return
	}
	t.intersectRayChild(cb, t.root)
}

func (t *Tree) intersectRayChild(cb *query.RayCallback, c child) {
	if c.IsLeaf {
		leaf := t.leaves.At(c.Index)
		if cb.Mask&leaf.mask == 0 {
			return
		}
		cb.ExecuteIfRelevant(leaf.aabb, leaf.entity)
		return
	}

	node := t.nodes.At(c.Index)
	cb.NodesTested++
	if cb.Mask&node.mask == 0 {
		return
	}

	type candidate struct {
		c    child
		near float64
		ok   bool
	}
	var cands [2]candidate
	for side := 0; side < 2; side++ {
		cands[side].c = node.children[side]
		if cands[side].c.empty() || cb.Mask&t.maskOf(cands[side].c) == 0 {
			continue
		}
		cands[side].near, _, cands[side].ok = cb.TestAabb(node.aabb[side])
	}

	first, second := 0, 1
	if cands[1].ok && (!cands[0].ok || cands[1].near < cands[0].near) {
		first, second = 1, 0
	}
	if cands[first].ok {
		t.intersectRayChild(cb, cands[first].c)
	}
	if cands[second].ok {
		t.intersectRayChild(cb, cands[second].c)
	}
}
