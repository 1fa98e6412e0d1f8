package medianbvh

import (
	"github.com/katalvlaran/spatialpart/query"
)

// IntersectAabb visits every live entity whose mask intersects cb's query
// mask and whose AABB overlaps cb's query box. A dirty tree (Adds, or
// Updates under PolicyFullRebuildOnNextRead, not yet built into the node
// array) is rebuilt first.
func (t *Tree) IntersectAabb(cb *query.AabbCallback) {
	if t.dirty {
		t.Rebuild()
	}
	if t.count == 0 {
		return
	}
	if len(t.nodes) == 0 {
		t.scanAllAabb(cb)
		return
	}
	t.intersectAabbNode(cb, 1, 0, t.pow2Count)
}

func (t *Tree) scanAllAabb(cb *query.AabbCallback) {
	for i := range t.entities {
		e := t.entities[i]
		if e.empty() || cb.Mask&e.mask == 0 {
			continue
		}
		cb.ExecuteIfRelevant(e.aabb, e.entity)
	}
}

func (t *Tree) intersectAabbNode(cb *query.AabbCallback, nodeID, lo, hi int) {
	node := t.nodes[nodeID]
	cb.NodesTested++
	if cb.Mask&node.mask == 0 {
		return
	}
	if !node.aabb.HasIntersection(cb.Query, 0) {
		return
	}

	if nodeID >= t.leafGroups {
		physHi := hi
		if n := len(t.entities); physHi > n {
			physHi = n
		}
		for i := lo; i < physHi; i++ {
			e := t.entities[i]
			if e.empty() || cb.Mask&e.mask == 0 {
				continue
			}
			cb.ExecuteIfRelevant(e.aabb, e.entity)
		}
		return
	}

	mid := lo + (hi-lo)/2
	t.intersectAabbNode(cb, 2*nodeID, lo, mid)
	t.intersectAabbNode(cb, 2*nodeID+1, mid, hi)
}

// IntersectRay visits every live entity whose mask intersects cb's mask and
// whose AABB the segment [cb.Start, cb.End] passes through before
// cb.CutFactor. The cutFactor channel is the only way a candidate can
// prune the rest of the traversal (spec §4.4): it only ever shrinks.
func (t *Tree) IntersectRay(cb *query.RayCallback) {
	if t.dirty {
		t.Rebuild()
	}
	if t.count == 0 {
		return
	}
	if len(t.nodes) == 0 {
		t.scanAllRay(cb)
		return
	}
	t.intersectRayNode(cb, 1, 0, t.pow2Count)
}

func (t *Tree) scanAllRay(cb *query.RayCallback) {
	for i := range t.entities {
		e := t.entities[i]
		if e.empty() || cb.Mask&e.mask == 0 {
			continue
		}
		cb.ExecuteIfRelevant(e.aabb, e.entity)
	}
}

func (t *Tree) intersectRayNode(cb *query.RayCallback, nodeID, lo, hi int) {
	node := t.nodes[nodeID]
	cb.NodesTested++
	if cb.Mask&node.mask == 0 {
		return
	}
	if _, _, ok := cb.TestAabb(node.aabb); !ok {
		return
	}

	if nodeID >= t.leafGroups {
		physHi := hi
		if n := len(t.entities); physHi > n {
			physHi = n
		}
		for i := lo; i < physHi; i++ {
			e := t.entities[i]
			if e.empty() || cb.Mask&e.mask == 0 {
				continue
			}
			cb.ExecuteIfRelevant(e.aabb, e.entity)
		}
		return
	}

	mid := lo + (hi-lo)/2
	leftID, rightID := 2*nodeID, 2*nodeID+1
	leftNear, _, leftOk := cb.TestAabb(t.nodes[leftID].aabb)
	rightNear, _, rightOk := cb.TestAabb(t.nodes[rightID].aabb)

	// Visit the nearer child first: a hit there can shrink cutFactor enough
	// to prune the farther child outright when it is re-tested on entry.
	if leftOk && rightOk && leftNear <= rightNear {
		t.intersectRayNode(cb, leftID, lo, mid)
		t.intersectRayNode(cb, rightID, mid, hi)
		return
	}
	if leftOk && rightOk {
		t.intersectRayNode(cb, rightID, mid, hi)
		t.intersectRayNode(cb, leftID, lo, mid)
		return
	}
	if leftOk {
		t.intersectRayNode(cb, leftID, lo, mid)
	}
	if rightOk {
		t.intersectRayNode(cb, rightID, mid, hi)
	}
}
