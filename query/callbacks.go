package query

import "github.com/katalvlaran/spatialpart/spatial"

// AabbCallback drives an AABB-overlap query. Construct with NewAabbCallback
// and pass by pointer to Index.IntersectAabb.
type AabbCallback struct {
	Query spatial.Aabb
	Mask  spatial.Mask

	onHit func(entity spatial.EntityHandle)

	NodesTested int
	Tested      int
}

// NewAabbCallback builds a callback that invokes onHit for every entity
// whose AABB overlaps queryAabb and whose mask intersects queryMask.
func NewAabbCallback(queryAabb spatial.Aabb, queryMask spatial.Mask, onHit func(spatial.EntityHandle)) *AabbCallback {
	return &AabbCallback{Query: queryAabb, Mask: queryMask, onHit: onHit}
}

// ExecuteIfRelevant increments Tested, and if entityAabb overlaps the query
// box invokes the user function and returns true. Callers are expected to
// have already filtered on mask before calling this (mask is cheaper to
// test than box overlap).
func (c *AabbCallback) ExecuteIfRelevant(entityAabb spatial.Aabb, entity spatial.EntityHandle) bool {
	c.Tested++
	if !entityAabb.HasIntersection(c.Query, 0) {
		return false
	}
	c.onHit(entity)
	return true
}

// PassesMask reports whether mask admits entityMask as a candidate.
func (c *AabbCallback) PassesMask(entityMask spatial.Mask) bool {
	return c.Mask&entityMask != 0
}

// RayPartialResult is returned by a RayCallback's user function for each
// candidate entity along the ray.
type RayPartialResult struct {
	// Dist is the hit distance, normalised to [0,1] against the ray's
	// current end (1.0 = the original end passed to NewRayCallback). Out
	// of range values are clamped by the callback, not rejected.
	Dist float64
	// Intersection is false to report "no hit" for this candidate.
	Intersection bool
}

// RayCallback drives a ray/segment query. The user function's return value
// is the only channel by which traversal's cutFactor can shrink.
type RayCallback struct {
	Start, End spatial.Vec3
	Mask       spatial.Mask

	onHit func(entity spatial.EntityHandle) RayPartialResult

	info      RayInfo
	infoReady bool

	cutFactor float64

	NodesTested int
	Tested      int
}

// NewRayCallback builds a callback for the segment [start, end]. onHit is
// invoked for every mask-admitted candidate entity the traversal reaches;
// its returned RayPartialResult may tighten the cutFactor.
func NewRayCallback(start, end spatial.Vec3, mask spatial.Mask, onHit func(spatial.EntityHandle) RayPartialResult) *RayCallback {
	return &RayCallback{Start: start, End: end, Mask: mask, onHit: onHit, cutFactor: 1.0}
}

// Info computes the ray-derived vectors on its first call and returns the
// cached RayInfo on every later call.
func (c *RayCallback) Info() RayInfo {
	if !c.infoReady {
		c.info = NewRayInfo(c.Start, c.End)
		c.infoReady = true
	}
	return c.info
}

// CutFactor returns the current normalised cutoff; candidates beyond it may
// be pruned by traversal.
func (c *RayCallback) CutFactor() float64 { return c.cutFactor }

// PassesMask reports whether the callback's mask admits entityMask.
func (c *RayCallback) PassesMask(entityMask spatial.Mask) bool {
	return c.Mask&entityMask != 0
}

// TestAabb runs the slab test against box using this callback's cached ray
// vectors and current cutFactor. Traversal calls this once per node to
// decide descent order and pruning, and again per leaf entity before
// invoking the user function.
func (c *RayCallback) TestAabb(box spatial.Aabb) (near, far float64, ok bool) {
	info := c.Info()
	return box.SlabRayTest(c.Start, info.InvDir, info.Signs, c.cutFactor)
}

// ExecuteIfRelevant slab-tests entityAabb; on a miss it returns false
// without touching Tested or calling the user function. On a hit it
// increments Tested, calls the user function, and if the result reports an
// intersection, clamps and (if smaller) adopts its distance as the new
// cutFactor. Returns whether the user function reported a hit.
func (c *RayCallback) ExecuteIfRelevant(entityAabb spatial.Aabb, entity spatial.EntityHandle) bool {
	if _, _, ok := c.TestAabb(entityAabb); !ok {
		return false
	}
	c.Tested++
	res := c.onHit(entity)
	if !res.Intersection {
		return false
	}
	dist := res.Dist
	if dist < 0 {
		dist = 0
	}
	if dist > 1 {
		dist = 1
	}
	if dist < c.cutFactor {
		c.cutFactor = dist
	}
	return true
}
