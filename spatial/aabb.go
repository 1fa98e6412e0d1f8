package spatial

import "math"

// Aabb is an axis-aligned bounding box defined by a Min/Max corner pair.
// A valid Aabb satisfies Min ≤ Max componentwise. Invalid returns the
// distinguished invalid value (Min=+Inf, Max=-Inf), which is absorbing
// under Union: unioning anything with it returns the other operand
// unchanged.
type Aabb struct {
	Min, Max Vec3
}

// Invalid returns the absorbing invalid AABB (min=+Inf, max=-Inf).
func Invalid() Aabb {
	inf := math.Inf(1)
	return Aabb{Min: Vec3{inf, inf, inf}, Max: Vec3{-inf, -inf, -inf}}
}

// IsValid reports whether a satisfies Min ≤ Max componentwise.
func (a Aabb) IsValid() bool {
	return a.Min.X <= a.Max.X && a.Min.Y <= a.Max.Y && a.Min.Z <= a.Max.Z
}

// Volume returns the box volume. Zero or negative for a degenerate/invalid box.
func (a Aabb) Volume() float64 {
	s := a.Max.Sub(a.Min)
	return s.X * s.Y * s.Z
}

// Surface returns the total surface area of the six faces.
func (a Aabb) Surface() float64 {
	s := a.Max.Sub(a.Min)
	return 2 * (s.X*s.Y + s.X*s.Z + s.Y*s.Z)
}

// Center returns the midpoint of the box.
func (a Aabb) Center() Vec3 {
	return a.Min.Add(a.Max.Sub(a.Min).Scale(0.5))
}

// Size returns Max-Min, the per-axis extent.
func (a Aabb) Size() Vec3 {
	return a.Max.Sub(a.Min)
}

// Expanded returns a grown by by on every side (shrunk if by is negative).
func (a Aabb) Expanded(by float64) Aabb {
	return Aabb{
		Min: a.Min.Sub(Vec3{by, by, by}),
		Max: a.Max.Add(Vec3{by, by, by}),
	}
}

// Union returns the smallest AABB containing both a and r. Union with
// Invalid() returns the other operand.
func (a Aabb) Union(r Aabb) Aabb {
	return Aabb{Min: a.Min.Min(r.Min), Max: a.Max.Max(r.Max)}
}

// UnionPoint returns the smallest AABB containing a and the point p.
func (a Aabb) UnionPoint(p Vec3) Aabb {
	return Aabb{Min: a.Min.Min(p), Max: a.Max.Max(p)}
}

// Intersection returns the overlap box of a and r. The result may be
// degenerate (Min > Max on some axis) if a and r do not overlap.
func (a Aabb) Intersection(r Aabb) Aabb {
	return Aabb{Min: a.Min.Max(r.Min), Max: a.Max.Min(r.Max)}
}

// HasIntersection reports whether a and r overlap (touching counts as
// overlap), within tolerance eps.
func (a Aabb) HasIntersection(r Aabb, eps float64) bool {
	return a.Min.X-eps <= r.Max.X && r.Min.X-eps <= a.Max.X &&
		a.Min.Y-eps <= r.Max.Y && r.Min.Y-eps <= a.Max.Y &&
		a.Min.Z-eps <= r.Max.Z && r.Min.Z-eps <= a.Max.Z
}

// ContainsAll reports whether a fully contains r, within tolerance eps.
func (a Aabb) ContainsAll(r Aabb, eps float64) bool {
	return a.Min.X-eps <= r.Min.X && r.Max.X-eps <= a.Max.X &&
		a.Min.Y-eps <= r.Min.Y && r.Max.Y-eps <= a.Max.Y &&
		a.Min.Z-eps <= r.Min.Z && r.Max.Z-eps <= a.Max.Z
}

// IsIn reports whether point p lies within a, within tolerance eps.
func (a Aabb) IsIn(p Vec3, eps float64) bool {
	return a.Min.X-eps <= p.X && p.X-eps <= a.Max.X &&
		a.Min.Y-eps <= p.Y && p.Y-eps <= a.Max.Y &&
		a.Min.Z-eps <= p.Z && p.Z-eps <= a.Max.Z
}

// RaySigns holds, per axis, whether the ray's inverse direction component
// is negative; used to pick slab ordering that avoids NaN on axis-parallel
// rays (spec §4.3 step 1).
type RaySigns [3]int

// SignsFromInvDir derives RaySigns from a precomputed inverse direction.
func SignsFromInvDir(invDir Vec3) RaySigns {
	sign := func(v float64) int {
		if v < 0 {
			return 1
		}
		return 0
	}
	return RaySigns{sign(invDir.X), sign(invDir.Y), sign(invDir.Z)}
}

// SlabRayTest performs the standard slab-method ray/AABB test.
//
// ro is the ray origin, invDir the componentwise reciprocal of the ray
// direction, signs the precomputed per-axis sign (see SignsFromInvDir),
// and cutFactor the current normalised cutoff in [0,1] (1.0 = the ray's
// original length). Returns (near, far, ok); ok is false when the ray
// misses, when it passes entirely before the origin, or when even the
// closest intersection is beyond cutFactor.
func (a Aabb) SlabRayTest(ro Vec3, invDir Vec3, signs RaySigns, cutFactor float64) (near, far float64, ok bool) {
	bounds := [2]Vec3{a.Min, a.Max}

	tminX := (bounds[signs[0]].X - ro.X) * invDir.X
	tmaxX := (bounds[1-signs[0]].X - ro.X) * invDir.X
	tminY := (bounds[signs[1]].Y - ro.Y) * invDir.Y
	tmaxY := (bounds[1-signs[1]].Y - ro.Y) * invDir.Y

	if tminX > tmaxY || tminY > tmaxX {
		return 0, 0, false
	}
	if tminY > tminX {
		tminX = tminY
	}
	if tmaxY < tmaxX {
		tmaxX = tmaxY
	}

	tminZ := (bounds[signs[2]].Z - ro.Z) * invDir.Z
	tmaxZ := (bounds[1-signs[2]].Z - ro.Z) * invDir.Z

	if tminX > tmaxZ || tminZ > tmaxX {
		return 0, 0, false
	}
	if tminZ > tminX {
		tminX = tminZ
	}
	if tmaxZ < tmaxX {
		tmaxX = tmaxZ
	}

	near, far = tminX, tmaxX
	if far < 0 {
		return 0, 0, false
	}
	if near > far {
		return 0, 0, false
	}
	if near > cutFactor {
		return 0, 0, false
	}
	if near < 0 {
		near = 0
	}
	return near, far, true
}
