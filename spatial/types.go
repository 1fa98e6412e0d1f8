// Package spatial: core types and constants.
package spatial

import "math"

// DefaultEpsilon is the slack added to union AABBs during median-split
// rebuilds and extend-aabb updates (spec §6 ε ≈ 0.02).
const DefaultEpsilon = 0.02

// EmptyHandle is the reserved, never-issued EntityHandle value.
const EmptyHandle EntityHandle = 0

// EntityHandle is an opaque, caller-chosen identifier. The library never
// invents or reuses handle values; 0 is reserved as "empty".
type EntityHandle uint64

// Mask is a bitfield used to filter query candidates. A candidate passes a
// query iff (queryMask & entityMask) != 0. Mask 0 hides an entity from
// every query.
type Mask uint32

// Vec3 is a 3-component float64 vector.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+w componentwise.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v-w componentwise.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Min returns the componentwise minimum of v and w.
func (v Vec3) Min(w Vec3) Vec3 {
	return Vec3{math.Min(v.X, w.X), math.Min(v.Y, w.Y), math.Min(v.Z, w.Z)}
}

// Max returns the componentwise maximum of v and w.
func (v Vec3) Max(w Vec3) Vec3 {
	return Vec3{math.Max(v.X, w.X), math.Max(v.Y, w.Y), math.Max(v.Z, w.Z)}
}

// Abs returns the componentwise absolute value of v.
func (v Vec3) Abs() Vec3 {
	return Vec3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Normalized returns v scaled to unit length; the zero vector is returned
// unchanged rather than producing NaNs.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Component returns the i-th component of v (0=X, 1=Y, 2=Z).
func (v Vec3) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// EntityRecord bundles the mutable state tracked for one entity: its
// bounding box, caller handle, and filter mask.
type EntityRecord struct {
	Aabb   Aabb
	Handle EntityHandle
	Mask   Mask
}
