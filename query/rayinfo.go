package query

import "github.com/katalvlaran/spatialpart/spatial"

// RayInfo holds the vectors derived from a ray segment once per query:
// direction, normalised direction, length, inverse direction, and the
// per-axis sign used to avoid NaN in the slab test (spec §4.3/§4.4).
type RayInfo struct {
	Dir           spatial.Vec3
	DirNormalized spatial.Vec3
	Length        float64
	InvDir        spatial.Vec3
	Signs         spatial.RaySigns
}

// NewRayInfo computes the derived ray vectors for the segment [start, end].
// Axis-parallel components (dir component == 0) produce an infinite
// InvDir component, matching IEEE 754 division-by-zero semantics; the
// slab test's sign-based bounds ordering (SignsFromInvDir) is what keeps
// that from producing NaNs during traversal.
func NewRayInfo(start, end spatial.Vec3) RayInfo {
	dir := end.Sub(start)
	length := dir.Length()
	invDir := spatial.Vec3{X: 1 / dir.X, Y: 1 / dir.Y, Z: 1 / dir.Z}
	return RayInfo{
		Dir:           dir,
		DirNormalized: dir.Normalized(),
		Length:        length,
		InvDir:        invDir,
		Signs:         spatial.SignsFromInvDir(invDir),
	}
}
