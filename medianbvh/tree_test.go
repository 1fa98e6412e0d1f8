package medianbvh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spatialpart/medianbvh"
	"github.com/katalvlaran/spatialpart/query"
	"github.com/katalvlaran/spatialpart/spatial"
)

func box(x0, y0, z0, x1, y1, z1 float64) spatial.Aabb {
	return spatial.Aabb{Min: spatial.Vec3{X: x0, Y: y0, Z: z0}, Max: spatial.Vec3{X: x1, Y: y1, Z: z1}}
}

func seedTree(t *testing.T, tr *medianbvh.Tree, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		x := float64(i * 10)
		tr.Add(spatial.EntityHandle(i+1), box(x, 0, 0, x+1, 1, 1), 1)
	}
}

func aabbHits(tr *medianbvh.Tree, query_ spatial.Aabb, mask spatial.Mask) []spatial.EntityHandle {
	var hits []spatial.EntityHandle
	cb := query.NewAabbCallback(query_, mask, func(e spatial.EntityHandle) { hits = append(hits, e) })
	tr.IntersectAabb(cb)
	return hits
}

func TestTree_SingleEntityRoundTrip(t *testing.T) {
	tr := medianbvh.New(16)
	tr.Add(1, box(0, 0, 0, 1, 1, 1), 1)
	tr.Rebuild()

	hits := aabbHits(tr, box(-1, -1, -1, 2, 2, 2), 0xFFFFFFFF)
	require.Equal(t, []spatial.EntityHandle{1}, hits)
}

func TestTree_TwoEntityRoundTrip(t *testing.T) {
	tr := medianbvh.New(16)
	seedTree(t, tr, 2)
	tr.Rebuild()

	hits := aabbHits(tr, box(-1, -1, -1, 100, 2, 2), 0xFFFFFFFF)
	require.ElementsMatch(t, []spatial.EntityHandle{1, 2}, hits)
}

func TestTree_AabbQueryFindsOverlappingOnly(t *testing.T) {
	tr := medianbvh.New(64)
	seedTree(t, tr, 20)
	tr.Rebuild()

	hits := aabbHits(tr, box(95, -1, -1, 105, 2, 2), 0xFFFFFFFF)
	require.ElementsMatch(t, []spatial.EntityHandle{11}, hits)
}

func TestTree_MaskFiltersCandidates(t *testing.T) {
	tr := medianbvh.New(64)
	for i := 0; i < 10; i++ {
		x := float64(i * 10)
		mask := spatial.Mask(1)
		if i%2 == 0 {
			mask = spatial.Mask(2)
		}
		tr.Add(spatial.EntityHandle(i+1), box(x, 0, 0, x+1, 1, 1), mask)
	}
	tr.Rebuild()

	hits := aabbHits(tr, box(-1, -1, -1, 1000, 2, 2), spatial.Mask(2))
	for _, h := range hits {
		require.Zero(t, (h-1)%2)
	}
	require.Len(t, hits, 5)
}

func TestTree_UpdateMovesEntityThenRebuildFindsNewPosition(t *testing.T) {
	tr := medianbvh.New(64)
	seedTree(t, tr, 10)
	tr.Rebuild()

	tr.Update(1, box(500, 0, 0, 501, 1, 1))
	tr.Rebuild()

	require.Empty(t, aabbHits(tr, box(-1, -1, -1, 2, 2, 2), 0xFFFFFFFF))
	require.ElementsMatch(t, []spatial.EntityHandle{1}, aabbHits(tr, box(499, -1, -1, 502, 2, 2), 0xFFFFFFFF))
}

func TestTree_UpdateExtendAabbWithoutRebuildStillFindsEntity(t *testing.T) {
	tr := medianbvh.New(64)
	seedTree(t, tr, 10)
	tr.Rebuild()

	// PolicyExtendAabb is the default: a query right after Update (no
	// explicit Rebuild) must still see the entity at its new position,
	// since Update propagates the grown bound immediately.
	tr.Update(3, box(500, 0, 0, 501, 1, 1))

	require.ElementsMatch(t, []spatial.EntityHandle{3}, aabbHits(tr, box(499, -1, -1, 502, 2, 2), 0xFFFFFFFF))
}

func TestTree_RemoveStopsMatching(t *testing.T) {
	tr := medianbvh.New(64)
	seedTree(t, tr, 10)
	tr.Rebuild()

	tr.Remove(5)
	tr.Rebuild()

	require.False(t, tr.Exists(5))
	require.Equal(t, 9, tr.GetCount())
	hits := aabbHits(tr, box(39, -1, -1, 41, 2, 2), 0xFFFFFFFF)
	require.NotContains(t, hits, spatial.EntityHandle(5))
}

func TestTree_RemoveOddHandleThenIterate(t *testing.T) {
	tr := medianbvh.New(64)
	seedTree(t, tr, 10)
	tr.Rebuild()

	tr.Remove(3)
	tr.Remove(7)
	tr.Rebuild()

	it := tr.RestartIterator()
	var seen []spatial.EntityHandle
	for it.Next() {
		seen = append(seen, it.Entity())
	}
	require.Len(t, seen, 8)
	require.NotContains(t, seen, spatial.EntityHandle(3))
	require.NotContains(t, seen, spatial.EntityHandle(7))
}

func TestTree_RebuildIsIdempotent(t *testing.T) {
	tr := medianbvh.New(64)
	seedTree(t, tr, 15)
	tr.Rebuild()
	first := aabbHits(tr, box(-1000, -1000, -1000, 1000, 1000, 1000), 0xFFFFFFFF)

	tr.Rebuild()
	second := aabbHits(tr, box(-1000, -1000, -1000, 1000, 1000, 1000), 0xFFFFFFFF)

	require.ElementsMatch(t, first, second)
	require.Len(t, first, 15)
}

func TestTree_RebuildStepAmortizesToSameResultAsRebuild(t *testing.T) {
	tr := medianbvh.New(64)
	seedTree(t, tr, 33)

	var progress medianbvh.RebuildProgress
	steps := 0
	for tr.RebuildStep(&progress, 2) {
		steps++
		require.Less(t, steps, 1000, "RebuildStep must converge")
	}

	hits := aabbHits(tr, box(-1000, -1000, -1000, 1000, 1000, 1000), 0xFFFFFFFF)
	require.Len(t, hits, 33)
	require.Greater(t, steps, 0)
}

func TestTree_SkipLowLayersGroupsStillFindEntities(t *testing.T) {
	tr := medianbvh.New(64, medianbvh.WithSkipLowLayers(1))
	seedTree(t, tr, 17)
	tr.Rebuild()

	hits := aabbHits(tr, box(-1000, -1000, -1000, 1000, 1000, 1000), 0xFFFFFFFF)
	require.Len(t, hits, 17)
}

func TestTree_SetMaskUnderSkipLowLayersRecomputesGroup(t *testing.T) {
	tr := medianbvh.New(64, medianbvh.WithSkipLowLayers(1))
	seedTree(t, tr, 9)
	tr.Rebuild()

	tr.SetMask(1, 0)
	hits := aabbHits(tr, box(-1000, -1000, -1000, 1000, 1000, 1000), 1)
	require.NotContains(t, hits, spatial.EntityHandle(1))
}

func TestTree_RayIntersectFindsNearestAlongSegment(t *testing.T) {
	tr := medianbvh.New(64)
	seedTree(t, tr, 10)
	tr.Rebuild()

	var order []spatial.EntityHandle
	cb := query.NewRayCallback(
		spatial.Vec3{X: -5},
		spatial.Vec3{X: 95},
		0xFFFFFFFF,
		func(e spatial.EntityHandle) query.RayPartialResult {
			order = append(order, e)
			return query.RayPartialResult{Dist: 0, Intersection: false}
		},
	)
	tr.IntersectRay(cb)
	require.Len(t, order, 10)
	require.Equal(t, spatial.EntityHandle(1), order[0], "the entity nearest the segment start is reached first")
}

func TestTree_RayCutFactorPrunesFartherEntities(t *testing.T) {
	tr := medianbvh.New(64)
	seedTree(t, tr, 10)
	tr.Rebuild()

	var hits []spatial.EntityHandle
	cb := query.NewRayCallback(
		spatial.Vec3{X: -5},
		spatial.Vec3{X: 95},
		0xFFFFFFFF,
		func(e spatial.EntityHandle) query.RayPartialResult {
			hits = append(hits, e)
			// Entity 1 sits near the segment start; reporting an
			// authoritative very-close hit should prune the rest.
			if e == 1 {
				return query.RayPartialResult{Dist: 0.01, Intersection: true}
			}
			return query.RayPartialResult{Intersection: false}
		},
	)
	tr.IntersectRay(cb)
	require.Contains(t, hits, spatial.EntityHandle(1))
	require.Less(t, len(hits), 10)
}

func TestTree_ClearResetsState(t *testing.T) {
	tr := medianbvh.New(64)
	seedTree(t, tr, 5)
	tr.Rebuild()
	tr.Clear()

	require.Equal(t, 0, tr.GetCount())
	require.Empty(t, aabbHits(tr, box(-1000, -1000, -1000, 1000, 1000, 1000), 0xFFFFFFFF))
}

func TestTree_GetMemoryUsageGrowsWithEntities(t *testing.T) {
	tr := medianbvh.New(64)
	before := tr.GetMemoryUsage()
	seedTree(t, tr, 50)
	tr.Rebuild()
	require.Greater(t, tr.GetMemoryUsage(), before)
}

func TestTree_StopFastAddingRebuilds(t *testing.T) {
	tr := medianbvh.New(64)
	tr.StartFastAdding()
	seedTree(t, tr, 12)
	tr.StopFastAdding()

	require.Len(t, aabbHits(tr, box(-1000, -1000, -1000, 1000, 1000, 1000), 0xFFFFFFFF), 12)
}
