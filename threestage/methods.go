package threestage

import (
	"github.com/katalvlaran/spatialpart/query"
	"github.com/katalvlaran/spatialpart/spatial"
)

// Add routes to the dynamic shard (spec §4.7).
func (ix *Index) Add(entity spatial.EntityHandle, aabb spatial.Aabb, mask spatial.Mask) {
	ix.TryIntegrateOptimised()
	ix.dynamic.Add(entity, aabb, mask)
	ix.bumpMutation()
}

// Update replaces entity's AABB in place if it already lives in dynamic.
// If it lives in optimised instead, it is removed from optimised and
// re-added to dynamic, and if a rebuild is in flight the move is recorded
// so the shadow's stale copy gets dropped on swap. An entity in neither
// shard is left untouched.
func (ix *Index) Update(entity spatial.EntityHandle, aabb spatial.Aabb) {
	ix.TryIntegrateOptimised()
	if ix.dynamic.Exists(entity) {
		ix.dynamic.Update(entity, aabb)
		ix.bumpMutation()
		return
	}
	if !ix.optimised.Exists(entity) {
		return
	}
	mask := ix.optimised.GetMask(entity)
	ix.optimised.Remove(entity)
	ix.dynamic.Add(entity, aabb, mask)
	if ix.rebuild != nil {
		ix.pendingRemovals[entity] = struct{}{}
	}
	ix.bumpMutation()
}

// Remove deletes entity from whichever shard owns it, recording the
// removal for replay against an in-flight rebuild's shadow.
func (ix *Index) Remove(entity spatial.EntityHandle) {
	ix.TryIntegrateOptimised()
	if ix.dynamic.Exists(entity) {
		ix.dynamic.Remove(entity)
	} else {
		ix.optimised.Remove(entity)
	}
	if ix.rebuild != nil {
		ix.pendingRemovals[entity] = struct{}{}
	}
	ix.bumpMutation()
}

// SetMask updates the owning shard's mask; if the owner is optimised and a
// rebuild is in flight, the new mask is also recorded for replay against
// the shadow after swap.
func (ix *Index) SetMask(entity spatial.EntityHandle, mask spatial.Mask) {
	ix.TryIntegrateOptimised()
	if ix.dynamic.Exists(entity) {
		ix.dynamic.SetMask(entity, mask)
		return
	}
	ix.optimised.SetMask(entity, mask)
	if ix.rebuild != nil {
		ix.pendingMasks[entity] = mask
	}
}

func (ix *Index) bumpMutation() {
	ix.mutationsSinceRebuild++
	if ix.mutationsSinceRebuild >= ix.opts.mutationThreshold {
		ix.TryScheduleRebuild()
	}
}

// TryScheduleRebuild starts a new background rebuild unless one is already
// in flight. A fresh shadow is snapshotted from the union of optimised and
// dynamic (dynamic entries win on conflict, since they are the more
// recent copy), pending replay queues are cleared, and the caller's
// scheduler is handed the shadow plus a finished flag it must eventually
// set.
func (ix *Index) TryScheduleRebuild() {
	if ix.state == Rebuilding && !ix.finished.Load() {
		return
	}

	shadow := ix.newShadow()
	it := ix.optimised.RestartIterator()
	for it.Next() {
		shadow.Add(it.Entity(), it.Aabb(), it.Mask())
	}
	it = ix.dynamic.RestartIterator()
	for it.Next() {
		e, a, m := it.Entity(), it.Aabb(), it.Mask()
		if shadow.Exists(e) {
			shadow.Update(e, a)
			shadow.SetMask(e, m)
		} else {
			shadow.Add(e, a, m)
		}
	}

	for e := range ix.pendingRemovals {
		delete(ix.pendingRemovals, e)
	}
	for e := range ix.pendingMasks {
		delete(ix.pendingMasks, e)
	}

	ix.finished.Store(false)
	ix.rebuild = shadow
	ix.state = Rebuilding
	ix.mutationsSinceRebuild = 0
	ix.scheduler(&ix.finished, shadow, ix.userData)
}

// TryIntegrateOptimised adopts a finished shadow, if one is waiting. Called
// at the top of every public mutation and query (spec §4.7).
func (ix *Index) TryIntegrateOptimised() {
	if ix.rebuild == nil || !ix.finished.Load() {
		return
	}
	ix.state = Integrating

	old := ix.optimised
	ix.optimised = ix.rebuild
	ix.rebuild = nil
	old.Clear()

	for e := range ix.pendingRemovals {
		if ix.optimised.Exists(e) {
			ix.optimised.Remove(e)
		}
		delete(ix.pendingRemovals, e)
	}
	for e, m := range ix.pendingMasks {
		if ix.optimised.Exists(e) {
			ix.optimised.SetMask(e, m)
		}
		delete(ix.pendingMasks, e)
	}

	tol := ix.opts.integrationTolerance
	it := ix.dynamic.RestartIterator()
	var stale []spatial.EntityHandle
	var dropFromDynamic []spatial.EntityHandle
	for it.Next() {
		e := it.Entity()
		if !ix.optimised.Exists(e) {
			continue
		}
		if aabbsAgree(it.Aabb(), ix.optimised.GetAabb(e), tol) {
			dropFromDynamic = append(dropFromDynamic, e)
		} else {
			stale = append(stale, e)
		}
	}
	for _, e := range stale {
		ix.optimised.Remove(e)
	}
	for _, e := range dropFromDynamic {
		ix.dynamic.Remove(e)
	}

	ix.finished.Store(false)
	ix.state = Steady
}

func aabbsAgree(a, b spatial.Aabb, tol float64) bool {
	return within(a.Min.X, b.Min.X, tol) && within(a.Min.Y, b.Min.Y, tol) && within(a.Min.Z, b.Min.Z, tol) &&
		within(a.Max.X, b.Max.X, tol) && within(a.Max.Y, b.Max.Y, tol) && within(a.Max.Z, b.Max.Z, tol)
}

func within(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

// Exists reports whether entity is tracked by either shard.
func (ix *Index) Exists(entity spatial.EntityHandle) bool {
	ix.TryIntegrateOptimised()
	return ix.dynamic.Exists(entity) || ix.optimised.Exists(entity)
}

// GetAabb returns entity's last-known AABB, or the zero value if absent.
func (ix *Index) GetAabb(entity spatial.EntityHandle) spatial.Aabb {
	ix.TryIntegrateOptimised()
	if ix.dynamic.Exists(entity) {
		return ix.dynamic.GetAabb(entity)
	}
	return ix.optimised.GetAabb(entity)
}

// GetMask returns entity's last-known mask, or zero if absent.
func (ix *Index) GetMask(entity spatial.EntityHandle) spatial.Mask {
	ix.TryIntegrateOptimised()
	if ix.dynamic.Exists(entity) {
		return ix.dynamic.GetMask(entity)
	}
	return ix.optimised.GetMask(entity)
}

// GetCount returns the number of live entities across both shards.
func (ix *Index) GetCount() int {
	ix.TryIntegrateOptimised()
	return ix.dynamic.GetCount() + ix.optimised.GetCount()
}

// IntersectAabb dispatches to dynamic first, then optimised (spec §4.7).
func (ix *Index) IntersectAabb(cb *query.AabbCallback) {
	ix.TryIntegrateOptimised()
	ix.dynamic.IntersectAabb(cb)
	ix.optimised.IntersectAabb(cb)
}

// IntersectRay dispatches to dynamic first, then optimised; the shared
// callback's shrinking cutFactor composes across both shards automatically.
func (ix *Index) IntersectRay(cb *query.RayCallback) {
	ix.TryIntegrateOptimised()
	ix.dynamic.IntersectRay(cb)
	ix.optimised.IntersectRay(cb)
}

// Rebuild forces TryScheduleRebuild regardless of the mutation-count
// threshold.
func (ix *Index) Rebuild() {
	ix.TryIntegrateOptimised()
	ix.TryScheduleRebuild()
}

// StartFastAdding forwards the hint to the dynamic shard, the only one
// Add ever routes to.
func (ix *Index) StartFastAdding() { ix.dynamic.StartFastAdding() }

// StopFastAdding forwards the hint to the dynamic shard.
func (ix *Index) StopFastAdding() { ix.dynamic.StopFastAdding() }

// Clear drops every record from both shards and discards any in-flight
// rebuild.
func (ix *Index) Clear() {
	ix.optimised.Clear()
	ix.dynamic.Clear()
	ix.rebuild = nil
	ix.finished.Store(false)
	ix.state = Steady
	ix.mutationsSinceRebuild = 0
	ix.pendingRemovals = make(map[spatial.EntityHandle]struct{})
	ix.pendingMasks = make(map[spatial.EntityHandle]spatial.Mask)
}

// ShrinkToFit forwards to both shards.
func (ix *Index) ShrinkToFit() {
	ix.optimised.ShrinkToFit()
	ix.dynamic.ShrinkToFit()
}

// GetMemoryUsage sums both shards, plus an in-flight shadow if one exists.
func (ix *Index) GetMemoryUsage() int {
	total := ix.optimised.GetMemoryUsage() + ix.dynamic.GetMemoryUsage()
	if ix.rebuild != nil {
		total += ix.rebuild.GetMemoryUsage()
	}
	return total
}

// Stats returns a point-in-time snapshot of the orchestrator's state.
func (ix *Index) Stats() Stats {
	ix.TryIntegrateOptimised()
	return Stats{
		State:                 ix.state,
		ElementsInOptimised:   ix.optimised.GetCount(),
		ElementsInDynamic:     ix.dynamic.GetCount(),
		MutationsSinceRebuild: ix.mutationsSinceRebuild,
		RebuildInFlight:       ix.rebuild != nil,
		PendingRemovals:       len(ix.pendingRemovals),
		PendingMaskUpdates:    len(ix.pendingMasks),
	}
}
