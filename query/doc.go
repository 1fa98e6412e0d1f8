// Package query defines the callback protocol every index uses to report
// hits (AabbCallback, RayCallback), the iterator contract for walking a
// live index, and the Index interface that medianbvh, dynbvh, and
// threestage all satisfy.
//
// What:
//
//   - AabbCallback filters a candidate AABB against a query box and mask,
//     invoking a user function once per admitted entity.
//   - RayCallback precomputes ray-derived vectors once (Info caches them)
//     and tracks a shrinking cutFactor; the user function is the only
//     channel that can tighten it, via its return value (spec design note:
//     model cutFactor as a return, not a mutated field).
//   - Iterator walks every live record of an index exactly once, in
//     implementation-defined order; it is invalidated by any structural
//     mutation of the index it was created from.
//   - Index is the common vtable (Add/Update/Remove/.../RestartIterator)
//     every broadphase shard implements.
//
// Why:
//
//   - A single callback/iterator contract lets threestage.Index fan a
//     query out to heterogeneous shards and merge results through the
//     same user-supplied function, with no shard-specific glue.
//
// Errors: none; queries never fail. An empty index is a well-defined no-op.
package query
