// Package dynbvh implements Tree, a pointer-style bounding-volume
// hierarchy that accepts point mutations (Add/Update/Remove/SetMask)
// without ever needing a bulk rebuild.
//
// What:
//
//   - Internal nodes live in a nodepool.Pool; each one caches both
//     children's AABBs and a combined mask so a node test never has to
//     dereference a child to decide whether to descend.
//   - Insert walks from the root choosing, at each node, the child whose
//     AABB would grow least to contain the new box, splices a fresh
//     internal node in at the leaf it lands on, and (past a depth bound)
//     runs a bounded rotation pass back to the root.
//   - Remove detaches a leaf, collapses its parent into the sibling, and
//     propagates AABB/mask fixes upward only as far as containment
//     already holds.
//   - Update rewrites a leaf's AABB and refreshes the cached AABB/mask of
//     every ancestor up to the root (there is no early stop on
//     containment), trying one rotation at each of them.
//
// Why:
//
//   - A churn-heavy entity population (explosions, projectiles, players)
//     never amortises a full median-split rebuild well; threestage.Index
//     uses a Tree as its small, always-current dynamic shard.
//
// Complexity: Insert/Remove/Update/SetMask are amortised O(log N);
// Rebuild is a from-scratch Insert of every live entity, O(N log N).
//
// Errors: none in release builds — a double Add or an operation on a
// missing entity is a documented contract violation (spec §7).
package dynbvh
