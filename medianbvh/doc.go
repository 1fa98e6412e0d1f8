// Package medianbvh implements Tree, a bulk-built bounding-volume
// hierarchy stored as a flat, 1-based heap-ordered array.
//
// What:
//
//   - Tree.Add appends to a flat entity array and marks the tree dirty;
//     the heap-ordered node array is only populated by Rebuild.
//   - Tree.Update either extends node AABBs upward along the heap path
//     (PolicyExtendAabb, the default) or defers to the next Rebuild
//     (PolicyFullRebuildOnNextRead).
//   - Rebuild recursively median-splits the entity range belonging to each
//     node along its longest axis, using a quickselect partial-sort so the
//     whole build stays O(N log N) rather than O(N²).
//   - SkipLowLayers collapses the bottom K heap levels so a leaf-adjacent
//     "node" addresses a contiguous group of 2^(K+1) entities, trading a
//     linear scan of that group for fewer internal nodes to test.
//
// Why:
//
//   - A bulk rebuild amortises beautifully over a frame when entity
//     placement churns slowly; threestage.Index uses a Tree as both its
//     optimised primary shard and its shadow rebuild target.
//
// Complexity: Rebuild is O(N log N); Add/SetMask/Update(extend) are
// O(log N); Update(full-rebuild) and Remove defer cost to the next Rebuild
// or are O(log N) via the same extend-path propagation.
//
// Errors: none. A double Add or an operation on a missing entity is a
// contract violation that is not checked (spec §7); the only panics are
// WithSkipLowLayers and WithEpsilon rejecting out-of-range values.
package medianbvh
