// Package nodepool implements Pool, a slot allocator that hands out stable
// integer offsets for tree node records.
//
// What:
//
//   - Offsets start at 1 (0 is reserved, mirroring spatial.EmptyHandle's
//     convention of reserving the zero value).
//   - Freed offsets are pushed onto a LIFO free-list and reused before the
//     backing slice grows.
//   - Removing the highest-index slot shrinks the pool in place instead of
//     queueing a dead offset, keeping Size() accurate without a
//     compaction pass.
//
// Why:
//
//   - dynbvh.Tree stores its internal nodes in a Pool so that rotations and
//     insert/remove splices can hand around plain int offsets instead of
//     pointers, and so offset stability survives unrelated Add/Remove
//     calls elsewhere in the tree.
//
// Errors: none.
package nodepool
