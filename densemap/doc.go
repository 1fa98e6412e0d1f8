// Package densemap implements Map, an EntityHandle→offset table split into
// a dense, cache-friendly prefix and a hash-map overflow for handles that
// fall outside the prefix range.
//
// What:
//
//   - Handles in [0, R) are stored in a flat []int64 slice, giving O(1)
//     branch-free lookups for the common case of densely allocated handles.
//   - Handles ≥ R fall into a Go map, the idiomatic open-addressed-
//     equivalent for the overflow case.
//   - Writing the null sentinel (NullValue, -1) to a key is equivalent to
//     removing it.
//
// Why:
//
//   - medianbvh and dynbvh both need an entity→offset map on their hot
//     mutation path; most simulations allocate entity handles densely
//     starting at 1, so the dense prefix avoids a hash lookup for almost
//     every Get/Insert.
//
// Complexity: O(1) amortised for all operations.
//
// Errors: none; Get/Has on a missing key return the null sentinel / false.
package densemap
