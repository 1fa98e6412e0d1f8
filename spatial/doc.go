// Package spatial defines the vector, AABB, and entity primitives shared by
// every index in module github.com/katalvlaran/spatialpart.
//
// What:
//
//   - Vec3 is a 3-component float64 vector with the componentwise ops the
//     tree builders and ray tests need.
//   - Aabb is a (Min, Max) pair with the invariant Min ≤ Max componentwise;
//     Invalid() is the absorbing element under Union.
//   - EntityHandle is the caller-chosen, externally stable identifier for
//     a tracked object; 0 is reserved as empty.
//   - Mask is a 32-bit bitfield; a candidate passes a query iff the AND of
//     the query mask and the entity mask is non-zero.
//   - EntityRecord bundles an Aabb, EntityHandle and Mask together; it is
//     owned by exactly one index shard at a time.
//
// Why:
//
//   - Every tree package (medianbvh, dynbvh) and the orchestrator
//     (threestage) need an identical notion of "box" and "entity" so that
//     records can move between shards without conversion.
//
// Errors: none — this package has no fallible constructors.
package spatial
