// Package spatialpart is a broadphase collision-detection toolkit for 3D
// AABB scenes.
//
//	A small, dependency-light library that brings together:
//
//	  • Core primitives: AABB, masked entity handles, ray queries
//	  • A dense+sparse entity map and a slot-pool allocator
//	  • A median-split static BVH for batch-rebuilt scenes
//	  • A pointer-style dynamic BVH for incrementally churned scenes
//	  • A three-stage orchestrator that blends both behind one index
//
// Everything lives under seven subpackages:
//
//	spatial/    — Aabb, Vec3, EntityHandle, Mask
//	query/      — AabbCallback, RayCallback, the shared Index contract
//	densemap/   — entity handle -> slot offset lookup
//	nodepool/   — generic slot-pool allocator with offset reuse
//	medianbvh/  — static median-split BVH (heap-array layout)
//	dynbvh/     — dynamic incremental BVH (sibling rotations)
//	threestage/ — optimised/dynamic/rebuild-shadow orchestrator
//
//	go get github.com/katalvlaran/spatialpart
package spatialpart
