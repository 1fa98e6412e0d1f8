// Package densemap: types, defaults, and constructor.
package densemap

import "github.com/katalvlaran/spatialpart/spatial"

// NullValue is the sentinel offset meaning "absent".
const NullValue int64 = -1

// Map maps spatial.EntityHandle to a signed integer offset. Handles below
// DenseRange live in a flat slice; handles at or above it live in a Go map.
type Map struct {
	denseRange spatial.EntityHandle
	dense      []int64
	sparse     map[spatial.EntityHandle]int64
	size       int
}

// New constructs a Map whose dense prefix covers handles in [0, denseRange).
// The dense range is fixed at construction time; it is never resized.
func New(denseRange spatial.EntityHandle) *Map {
	m := &Map{denseRange: denseRange}
	m.Clear()
	return m
}

// Clear drops every entry, re-initialising the dense prefix to NullValue.
func (m *Map) Clear() {
	m.size = 0
	m.dense = make([]int64, m.denseRange)
	for i := range m.dense {
		m.dense[i] = NullValue
	}
	m.sparse = make(map[spatial.EntityHandle]int64)
}

// Reserve hints at the number of sparse (≥ denseRange) entries expected.
func (m *Map) Reserve(capacity int) {
	if capacity <= len(m.sparse) {
		return
	}
	grown := make(map[spatial.EntityHandle]int64, capacity)
	for k, v := range m.sparse {
		grown[k] = v
	}
	m.sparse = grown
}

// Size returns the number of non-null entries.
func (m *Map) Size() int { return m.size }

// GetMemoryUsage returns an approximate byte accounting of the backing
// storage (spec §3 supplement, ported from DenseSparseIntMap::GetMemoryUsage).
func (m *Map) GetMemoryUsage() int {
	const mapBucketOverhead = 48 // rough per-entry overhead of a Go map bucket
	return len(m.dense)*8 + len(m.sparse)*(8+8+mapBucketOverhead)
}
