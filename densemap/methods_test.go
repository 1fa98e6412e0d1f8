package densemap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spatialpart/densemap"
	"github.com/katalvlaran/spatialpart/spatial"
)

func TestMap_DenseRoundTrip(t *testing.T) {
	m := densemap.New(8)
	require.Equal(t, 0, m.Size())

	m.Insert(3, 42)
	require.True(t, m.Has(3))
	require.Equal(t, int64(42), m.Get(3))
	require.Equal(t, 1, m.Size())

	m.Remove(3)
	require.False(t, m.Has(3))
	require.Equal(t, int64(densemap.NullValue), m.Get(3))
	require.Equal(t, 0, m.Size())
}

func TestMap_SparseOverflow(t *testing.T) {
	m := densemap.New(4)
	m.Insert(100, 7)
	require.True(t, m.Has(100))
	require.Equal(t, int64(7), m.Get(100))
	require.Equal(t, 1, m.Size())

	m.Insert(100, densemap.NullValue)
	require.False(t, m.Has(100))
	require.Equal(t, 0, m.Size())
}

func TestMap_SetNullValueRemoves(t *testing.T) {
	m := densemap.New(4)
	m.Insert(1, 10)
	m.Set(1, densemap.NullValue)
	require.False(t, m.Has(1))

	m.Insert(200, 10)
	m.Set(200, densemap.NullValue)
	require.False(t, m.Has(200))
}

func TestMap_IterationOrder(t *testing.T) {
	m := densemap.New(4)
	m.Insert(3, 30)
	m.Insert(1, 10)
	m.Insert(200, 2000)

	var dense []spatial.EntityHandle
	var sparse []spatial.EntityHandle
	m.Each(func(e densemap.Entry) {
		if e.Key < 4 {
			dense = append(dense, e.Key)
		} else {
			sparse = append(sparse, e.Key)
		}
	})
	require.Equal(t, []spatial.EntityHandle{1, 3}, dense, "dense entries visit in ascending key order")
	require.Equal(t, []spatial.EntityHandle{200}, sparse)
}

func TestMap_Clear(t *testing.T) {
	m := densemap.New(4)
	m.Insert(1, 10)
	m.Insert(100, 20)
	m.Clear()
	require.Equal(t, 0, m.Size())
	require.False(t, m.Has(1))
	require.False(t, m.Has(100))
}

func TestMap_Reserve(t *testing.T) {
	m := densemap.New(4)
	m.Reserve(100)
	m.Insert(500, 1)
	require.True(t, m.Has(500))
}
