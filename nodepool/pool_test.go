package nodepool_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spatialpart/nodepool"
)

func TestPool_OffsetsStartAtOne(t *testing.T) {
	p := nodepool.New[int]()
	o1 := p.Add(10)
	o2 := p.Add(20)
	require.Equal(t, 1, o1)
	require.Equal(t, 2, o2)
	require.Equal(t, 2, p.Size())
}

func TestPool_RemoveReusesLIFO(t *testing.T) {
	p := nodepool.New[string]()
	a := p.Add("a")
	b := p.Add("b")
	c := p.Add("c")

	p.Remove(a)
	p.Remove(b)

	// LIFO reuse: the next Add gets b's offset back, not a's.
	next := p.Add("d")
	require.Equal(t, b, next)
	require.Equal(t, "d", p.At(next))
	require.Equal(t, "c", p.At(c))
}

func TestPool_RemoveHighestShrinks(t *testing.T) {
	p := nodepool.New[int]()
	o1 := p.Add(1)
	o2 := p.Add(2)
	p.Remove(o2)
	// Removing the top slot shrinks rather than queueing: the next Add
	// reuses o2's numeric value again since the slice just got shorter.
	o3 := p.Add(3)
	require.Equal(t, o2, o3)
	require.Equal(t, 1, o1)
}

func TestPool_OffsetStabilityAcrossUnrelatedOps(t *testing.T) {
	p := nodepool.New[int]()
	keep := p.Add(100)
	tmp := p.Add(200)
	p.Remove(tmp)
	require.Equal(t, 100, p.At(keep))
}

func TestPool_ClearResetsToReservedZero(t *testing.T) {
	p := nodepool.New[int]()
	p.Add(1)
	p.Add(2)
	p.Clear()
	require.Equal(t, 0, p.Size())
	o := p.Add(9)
	require.Equal(t, 1, o)
}
