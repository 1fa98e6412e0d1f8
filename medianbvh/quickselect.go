package medianbvh

import "github.com/katalvlaran/spatialpart/spatial"

// axisCenter returns the center of e's AABB along axis (0=X, 1=Y, 2=Z).
func axisCenter(e entityData, axis int) float64 {
	c := e.aabb.Center()
	return c.Component(axis)
}

// longestAxis picks the axis with the greatest extent in box.
func longestAxis(box spatial.Aabb) int {
	size := box.Size()
	axis := 0
	best := size.X
	if size.Y > best {
		axis, best = 1, size.Y
	}
	if size.Z > best {
		axis = 2
	}
	return axis
}

// selectMedian partitions s[lo:hi] in place so that the element that would
// occupy index mid in sorted order by axis-center ends up there, with
// everything left of mid no greater and everything right no smaller
// (Hoare's quickselect, i.e. nth_element). lo, mid, hi are half-open at hi.
func selectMedian(s []entityData, lo, mid, hi int, axis int) {
	for hi-lo > 1 {
		pivot := axisCenter(s[(lo+hi)/2], axis)
		i, j := lo, hi-1
		for i <= j {
			for axisCenter(s[i], axis) < pivot {
				i++
			}
			for axisCenter(s[j], axis) > pivot {
				j--
			}
			if i <= j {
				s[i], s[j] = s[j], s[i]
				i++
				j--
			}
		}
		if mid <= j {
			hi = j + 1
		} else if mid >= i {
			lo = i
		} else {
			return
		}
	}
}
