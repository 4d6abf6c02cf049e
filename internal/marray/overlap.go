package marray

import "unsafe"

// addrExtent returns the inclusive address range [lo, hi] spanned by the
// view's elements, computed as base plus dot(shape-1, stride). This assumes
// non-negative strides, which holds for every view the slicing operations
// can produce.
func addrExtent[T Scalar](v *View[T]) (lo, hi uintptr) {
	lo = uintptr(unsafe.Pointer(unsafe.SliceData(v.data))) +
		uintptr(v.off)*unsafe.Sizeof(*new(T))
	span := 0
	for d := range v.shape {
		span += (v.shape[d] - 1) * v.stride[d]
	}
	hi = lo + uintptr(span)*unsafe.Sizeof(*new(T))
	return lo, hi
}

// arraysOverlap conservatively reports whether two views may share any
// element. The bounding ranges can intersect for interleaved views whose
// element sets are actually disjoint; that false positive costs one extra
// temporary copy, never correctness.
func arraysOverlap[T, U Scalar](a *View[T], b *View[U]) bool {
	if a.ElementCount() == 0 || b.ElementCount() == 0 {
		return false
	}
	alo, ahi := addrExtent(a)
	blo, bhi := addrExtent(b)
	return alo <= bhi && blo <= ahi
}
