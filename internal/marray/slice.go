package marray

import "github.com/gomlx/exceptions"

// Slicing operations. All of them are O(1): they derive a new non-owning
// view by recomputing shape, stride and buffer position, and never touch
// element data. Binding away dimension 0 (or applying an extra stride, or
// permuting) marks the result strided; everything else preserves the
// contiguity of the surviving layout.

// sliceView assembles a derived view, substituting the synthetic scalar
// layout when every dimension has been bound away.
func sliceView[T Scalar](shape Shape, stride Stride, data []T, off int, strided bool) *View[T] {
	if len(shape) == 0 {
		shape, stride = Shape{1}, Stride{0}
	}
	return &View[T]{shape: shape, stride: stride, data: data, off: off, strided: strided}
}

// BindOuter fixes the outermost len(ix) dimensions to the given indices,
// producing a view of rank Rank()-len(ix). ix[0] indexes dimension
// Rank()-len(ix), ix[len(ix)-1] the outermost dimension. Contiguity of the
// surviving inner layout is preserved.
func (v *View[T]) BindOuter(ix ...int) *View[T] {
	m := len(ix)
	n := len(v.shape)
	if m > n {
		exceptions.Panicf("View.BindOuter: binding %d of %d dimensions", m, n)
	}
	off := v.off
	for i, x := range ix {
		off += x * v.stride[n-m+i]
	}
	return sliceView(v.shape[:n-m].Clone(), v.stride[:n-m].Clone(), v.data, off, v.strided)
}

// BindInner fixes the innermost len(ix) dimensions to the given indices,
// producing a view of rank Rank()-len(ix). The result is strided: its new
// dimension 0 steps by the old outer strides.
func (v *View[T]) BindInner(ix ...int) *View[T] {
	m := len(ix)
	n := len(v.shape)
	if m > n {
		exceptions.Panicf("View.BindInner: binding %d of %d dimensions", m, n)
	}
	off := v.off
	for i, x := range ix {
		off += x * v.stride[i]
	}
	return sliceView(v.shape[m:].Clone(), v.stride[m:].Clone(), v.data, off, true)
}

// Bind fixes dimension d to index i, removing it from the shape and stride
// tuples. The result is marked strided exactly when d is dimension 0. The
// index is not range-checked; use BindAt for the checked form.
func (v *View[T]) Bind(d, i int) *View[T] {
	n := len(v.shape)
	shape := make(Shape, 0, n-1)
	stride := make(Stride, 0, n-1)
	shape = append(append(shape, v.shape[:d]...), v.shape[d+1:]...)
	stride = append(append(stride, v.stride[:d]...), v.stride[d+1:]...)
	return sliceView(shape, stride, v.data, v.off+i*v.stride[d], v.strided || d == 0)
}

// BindAt fixes dimension d, chosen at run time, to index i. The dimension
// must be in range; the result is always marked strided.
func (v *View[T]) BindAt(d, i int) *View[T] {
	if d < 0 || d >= len(v.shape) {
		exceptions.Panicf("View.BindAt: dimension %d out of range for rank %d", d, len(v.shape))
	}
	b := v.Bind(d, i)
	b.strided = true
	return b
}

// Subarray restricts the view to the half-open rectangular region [p, q).
// The stride is kept; only the buffer position and shape change, so the
// operation is valid for any dimensionality.
func (v *View[T]) Subarray(p, q Coord) *View[T] {
	shape := make(Shape, len(v.shape))
	for d := range shape {
		shape[d] = q[d] - p[d]
	}
	return sliceView(shape, v.stride.Clone(), v.data, v.off+p.Dot(v.stride), v.strided)
}

// StrideArray applies an additional per-dimension striding s, dividing the
// shape accordingly. For example, striding dimension 0 of an interleaved
// pixel buffer by the channel count extracts a single channel.
func (v *View[T]) StrideArray(s Coord) *View[T] {
	shape := make(Shape, len(v.shape))
	stride := make(Stride, len(v.shape))
	for d := range shape {
		shape[d] = v.shape[d] / s[d]
		stride[d] = v.stride[d] * s[d]
	}
	return sliceView(shape, stride, v.data, v.off, true)
}

// PermuteDimensions reindexes shape and stride so that dimension i of the
// result is dimension order[i] of the receiver. order must be a bijection
// on {0, ..., Rank()-1}.
func (v *View[T]) PermuteDimensions(order []int) *View[T] {
	n := len(v.shape)
	if len(order) != n {
		exceptions.Panicf("View.PermuteDimensions: permutation of length %d for rank %d", len(order), n)
	}
	shape := make(Shape, n)
	stride := make(Stride, n)
	check := make([]int, n)
	for i, o := range order {
		if o < 0 || o >= n {
			exceptions.Panicf("View.PermuteDimensions: dimension %d out of range for rank %d", o, n)
		}
		shape[i] = v.shape[o]
		stride[i] = v.stride[o]
		check[o]++
	}
	for d, c := range check {
		if c != 1 {
			exceptions.Panicf("View.PermuteDimensions: every dimension must occur exactly once (dimension %d occurs %d times)", d, c)
		}
	}
	return sliceView(shape, stride, v.data, v.off, true)
}

// Transpose swaps the two dimensions of a rank-2 view.
func (v *View[T]) Transpose() *View[T] {
	if len(v.shape) != 2 {
		exceptions.Panicf("View.Transpose: requires rank 2, got %d", len(v.shape))
	}
	return sliceView(Shape{v.shape[1], v.shape[0]}, Stride{v.stride[1], v.stride[0]}, v.data, v.off, true)
}
