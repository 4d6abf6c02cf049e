package marray

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// View is a non-owning window into a strided element buffer. It stores a
// shape, a stride and a buffer position but never owns the memory; the
// caller keeps the buffer alive for the view's lifetime. Multiple views may
// alias the same buffer with different shapes and strides.
//
// The zero View is unbound: it has no buffer and adopts the right-hand side
// on first Assign.
type View[T Scalar] struct {
	shape  Shape
	stride Stride
	data   []T
	off    int
	// strided marks views whose innermost dimension may skip elements,
	// i.e. the flat buffer tail no longer enumerates them densely.
	strided bool
}

// NewView binds a view with canonical (unstrided) layout over the prefix of
// data. A rank-0 shape describes a scalar and is stored as a single
// synthetic dimension of extent 1.
func NewView[T Scalar](shape Shape, data []T) (*View[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "NewView")
	}
	if n := shape.NumElements(); n > len(data) {
		return nil, errors.Errorf("NewView: shape %v requires %d elements, buffer has %d", shape, n, len(data))
	}
	sh, st := canonicalLayout(shape)
	return &View[T]{shape: sh, stride: st, data: data}, nil
}

// NewStridedView binds a view with an explicit stride and start offset.
// No consistency checks are performed; this is the low-level escape hatch
// for adopting foreign layouts.
func NewStridedView[T Scalar](shape Shape, stride Stride, data []T, off int) *View[T] {
	sh, _ := canonicalLayout(shape)
	st := stride.Clone()
	if len(st) == 0 {
		st = Stride{0}
	}
	v := &View[T]{shape: sh, stride: st, data: data, off: off}
	v.strided = !st.Equal(DefaultStride(sh))
	return v
}

// Rank returns the view's dimensionality.
func (v *View[T]) Rank() int { return len(v.shape) }

// Shape returns the view's shape.
func (v *View[T]) Shape() Shape { return v.shape }

// Dim returns the extent of dimension d.
func (v *View[T]) Dim(d int) int { return v.shape[d] }

// Strides returns the view's stride for every dimension.
func (v *View[T]) Strides() Stride { return v.stride }

// Stride returns the view's stride at dimension d.
func (v *View[T]) Stride(d int) int { return v.stride[d] }

// ElementCount returns the number of elements in the view.
func (v *View[T]) ElementCount() int {
	if len(v.shape) == 0 {
		return 0
	}
	return v.shape.NumElements()
}

// Size returns the number of elements in the view. Same as ElementCount.
func (v *View[T]) Size() int { return v.ElementCount() }

// IsBound reports whether the view points at a buffer.
func (v *View[T]) IsBound() bool { return v.data != nil }

// Empty reports whether the view holds no elements.
func (v *View[T]) Empty() bool { return v.ElementCount() == 0 }

// IsUnstrided reports whether the view's elements are a dense prefix of its
// buffer tail, so Data() enumerates them in scan order.
func (v *View[T]) IsUnstrided() bool { return !v.strided }

// Data returns the buffer tail starting at the view's first element.
// Only meaningful as a dense element sequence when IsUnstrided.
func (v *View[T]) Data() []T { return v.data[v.off:] }

// Traverse returns a traverser positioned at the view's outermost
// dimension, for consumption by external dimension-recursive algorithms.
func (v *View[T]) Traverse() Traverser[T] {
	return Traverser[T]{data: v.data, off: v.off, shape: v.shape, stride: v.stride, dim: len(v.shape) - 1}
}

func (v *View[T]) offsetOf(ix []int) int {
	if len(ix) != len(v.shape) {
		exceptions.Panicf("View: got %d indices for a rank-%d view", len(ix), len(v.shape))
	}
	off := v.off
	for d, x := range ix {
		off += x * v.stride[d]
	}
	return off
}

// At returns the element at the given full coordinate, one index per
// dimension.
func (v *View[T]) At(ix ...int) T { return v.data[v.offsetOf(ix)] }

// Set overwrites the element at the given full coordinate.
func (v *View[T]) Set(x T, ix ...int) { v.data[v.offsetOf(ix)] = x }

// Ptr returns a pointer to the element at the given full coordinate.
func (v *View[T]) Ptr(ix ...int) *T { return &v.data[v.offsetOf(ix)] }

// AtIndex returns the element at a flat scan-order index in [0,
// ElementCount), with dimension 0 varying fastest, independent of stride.
func (v *View[T]) AtIndex(d int) T {
	return v.data[v.off+ScanOrderToOffset(d, v.shape, v.stride)]
}

// SetIndex overwrites the element at a flat scan-order index.
func (v *View[T]) SetIndex(d int, x T) {
	v.data[v.off+ScanOrderToOffset(d, v.shape, v.stride)] = x
}

// PtrIndex returns a pointer to the element at a flat scan-order index.
func (v *View[T]) PtrIndex(d int) *T {
	return &v.data[v.off+ScanOrderToOffset(d, v.shape, v.stride)]
}

// ScanOrderToCoord converts a flat scan-order index into a coordinate for
// this view's shape.
func (v *View[T]) ScanOrderToCoord(d int) Coord { return ScanOrderToCoord(d, v.shape) }

// CoordToScanOrder converts a coordinate into a flat scan-order index for
// this view's shape.
func (v *View[T]) CoordToScanOrder(c Coord) int { return CoordToScanOrder(c, v.shape) }

// IsInside reports whether the coordinate lies within the view's bounds in
// every dimension.
func (v *View[T]) IsInside(c Coord) bool {
	if len(c) != len(v.shape) {
		exceptions.Panicf("View.IsInside: got %d indices for a rank-%d view", len(c), len(v.shape))
	}
	for d := range c {
		if c[d] < 0 || c[d] >= v.shape[d] {
			return false
		}
	}
	return true
}

// Init overwrites every element with a constant and returns the view.
func (v *View[T]) Init(x T) *View[T] {
	initArrayData(v.Traverse(), x)
	return v
}

// Assign implements assignment with bind-on-first-use semantics:
//
//   - an unbound view becomes another window onto rhs's data (a shallow
//     rebind, no elements are copied);
//   - a bound view requires matching shapes and copies element-wise,
//     aliasing-safely.
func (v *View[T]) Assign(rhs *View[T]) *View[T] {
	if v == rhs {
		return v
	}
	if !v.IsBound() {
		v.shape = rhs.shape
		v.stride = rhs.stride
		v.data = rhs.data
		v.off = rhs.off
		v.strided = rhs.strided
		return v
	}
	if !v.shape.Equal(rhs.shape) {
		exceptions.Panicf("View.Assign: shape mismatch: %v vs %v", v.shape, rhs.shape)
	}
	copyImpl(v, rhs)
	return v
}

// Copy copies the data of rhs element-wise. The shapes must match; copying
// a view into itself is a no-op; overlapping operands are defused through a
// temporary.
func (v *View[T]) Copy(rhs *View[T]) {
	if v == rhs {
		return
	}
	if !v.shape.Equal(rhs.shape) {
		exceptions.Panicf("View.Copy: shape mismatch: %v vs %v", v.shape, rhs.shape)
	}
	copyImpl(v, rhs)
}

// CopyFrom copies src into dst element-wise, converting element types.
// Cross-type copies always require matching shapes and never rebind.
func CopyFrom[T, U Scalar](dst *View[T], src *View[U]) {
	if !dst.shape.Equal(src.shape) {
		exceptions.Panicf("CopyFrom: shape mismatch: %v vs %v", dst.shape, src.shape)
	}
	copyImpl(dst, src)
}

func copyImpl[T, U Scalar](dst *View[T], src *View[U]) {
	if !arraysOverlap(dst, src) {
		copyArrayData(src.Traverse(), dst.Traverse())
		return
	}
	// Different views into the same data: copy through intermediate
	// memory so source elements are not overwritten while still needed.
	klog.V(2).Infof("marray: overlapping copy operands, staging %d elements", src.ElementCount())
	tmp := FromView[T](src)
	copyArrayData(tmp.Traverse(), dst.Traverse())
	tmp.Free()
}

// SwapData exchanges the elements of two views of equal shape. Swapping a
// view with itself is a no-op.
func (v *View[T]) SwapData(rhs *View[T]) {
	if v == rhs {
		return
	}
	if !v.shape.Equal(rhs.shape) {
		exceptions.Panicf("View.SwapData: shape mismatch: %v vs %v", v.shape, rhs.shape)
	}
	if !arraysOverlap(v, rhs) {
		swapArrayData(v.Traverse(), rhs.Traverse())
		return
	}
	klog.V(2).Infof("marray: overlapping swap operands, staging %d elements", v.ElementCount())
	tmp := FromView[T](v)
	v.Copy(rhs)
	rhs.Copy(&tmp.View)
	tmp.Free()
}

// Equal reports element-wise equality. Views of different shapes are
// simply unequal, not an error.
func (v *View[T]) Equal(rhs *View[T]) bool {
	if !v.shape.Equal(rhs.shape) {
		return false
	}
	if v.ElementCount() == 0 {
		return true
	}
	return equalArrayData(v.Traverse(), rhs.Traverse())
}

func (v *View[T]) combine(rhs *View[T], op string, f func(dst, src T) T) {
	if !v.shape.Equal(rhs.shape) {
		exceptions.Panicf("View.%s: shape mismatch: %v vs %v", op, v.shape, rhs.shape)
	}
	if !arraysOverlap(v, rhs) {
		combineArrayData(rhs.Traverse(), v.Traverse(), f)
		return
	}
	klog.V(2).Infof("marray: overlapping %s operands, staging %d elements", op, rhs.ElementCount())
	tmp := FromView[T](rhs)
	combineArrayData(tmp.Traverse(), v.Traverse(), f)
	tmp.Free()
}

// Add adds rhs element-wise in place. The shapes must match.
func (v *View[T]) Add(rhs *View[T]) *View[T] {
	v.combine(rhs, "Add", func(a, b T) T { return a + b })
	return v
}

// Sub subtracts rhs element-wise in place. The shapes must match.
func (v *View[T]) Sub(rhs *View[T]) *View[T] {
	v.combine(rhs, "Sub", func(a, b T) T { return a - b })
	return v
}

// Mul multiplies by rhs element-wise in place. The shapes must match.
func (v *View[T]) Mul(rhs *View[T]) *View[T] {
	v.combine(rhs, "Mul", func(a, b T) T { return a * b })
	return v
}

// Div divides by rhs element-wise in place. The shapes must match.
func (v *View[T]) Div(rhs *View[T]) *View[T] {
	v.combine(rhs, "Div", func(a, b T) T { return a / b })
	return v
}

// AddScalar adds x to every element in place.
func (v *View[T]) AddScalar(x T) *View[T] {
	combineScalarData(v.Traverse(), x, func(a, b T) T { return a + b })
	return v
}

// SubScalar subtracts x from every element in place.
func (v *View[T]) SubScalar(x T) *View[T] {
	combineScalarData(v.Traverse(), x, func(a, b T) T { return a - b })
	return v
}

// MulScalar multiplies every element by x in place.
func (v *View[T]) MulScalar(x T) *View[T] {
	combineScalarData(v.Traverse(), x, func(a, b T) T { return a * b })
	return v
}

// DivScalar divides every element by x in place.
func (v *View[T]) DivScalar(x T) *View[T] {
	combineScalarData(v.Traverse(), x, func(a, b T) T { return a / b })
	return v
}
