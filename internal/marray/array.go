package marray

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Array is the owning container built on View. It always owns its whole
// buffer in canonical (unstrided, column-major) layout; slicing an Array
// produces plain Views into it. Reassignment or reshaping to a different
// shape reallocates and invalidates every view and iterator that depended
// on the old buffer.
type Array[T Scalar] struct {
	View[T]
	alloc Allocator[T]
}

func newArray[T Scalar](shape Shape, data []T, alloc Allocator[T]) *Array[T] {
	sh, st := canonicalLayout(shape)
	return &Array[T]{
		View:  View[T]{shape: sh, stride: st, data: data},
		alloc: alloc,
	}
}

func mustValidate(shape Shape, op string) {
	if err := shape.Validate(); err != nil {
		exceptions.Panicf("%s: %v", op, err)
	}
}

// New creates an array of the given shape with zero-initialized elements,
// using the standard allocator.
func New[T Scalar](shape Shape) *Array[T] {
	return NewAlloc[T](shape, StdAllocator[T]{})
}

// NewAlloc is New with an explicit allocator.
func NewAlloc[T Scalar](shape Shape, alloc Allocator[T]) *Array[T] {
	var zero T
	return FullAlloc(shape, zero, alloc)
}

// Full creates an array of the given shape with every element constructed
// from v.
//
// Example:
//
//	a := marray.Full(marray.Shape{3, 4}, float32(1.5))
func Full[T Scalar](shape Shape, v T) *Array[T] {
	return FullAlloc(shape, v, StdAllocator[T]{})
}

// FullAlloc is Full with an explicit allocator.
func FullAlloc[T Scalar](shape Shape, v T, alloc Allocator[T]) *Array[T] {
	mustValidate(shape, "Full")
	a := newArray(shape, nil, alloc)
	a.data = allocateFill(alloc, a.shape.NumElements(), v)
	klog.V(2).Infof("marray: allocated %d elements for shape %v", len(a.data), a.shape)
	return a
}

// FromSlice creates an array by copy-constructing each element, in scan
// order, from a flat source buffer.
//
// Example:
//
//	a, err := marray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, marray.Shape{2, 3})
func FromSlice[T Scalar](data []T, shape Shape) (*Array[T], error) {
	return FromSliceAlloc(data, shape, StdAllocator[T]{})
}

// FromSliceAlloc is FromSlice with an explicit allocator.
func FromSliceAlloc[T Scalar](data []T, shape Shape, alloc Allocator[T]) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "FromSlice")
	}
	a := newArray(shape, nil, alloc)
	if n := a.shape.NumElements(); n != len(data) {
		return nil, errors.Errorf("FromSlice: shape %v requires %d elements, but got %d", shape, n, len(data))
	}
	a.data = allocateFromSlice(alloc, data)
	return a, nil
}

// FromView creates an array in canonical layout by copy-constructing every
// element of src, converting element types. The source may be arbitrarily
// strided.
func FromView[T, U Scalar](src *View[U]) *Array[T] {
	return FromViewAlloc[T](src, StdAllocator[T]{})
}

// FromViewAlloc is FromView with an explicit allocator.
func FromViewAlloc[T, U Scalar](src *View[U], alloc Allocator[T]) *Array[T] {
	if !src.IsBound() {
		return &Array[T]{alloc: alloc}
	}
	a := newArray(src.shape, nil, alloc)
	a.data = allocateFromView(alloc, src)
	return a
}

// Clone returns a deep copy of the array, using the same allocator.
func (a *Array[T]) Clone() *Array[T] {
	return FromViewAlloc[T](&a.View, a.alloc)
}

// Allocator returns the array's allocator.
func (a *Array[T]) Allocator() Allocator[T] { return a.alloc }

// Assign copies src into the array. If the shapes match, only the element
// data are copied. Otherwise new storage is allocated and swapped in,
// which invalidates all views and iterators depending on the array.
func (a *Array[T]) Assign(src *View[T]) *Array[T] {
	if src == &a.View {
		return a
	}
	if a.shape.Equal(src.shape) {
		a.View.Copy(src)
		return a
	}
	t := FromViewAlloc[T](src, a.alloc)
	a.Swap(t)
	t.Free() // t now holds the old buffer
	return a
}

// Reshape changes the shape, reallocating if the shape differs, and
// zero-initializes the elements. Invalidates all dependent views and
// iterators when reallocation occurs.
func (a *Array[T]) Reshape(shape Shape) {
	var zero T
	a.ReshapeWith(shape, zero)
}

// ReshapeWith changes the shape and initializes every element with v. A
// reshape to the current shape reinitializes in place; any other shape
// allocates a fresh canonical buffer, destroys and releases the old one,
// and rebinds, invalidating all dependent views and iterators.
func (a *Array[T]) ReshapeWith(shape Shape, v T) {
	if shape.Equal(a.shape) {
		a.Init(v)
		return
	}
	mustValidate(shape, "Array.ReshapeWith")
	sh, st := canonicalLayout(shape)
	klog.V(2).Infof("marray: reshape %v -> %v, reallocating", a.shape, sh)
	// The new buffer must be fully constructed before the old one is
	// released; a failing constructor leaves the array untouched.
	buf := allocateFill(a.alloc, sh.NumElements(), v)
	a.release()
	a.shape, a.stride, a.data, a.off, a.strided = sh, st, buf, 0, false
}

// Swap exchanges the contents of two arrays in O(1): only shapes, strides,
// buffers and allocators are exchanged, no element data. Invalidates
// nothing, but dependent views now observe the other array's data.
func (a *Array[T]) Swap(other *Array[T]) {
	if a == other {
		return
	}
	a.shape, other.shape = other.shape, a.shape
	a.stride, other.stride = other.stride, a.stride
	a.data, other.data = other.data, a.data
	a.off, other.off = other.off, a.off
	a.strided, other.strided = other.strided, a.strided
	a.alloc, other.alloc = other.alloc, a.alloc
}

// release destroys every live element and returns the storage to the
// allocator. No-op when the array holds no buffer.
func (a *Array[T]) release() {
	if a.data == nil {
		return
	}
	for i := range a.data {
		a.alloc.Destroy(&a.data[i])
	}
	a.alloc.Deallocate(a.data)
	a.data = nil
}

// Free destroys every element and releases the storage. Afterwards the
// array is unbound, indistinguishable from one that never allocated.
func (a *Array[T]) Free() {
	if a.data == nil {
		return
	}
	klog.V(2).Infof("marray: releasing %d elements", len(a.data))
	a.release()
	a.shape, a.stride, a.off, a.strided = nil, nil, 0, false
}
