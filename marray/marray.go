// Copyright 2026 The Vista Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package marray

import (
	"github.com/vista-cv/vista/internal/marray"
)

// Type aliases for the public API

// Scalar is the constraint for supported array element types: the signed
// and unsigned integer types and the floating-point types.
type Scalar = marray.Scalar

// Shape represents the per-dimension extents of an array. Dimension 0 is
// the fastest-varying (contiguous) dimension.
type Shape = marray.Shape

// Stride gives, per dimension, the element-address delta between two
// consecutive indices along that dimension.
type Stride = marray.Stride

// Coord is a full per-dimension coordinate of a single element.
type Coord = marray.Coord

// View is a non-owning window into a strided element buffer.
//
// Example:
//
//	data := make([]float32, 12)
//	v, err := marray.NewView(marray.Shape{3, 4}, data)
type View[T Scalar] = marray.View[T]

// Array is the owning container built on View, with allocator-driven
// storage in canonical (unstrided) layout.
type Array[T Scalar] = marray.Array[T]

// Allocator abstracts raw storage management and per-element construction
// for owning arrays.
type Allocator[T any] = marray.Allocator[T]

// StdAllocator is the default Allocator, backed by the Go runtime.
type StdAllocator[T any] = marray.StdAllocator[T]

// Traverser walks a strided array one dimension at a time; external
// dimension-recursive algorithms consume it via the Src/Dest factories.
type Traverser[T Scalar] = marray.Traverser[T]

// Accessor adapts element reads and writes for external algorithms.
type Accessor[T Scalar] = marray.Accessor[T]

// ValueAccessor is the identity accessor.
type ValueAccessor[T Scalar] = marray.ValueAccessor[T]

// Norm types accepted by View.Norm.
const (
	NormMax = marray.NormMax
	NormL1  = marray.NormL1
	NormL2  = marray.NormL2
)

// Stride/index arithmetic

// DefaultStride computes the canonical (gapless, column-major) stride for
// a shape.
func DefaultStride(s Shape) Stride { return marray.DefaultStride(s) }

// CoordToOffset converts a coordinate into a strided element offset.
func CoordToOffset(c Coord, st Stride) int { return marray.CoordToOffset(c, st) }

// ScanOrderToOffset converts a flat scan-order index into a strided
// element offset without materializing the intermediate coordinate.
func ScanOrderToOffset(d int, s Shape, st Stride) int { return marray.ScanOrderToOffset(d, s, st) }

// ScanOrderToCoord converts a flat scan-order index into a coordinate.
func ScanOrderToCoord(d int, s Shape) Coord { return marray.ScanOrderToCoord(d, s) }

// CoordToScanOrder converts a coordinate into a flat scan-order index.
func CoordToScanOrder(c Coord, s Shape) int { return marray.CoordToScanOrder(c, s) }

// View construction

// NewView binds a view with canonical layout over the prefix of data.
//
// Example:
//
//	v, err := marray.NewView(marray.Shape{3, 4}, make([]float64, 12))
func NewView[T Scalar](shape Shape, data []T) (*View[T], error) {
	return marray.NewView(shape, data)
}

// NewStridedView binds a view with an explicit stride and start offset.
// No consistency checks are performed.
func NewStridedView[T Scalar](shape Shape, stride Stride, data []T, off int) *View[T] {
	return marray.NewStridedView(shape, stride, data, off)
}

// Array construction

// New creates an array of the given shape with zero-initialized elements.
//
// Example:
//
//	a := marray.New[float32](marray.Shape{3, 4})
func New[T Scalar](shape Shape) *Array[T] { return marray.New[T](shape) }

// NewAlloc is New with an explicit allocator.
func NewAlloc[T Scalar](shape Shape, alloc Allocator[T]) *Array[T] {
	return marray.NewAlloc(shape, alloc)
}

// Full creates an array with every element constructed from v.
//
// Example:
//
//	a := marray.Full(marray.Shape{2, 3}, 3.14)
func Full[T Scalar](shape Shape, v T) *Array[T] { return marray.Full(shape, v) }

// FullAlloc is Full with an explicit allocator.
func FullAlloc[T Scalar](shape Shape, v T, alloc Allocator[T]) *Array[T] {
	return marray.FullAlloc(shape, v, alloc)
}

// FromSlice creates an array by copy-constructing each element, in scan
// order, from a flat source buffer.
//
// Example:
//
//	a, err := marray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, marray.Shape{2, 3})
func FromSlice[T Scalar](data []T, shape Shape) (*Array[T], error) {
	return marray.FromSlice(data, shape)
}

// FromSliceAlloc is FromSlice with an explicit allocator.
func FromSliceAlloc[T Scalar](data []T, shape Shape, alloc Allocator[T]) (*Array[T], error) {
	return marray.FromSliceAlloc(data, shape, alloc)
}

// FromView creates an array in canonical layout by copy-constructing every
// element of src, converting element types.
//
// Example:
//
//	ints := marray.Full(marray.Shape{2, 2}, 3)
//	floats := marray.FromView[float64](&ints.View)
func FromView[T, U Scalar](src *View[U]) *Array[T] { return marray.FromView[T](src) }

// FromViewAlloc is FromView with an explicit allocator.
func FromViewAlloc[T, U Scalar](src *View[U], alloc Allocator[T]) *Array[T] {
	return marray.FromViewAlloc[T](src, alloc)
}

// Cross-type operations

// CopyFrom copies src into dst element-wise, converting element types.
// Cross-type copies always require matching shapes and never rebind.
func CopyFrom[T, U Scalar](dst *View[T], src *View[U]) { marray.CopyFrom(dst, src) }

// Argument-object factories

// SrcRange packages a source view as (traverser, shape, accessor) for
// consumption by external dimension-recursive algorithms.
func SrcRange[T Scalar](v *View[T]) (Traverser[T], Shape, Accessor[T]) {
	return marray.SrcRange(v)
}

// SrcRangeWith is SrcRange with an explicit accessor.
func SrcRangeWith[T Scalar](v *View[T], a Accessor[T]) (Traverser[T], Shape, Accessor[T]) {
	return marray.SrcRangeWith(v, a)
}

// Src packages a source view as (traverser, accessor).
func Src[T Scalar](v *View[T]) (Traverser[T], Accessor[T]) { return marray.Src(v) }

// SrcWith is Src with an explicit accessor.
func SrcWith[T Scalar](v *View[T], a Accessor[T]) (Traverser[T], Accessor[T]) {
	return marray.SrcWith(v, a)
}

// DestRange packages a destination view as (traverser, shape, accessor).
func DestRange[T Scalar](v *View[T]) (Traverser[T], Shape, Accessor[T]) {
	return marray.DestRange(v)
}

// DestRangeWith is DestRange with an explicit accessor.
func DestRangeWith[T Scalar](v *View[T], a Accessor[T]) (Traverser[T], Shape, Accessor[T]) {
	return marray.DestRangeWith(v, a)
}

// Dest packages a destination view as (traverser, accessor).
func Dest[T Scalar](v *View[T]) (Traverser[T], Accessor[T]) { return marray.Dest(v) }

// DestWith is Dest with an explicit accessor.
func DestWith[T Scalar](v *View[T], a Accessor[T]) (Traverser[T], Accessor[T]) {
	return marray.DestWith(v, a)
}
