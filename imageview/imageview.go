// Copyright 2026 The Vista Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package imageview adapts multi-dimensional arrays to a flat 2-D
// image-like interface, including a zero-copy reinterpretation of an
// interleaved 3-channel array as an image of pixel.RGB values.
package imageview

import (
	"unsafe"

	"github.com/gomlx/exceptions"

	"github.com/vista-cv/vista/marray"
	"github.com/vista-cv/vista/pixel"
)

// ImageView is a non-owning 2-D window over a dense pixel buffer, indexed
// as (x, y) with rows of length Width stored consecutively.
type ImageView[T any] struct {
	width  int
	height int
	data   []T
}

// New wraps a dense buffer of width*height pixels as an image view.
func New[T any](data []T, width, height int) *ImageView[T] {
	if n := width * height; n > len(data) {
		exceptions.Panicf("imageview.New: %dx%d image requires %d pixels, buffer has %d",
			width, height, n, len(data))
	}
	return &ImageView[T]{width: width, height: height, data: data}
}

// Width returns the image width in pixels.
func (iv *ImageView[T]) Width() int { return iv.width }

// Height returns the image height in pixels.
func (iv *ImageView[T]) Height() int { return iv.height }

// At returns the pixel at (x, y).
func (iv *ImageView[T]) At(x, y int) T { return iv.data[y*iv.width+x] }

// Set overwrites the pixel at (x, y).
func (iv *ImageView[T]) Set(x, y int, v T) { iv.data[y*iv.width+x] = v }

// Ptr returns a pointer to the pixel at (x, y).
func (iv *ImageView[T]) Ptr(x, y int) *T { return &iv.data[y*iv.width+x] }

// Row returns the pixels of row y as a dense slice.
func (iv *ImageView[T]) Row(y int) []T {
	return iv.data[y*iv.width : (y+1)*iv.width]
}

// Data returns the underlying dense pixel buffer.
func (iv *ImageView[T]) Data() []T { return iv.data }

// FromMatrix wraps an unstrided rank-2 view as an image, with dimension 0
// as x and dimension 1 as y. The image shares the view's buffer.
func FromMatrix[T marray.Scalar](v *marray.View[T]) *ImageView[T] {
	if v.Rank() != 2 {
		exceptions.Panicf("imageview.FromMatrix: requires rank 2, got %d", v.Rank())
	}
	if !v.IsUnstrided() {
		exceptions.Panicf("imageview.FromMatrix: requires an unstrided view")
	}
	return New(v.Data(), v.Dim(0), v.Dim(1))
}

// FromVolume wraps a rank-3 array as an image by flattening the two
// innermost dimensions into single rows: the image is
// (shape[0]*shape[1]) x shape[2]. The image shares the array's buffer.
func FromVolume[T marray.Scalar](a *marray.Array[T]) *ImageView[T] {
	if a.Rank() != 3 {
		exceptions.Panicf("imageview.FromVolume: requires rank 3, got %d", a.Rank())
	}
	return New(a.Data(), a.Dim(0)*a.Dim(1), a.Dim(2))
}

// RGBFromVolume reinterprets a rank-3 array whose innermost dimension has
// size exactly 3 as a shape[1] x shape[2] image of RGB pixels. The
// reinterpretation is zero-copy: pixel writes land in the array.
func RGBFromVolume[T marray.Scalar](a *marray.Array[T]) *ImageView[pixel.RGB[T]] {
	if a.Rank() != 3 {
		exceptions.Panicf("imageview.RGBFromVolume: requires rank 3, got %d", a.Rank())
	}
	if a.Dim(0) != 3 {
		exceptions.Panicf("imageview.RGBFromVolume: innermost dimension must have size 3, got %d", a.Dim(0))
	}
	data := a.Data()
	// RGB[T] is three consecutive T channels, so the scalar buffer and
	// the pixel buffer are layout compatible.
	pixels := unsafe.Slice((*pixel.RGB[T])(unsafe.Pointer(unsafe.SliceData(data))), len(data)/3)
	return New(pixels, a.Dim(1), a.Dim(2))
}
