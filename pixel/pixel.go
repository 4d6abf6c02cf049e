// Copyright 2026 The Vista Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package pixel provides fixed-size pixel value types for image views.
//
// RGB is the value type the imageview package reinterprets interleaved
// 3-channel arrays into. Its memory layout is exactly three consecutive
// channel values, so a buffer of scalars with an innermost dimension of
// size 3 and a buffer of RGB values are layout compatible.
package pixel

import (
	"math"

	"github.com/vista-cv/vista/marray"
)

// RGB is a three-channel pixel value.
type RGB[T marray.Scalar] struct {
	R, G, B T
}

// Add returns the channel-wise sum of two pixels.
func (p RGB[T]) Add(q RGB[T]) RGB[T] {
	return RGB[T]{p.R + q.R, p.G + q.G, p.B + q.B}
}

// Sub returns the channel-wise difference of two pixels.
func (p RGB[T]) Sub(q RGB[T]) RGB[T] {
	return RGB[T]{p.R - q.R, p.G - q.G, p.B - q.B}
}

// Scale returns the pixel with every channel multiplied by s.
func (p RGB[T]) Scale(s T) RGB[T] {
	return RGB[T]{p.R * s, p.G * s, p.B * s}
}

// SquaredNorm returns the sum of the squared channel values.
func (p RGB[T]) SquaredNorm() float64 {
	r, g, b := float64(p.R), float64(p.G), float64(p.B)
	return r*r + g*g + b*b
}

// Norm returns the Euclidean norm of the pixel.
func (p RGB[T]) Norm() float64 {
	return math.Sqrt(p.SquaredNorm())
}

// Luminance returns the Rec. 601 luma of the pixel.
func (p RGB[T]) Luminance() float64 {
	return 0.299*float64(p.R) + 0.587*float64(p.G) + 0.114*float64(p.B)
}
