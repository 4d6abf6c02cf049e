// Copyright 2026 The Vista Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package marray provides strided multi-dimensional arrays for the Vista
// library: non-owning views over strided element buffers, and owning
// arrays built on top of them.
//
// # Overview
//
// The two central types are:
//   - View[T]: a non-owning (shape, stride, buffer) window. Slicing
//     operations (Bind*, Subarray, StrideArray, PermuteDimensions,
//     Transpose) derive new views in O(1) without touching element data.
//   - Array[T]: an owning container embedding a View, with allocator-driven
//     storage management and canonical (unstrided, column-major) layout.
//
// Dimension 0 is the fastest-varying dimension: the canonical stride is
// stride[0] = 1, stride[i] = stride[i-1] * shape[i-1].
//
// # Basic Usage
//
//	import "github.com/vista-cv/vista/marray"
//
//	func main() {
//	    // A 40x30x20 volume, zero initialized.
//	    a := marray.New[float64](marray.Shape{40, 30, 20})
//
//	    // A 1-D view with y fixed to 12 and z fixed to 10.
//	    row := a.BindOuter(12, 10)
//	    row.Init(1.0)
//
//	    // Views into the same buffer may alias freely: mutating
//	    // operations detect overlap and stage through a temporary.
//	    m := marray.Full(marray.Shape{3, 3}, 2.0)
//	    m.View.Copy(m.Transpose())
//	}
//
// # Aliasing
//
// Every mutating cross-view operation (Assign, Copy, Add, Sub, Mul, Div,
// SwapData) runs a conservative address-range overlap guard. Overlapping
// operands are defused by materializing the source into a temporary owning
// array first, so self-overlapping assignments are always correct.
//
// # Error handling
//
// Invariant violations (shape mismatch, invalid permutation, out-of-range
// bound dimension, unknown norm type) raise a message-carrying panic via
// github.com/gomlx/exceptions and can be recovered with
// exceptions.TryCatch. Constructors whose failure is expected in normal
// use (FromSlice, NewView) return errors instead. Equality comparison
// treats a shape mismatch as "not equal", never as a failure.
//
// # Concurrency
//
// Arrays and views carry no internal synchronization. Buffers shared
// between goroutines require external locking; within one goroutine,
// aliased views are safe as described above.
package marray
