// Copyright 2026 The Vista Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package marray_test

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vista-cv/vista/marray"
)

func TestPublicAPIRoundTrip(t *testing.T) {
	a, err := marray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, marray.Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, 6, a.ElementCount())
	assert.Equal(t, 2.0, a.At(1, 0), "dimension 0 varies fastest")
	assert.Equal(t, 3.0, a.At(0, 1))

	b := marray.FromView[float32](&a.View)
	assert.Equal(t, float32(6), b.At(1, 2), "cross-type construction")

	if diff := cmp.Diff(marray.Shape{2, 3}, b.Shape()); diff != "" {
		t.Errorf("shape mismatch (-want +got):\n%s", diff)
	}
}

func TestPublicSlicingAndNorms(t *testing.T) {
	a := marray.New[float64](marray.Shape{4, 4})
	for i := 0; i < a.ElementCount(); i++ {
		a.SetIndex(i, float64(i))
	}

	col := a.Bind(1, 2)
	require.True(t, col.Shape().Equal(marray.Shape{4}))
	assert.Equal(t, a.At(1, 2), col.At(1))

	v, err := marray.FromSlice([]float64{3, -4}, marray.Shape{2})
	require.NoError(t, err)
	assert.InDelta(t, 25, v.SquaredNorm(), 1e-12)
	assert.InDelta(t, 5, v.Norm(marray.NormL2, true), 1e-12)
	assert.InDelta(t, 7, v.Norm(marray.NormL1, true), 1e-12)
	assert.InDelta(t, 4, v.Norm(marray.NormMax, true), 1e-12)
}

func TestPublicPreconditionsAreCatchable(t *testing.T) {
	a := marray.New[int](marray.Shape{3, 5})
	b := marray.New[int](marray.Shape{3, 4})

	err := exceptions.TryCatch[error](func() { a.View.Assign(&b.View) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shape mismatch")
}

func TestPublicIndexArithmetic(t *testing.T) {
	shape := marray.Shape{3, 4}
	stride := marray.DefaultStride(shape)
	assert.True(t, stride.Equal(marray.Stride{1, 3}))

	for i := 0; i < shape.NumElements(); i++ {
		c := marray.ScanOrderToCoord(i, shape)
		assert.Equal(t, i, marray.CoordToScanOrder(c, shape))
		assert.Equal(t, marray.CoordToOffset(c, stride), marray.ScanOrderToOffset(i, shape, stride))
	}
}
