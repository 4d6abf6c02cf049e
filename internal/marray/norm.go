package marray

import (
	"math"

	"github.com/gomlx/exceptions"
)

// Norm types accepted by View.Norm.
const (
	NormMax = 0 // maximum norm: max of per-element absolute values
	NormL1  = 1 // Manhattan norm: sum of per-element absolute values
	NormL2  = 2 // Euclidean norm
)

// Interchangeable summation functors for the sum-over reduction.

func l1Functor[T Scalar]() func(T) float64 {
	return func(v T) float64 { return elemNorm(v) }
}

func l2Functor[T Scalar]() func(T) float64 {
	return func(v T) float64 {
		x := float64(v)
		return x * x
	}
}

func scaledL2Functor[T Scalar](scale float64) func(T) float64 {
	return func(v T) float64 {
		x := float64(v) / scale
		return x * x
	}
}

// SquaredNorm returns the sum of squares of the elements.
func (v *View[T]) SquaredNorm() float64 {
	res := 0.0
	if v.ElementCount() > 0 {
		sumOverArrayData(v.Traverse(), l2Functor[T](), &res)
	}
	return res
}

// Norm computes a norm of the array, selected by normType:
//
//   - NormMax: maximum of the per-element absolute values;
//   - NormL1: sum of the per-element absolute values;
//   - NormL2 with useSquaredNorm: sqrt(SquaredNorm());
//   - NormL2 without useSquaredNorm: a two-pass algorithm that rescales by
//     the maximum norm before squaring, avoiding overflow and underflow for
//     extreme magnitudes at the cost of traversing the data twice.
//
// useSquaredNorm has no effect for the other norm types. Any other
// normType is a precondition violation.
func (v *View[T]) Norm(normType int, useSquaredNorm bool) float64 {
	if v.ElementCount() == 0 {
		if normType < NormMax || normType > NormL2 {
			exceptions.Panicf("View.Norm: unknown norm type %d", normType)
		}
		return 0
	}
	switch normType {
	case NormMax:
		res := 0.0
		normMaxArrayData(v.Traverse(), &res)
		return res
	case NormL1:
		res := 0.0
		sumOverArrayData(v.Traverse(), l1Functor[T](), &res)
		return res
	case NormL2:
		if useSquaredNorm {
			return math.Sqrt(v.SquaredNorm())
		}
		max := 0.0
		normMaxArrayData(v.Traverse(), &max)
		if max == 0 {
			return 0
		}
		res := 0.0
		sumOverArrayData(v.Traverse(), scaledL2Functor[T](max), &res)
		return math.Sqrt(res) * max
	default:
		exceptions.Panicf("View.Norm: unknown norm type %d", normType)
		return 0 // unreachable
	}
}
