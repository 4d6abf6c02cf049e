package marray

import "math"

// Traverser walks a strided array one dimension at a time. It points at the
// first element of a sub-array at its current dimension; Begin descends one
// dimension, Next steps along the current one. Views hand out traversers
// positioned at the outermost dimension.
type Traverser[T Scalar] struct {
	data   []T
	off    int
	shape  Shape
	stride Stride
	dim    int
}

// Begin returns a traverser descended into the sub-array one dimension
// further in.
func (t Traverser[T]) Begin() Traverser[T] {
	t.dim--
	return t
}

// Next returns a traverser advanced one step along the current dimension.
func (t Traverser[T]) Next() Traverser[T] {
	t.off += t.stride[t.dim]
	return t
}

// Dim returns the traverser's current dimension.
func (t Traverser[T]) Dim() int { return t.dim }

// Len returns the extent of the current dimension.
func (t Traverser[T]) Len() int { return t.shape[t.dim] }

// Get returns the element the traverser points at.
func (t Traverser[T]) Get() T { return t.data[t.off] }

// Set overwrites the element the traverser points at.
func (t Traverser[T]) Set(v T) { t.data[t.off] = v }

// Ref returns a pointer to the element the traverser points at.
func (t Traverser[T]) Ref() *T { return &t.data[t.off] }

// The routines below perform all element-wise work as a recursive descent
// over the dimension index: dimension 0 is the scalar base-case loop over a
// single (possibly strided) run, every outer dimension iterates its extent
// and recurses into the next inner one. Binary routines assume the operands
// already have equal shapes; callers enforce that.

func initArrayData[T Scalar](d Traverser[T], v T) {
	if d.dim == 0 {
		off, step := d.off, d.stride[0]
		for i := 0; i < d.shape[0]; i++ {
			d.data[off] = v
			off += step
		}
		return
	}
	for i := 0; i < d.shape[d.dim]; i++ {
		initArrayData(d.Begin(), v)
		d.off += d.stride[d.dim]
	}
}

func copyArrayData[T, U Scalar](s Traverser[U], d Traverser[T]) {
	if d.dim == 0 {
		soff, doff := s.off, d.off
		sstep, dstep := s.stride[0], d.stride[0]
		for i := 0; i < d.shape[0]; i++ {
			d.data[doff] = T(s.data[soff])
			soff += sstep
			doff += dstep
		}
		return
	}
	for i := 0; i < d.shape[d.dim]; i++ {
		copyArrayData(s.Begin(), d.Begin())
		s.off += s.stride[s.dim]
		d.off += d.stride[d.dim]
	}
}

// combineArrayData folds rhs into dst element-wise through f, the shared
// engine behind the compound assignments.
func combineArrayData[T Scalar](s, d Traverser[T], f func(dst, src T) T) {
	if d.dim == 0 {
		soff, doff := s.off, d.off
		sstep, dstep := s.stride[0], d.stride[0]
		for i := 0; i < d.shape[0]; i++ {
			d.data[doff] = f(d.data[doff], s.data[soff])
			soff += sstep
			doff += dstep
		}
		return
	}
	for i := 0; i < d.shape[d.dim]; i++ {
		combineArrayData(s.Begin(), d.Begin(), f)
		s.off += s.stride[s.dim]
		d.off += d.stride[d.dim]
	}
}

func combineScalarData[T Scalar](d Traverser[T], v T, f func(dst, src T) T) {
	if d.dim == 0 {
		off, step := d.off, d.stride[0]
		for i := 0; i < d.shape[0]; i++ {
			d.data[off] = f(d.data[off], v)
			off += step
		}
		return
	}
	for i := 0; i < d.shape[d.dim]; i++ {
		combineScalarData(d.Begin(), v, f)
		d.off += d.stride[d.dim]
	}
}

// uninitializedCopyArrayData copy-constructs the elements of a canonical
// destination buffer, in scan order, from a source traversal. *n tracks how
// many destination elements have been constructed so that a failing
// constructor can be rolled back exactly.
func uninitializedCopyArrayData[T, U Scalar](s Traverser[U], alloc Allocator[T], dst []T, n *int) {
	if s.dim == 0 {
		off, step := s.off, s.stride[0]
		for i := 0; i < s.shape[0]; i++ {
			alloc.Construct(&dst[*n], T(s.data[off]))
			*n++
			off += step
		}
		return
	}
	for i := 0; i < s.shape[s.dim]; i++ {
		uninitializedCopyArrayData(s.Begin(), alloc, dst, n)
		s.off += s.stride[s.dim]
	}
}

// equalArrayData short-circuits false across all nesting levels on the
// first mismatch.
func equalArrayData[T Scalar](s, d Traverser[T]) bool {
	if d.dim == 0 {
		soff, doff := s.off, d.off
		sstep, dstep := s.stride[0], d.stride[0]
		for i := 0; i < d.shape[0]; i++ {
			if s.data[soff] != d.data[doff] {
				return false
			}
			soff += sstep
			doff += dstep
		}
		return true
	}
	for i := 0; i < d.shape[d.dim]; i++ {
		if !equalArrayData(s.Begin(), d.Begin()) {
			return false
		}
		s.off += s.stride[s.dim]
		d.off += d.stride[d.dim]
	}
	return true
}

func swapArrayData[T Scalar](s, d Traverser[T]) {
	if d.dim == 0 {
		soff, doff := s.off, d.off
		sstep, dstep := s.stride[0], d.stride[0]
		for i := 0; i < d.shape[0]; i++ {
			s.data[soff], d.data[doff] = d.data[doff], s.data[soff]
			soff += sstep
			doff += dstep
		}
		return
	}
	for i := 0; i < d.shape[d.dim]; i++ {
		swapArrayData(s.Begin(), d.Begin())
		s.off += s.stride[s.dim]
		d.off += d.stride[d.dim]
	}
}

// elemNorm is the per-element norm folded by the reductions.
func elemNorm[T Scalar](v T) float64 {
	return math.Abs(float64(v))
}

func normMaxArrayData[T Scalar](s Traverser[T], res *float64) {
	if s.dim == 0 {
		off, step := s.off, s.stride[0]
		for i := 0; i < s.shape[0]; i++ {
			if v := elemNorm(s.data[off]); *res < v {
				*res = v
			}
			off += step
		}
		return
	}
	for i := 0; i < s.shape[s.dim]; i++ {
		normMaxArrayData(s.Begin(), res)
		s.off += s.stride[s.dim]
	}
}

func sumOverArrayData[T Scalar](s Traverser[T], f func(T) float64, res *float64) {
	if s.dim == 0 {
		off, step := s.off, s.stride[0]
		for i := 0; i < s.shape[0]; i++ {
			*res += f(s.data[off])
			off += step
		}
		return
	}
	for i := 0; i < s.shape[s.dim]; i++ {
		sumOverArrayData(s.Begin(), f, res)
		s.off += s.stride[s.dim]
	}
}
