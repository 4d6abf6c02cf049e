package marray

import (
	"fmt"

	"github.com/pkg/errors"
)

// Scalar is a constraint for supported array element types.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Shape represents the per-dimension extents of an array.
// Dimension 0 is the fastest-varying dimension.
type Shape []int

// NumElements returns the total number of elements for the shape.
// An empty shape describes a scalar and has one element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every extent is non-negative.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return errors.Errorf("invalid extent at dimension %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

func (s Shape) String() string {
	return fmt.Sprintf("%v", []int(s))
}

// Stride gives, per dimension, the element-address delta between two
// consecutive indices along that dimension.
type Stride []int

// Equal checks if two strides are equal.
func (st Stride) Equal(other Stride) bool {
	if len(st) != len(other) {
		return false
	}
	for i := range st {
		if st[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the stride.
func (st Stride) Clone() Stride {
	clone := make(Stride, len(st))
	copy(clone, st)
	return clone
}

// Coord is a full per-dimension coordinate of a single element.
type Coord []int

// Dot returns the dot product of the coordinate with a stride,
// i.e. the element offset of the coordinate in a strided buffer.
func (c Coord) Dot(st Stride) int {
	off := 0
	for d := range c {
		off += c[d] * st[d]
	}
	return off
}

// Equal checks if two coordinates are equal.
func (c Coord) Equal(other Coord) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the coordinate.
func (c Coord) Clone() Coord {
	clone := make(Coord, len(c))
	copy(clone, c)
	return clone
}

// DefaultStride computes the canonical (gapless, column-major) stride for
// a shape: stride[0] = 1, stride[i] = stride[i-1] * shape[i-1].
func DefaultStride(s Shape) Stride {
	st := make(Stride, len(s))
	if len(s) == 0 {
		return st
	}
	st[0] = 1
	for i := 1; i < len(s); i++ {
		st[i] = st[i-1] * s[i-1]
	}
	return st
}

// canonicalLayout normalizes a requested shape into the shape/stride pair
// actually stored: a rank-0 request becomes the synthetic scalar layout
// with one dimension of extent 1 and stride 0.
func canonicalLayout(s Shape) (Shape, Stride) {
	if len(s) == 0 {
		return Shape{1}, Stride{0}
	}
	return s.Clone(), DefaultStride(s)
}

// CoordToOffset converts a coordinate into a strided element offset.
func CoordToOffset(c Coord, st Stride) int {
	return c.Dot(st)
}

// ScanOrderToOffset converts a flat scan-order index (dimension 0 varying
// fastest) into a strided element offset, without materializing the
// intermediate coordinate. The index is decomposed mixed-radix over the
// shape; the outermost dimension is the non-dividing base case.
func ScanOrderToOffset(d int, s Shape, st Stride) int {
	if len(s) == 0 {
		return 0
	}
	off := 0
	for k := 0; k < len(s)-1; k++ {
		off += st[k] * (d % s[k])
		d /= s[k]
	}
	return off + st[len(s)-1]*d
}

// ScanOrderToCoord converts a flat scan-order index into a coordinate.
func ScanOrderToCoord(d int, s Shape) Coord {
	c := make(Coord, len(s))
	if len(s) == 0 {
		return c
	}
	for k := 0; k < len(s)-1; k++ {
		c[k] = d % s[k]
		d /= s[k]
	}
	c[len(s)-1] = d
	return c
}

// CoordToScanOrder converts a coordinate into a flat scan-order index.
// Inverse of ScanOrderToCoord for a fixed shape.
func CoordToScanOrder(c Coord, s Shape) int {
	if len(s) == 0 {
		return 0
	}
	d := c[len(s)-1]
	for k := len(s) - 2; k >= 0; k-- {
		d = d*s[k] + c[k]
	}
	return d
}
