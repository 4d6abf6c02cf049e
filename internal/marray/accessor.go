package marray

// Accessor adapts element reads and writes for external algorithms that
// consume traversers: the value seen by an algorithm can differ from the
// stored element (unit conversion, promotion, component selection).
type Accessor[T Scalar] interface {
	Get(p *T) T
	Set(p *T, v T)
}

// ValueAccessor is the identity accessor.
type ValueAccessor[T Scalar] struct{}

// Get returns the stored element.
func (ValueAccessor[T]) Get(p *T) T { return *p }

// Set overwrites the stored element.
func (ValueAccessor[T]) Set(p *T, v T) { *p = v }

// Argument-object factories. They package a view into the
// (traverser, shape[, accessor]) tuples consumed by external
// dimension-recursive algorithms, with and without an explicit accessor.
// Src* factories describe an operand that is read, Dest* one that is
// written; the distinction documents intent at the call site.

// SrcRange packages a source view as (traverser, shape, accessor).
func SrcRange[T Scalar](v *View[T]) (Traverser[T], Shape, Accessor[T]) {
	return v.Traverse(), v.Shape(), ValueAccessor[T]{}
}

// SrcRangeWith is SrcRange with an explicit accessor.
func SrcRangeWith[T Scalar](v *View[T], a Accessor[T]) (Traverser[T], Shape, Accessor[T]) {
	return v.Traverse(), v.Shape(), a
}

// Src packages a source view as (traverser, accessor).
func Src[T Scalar](v *View[T]) (Traverser[T], Accessor[T]) {
	return v.Traverse(), ValueAccessor[T]{}
}

// SrcWith is Src with an explicit accessor.
func SrcWith[T Scalar](v *View[T], a Accessor[T]) (Traverser[T], Accessor[T]) {
	return v.Traverse(), a
}

// DestRange packages a destination view as (traverser, shape, accessor).
func DestRange[T Scalar](v *View[T]) (Traverser[T], Shape, Accessor[T]) {
	return v.Traverse(), v.Shape(), ValueAccessor[T]{}
}

// DestRangeWith is DestRange with an explicit accessor.
func DestRangeWith[T Scalar](v *View[T], a Accessor[T]) (Traverser[T], Shape, Accessor[T]) {
	return v.Traverse(), v.Shape(), a
}

// Dest packages a destination view as (traverser, accessor).
func Dest[T Scalar](v *View[T]) (Traverser[T], Accessor[T]) {
	return v.Traverse(), ValueAccessor[T]{}
}

// DestWith is Dest with an explicit accessor.
func DestWith[T Scalar](v *View[T], a Accessor[T]) (Traverser[T], Accessor[T]) {
	return v.Traverse(), a
}
