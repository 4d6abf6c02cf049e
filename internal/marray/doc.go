// Package marray implements the core strided multi-dimensional array types
// for the Vista library: non-owning views over strided buffers, owning
// arrays with allocator-driven storage, dimension-recursive traversal
// primitives, and scan-order index arithmetic.
//
// Dimension 0 is the fastest-varying (contiguous) dimension; the canonical
// layout is column-major. All mutating cross-view operations run a
// conservative overlap guard and fall back to a copy through a temporary
// array when the operands may alias.
package marray
