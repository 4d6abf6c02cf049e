package marray

import "k8s.io/klog/v2"

// Allocator abstracts raw storage management and per-element construction
// for owning arrays. Construct may panic; the allocation helpers below then
// roll back exactly the elements already constructed before re-raising.
type Allocator[T any] interface {
	// Allocate obtains raw storage for n elements.
	Allocate(n int) []T
	// Construct initializes one element in raw storage from a value.
	Construct(p *T, v T)
	// Destroy finalizes one live element.
	Destroy(p *T)
	// Deallocate releases storage obtained from Allocate.
	Deallocate(buf []T)
}

// StdAllocator is the default Allocator, backed by the Go runtime.
type StdAllocator[T any] struct{}

// Allocate obtains zeroed storage for n elements.
func (StdAllocator[T]) Allocate(n int) []T { return make([]T, n) }

// Construct initializes one element.
func (StdAllocator[T]) Construct(p *T, v T) { *p = v }

// Destroy resets one element to its zero value.
func (StdAllocator[T]) Destroy(p *T) {
	var zero T
	*p = zero
}

// Deallocate releases storage back to the runtime (a no-op; the garbage
// collector reclaims it once unreferenced).
func (StdAllocator[T]) Deallocate([]T) {}

// rollback destroys the first constructed elements of a partially built
// buffer, releases the raw storage, and lets the original panic continue.
func rollback[T any](alloc Allocator[T], buf []T, constructed int) {
	klog.V(2).Infof("marray: constructor failed after %d of %d elements, rolling back", constructed, len(buf))
	for i := 0; i < constructed; i++ {
		alloc.Destroy(&buf[i])
	}
	alloc.Deallocate(buf)
}

// allocateFill allocates raw storage for n elements and constructs every
// element from v. If construction of element i panics, elements [0, i) are
// destroyed, the storage is released, and the panic is re-raised unchanged.
func allocateFill[T Scalar](alloc Allocator[T], n int, v T) []T {
	buf := alloc.Allocate(n)
	constructed := 0
	defer func() {
		if r := recover(); r != nil {
			rollback(alloc, buf, constructed)
			panic(r)
		}
	}()
	for ; constructed < n; constructed++ {
		alloc.Construct(&buf[constructed], v)
	}
	return buf
}

// allocateFromSlice allocates raw storage and copy-constructs each element
// from a flat source buffer in scan order, with the same rollback
// guarantee as allocateFill.
func allocateFromSlice[T Scalar](alloc Allocator[T], src []T) []T {
	buf := alloc.Allocate(len(src))
	constructed := 0
	defer func() {
		if r := recover(); r != nil {
			rollback(alloc, buf, constructed)
			panic(r)
		}
	}()
	for ; constructed < len(src); constructed++ {
		alloc.Construct(&buf[constructed], src[constructed])
	}
	return buf
}

// allocateFromView allocates raw storage for the elements of src and
// copy-constructs them in scan order through the dimension-recursive
// uninitialized-copy primitive, converting element types. Same rollback
// guarantee as allocateFill.
func allocateFromView[T, U Scalar](alloc Allocator[T], src *View[U]) []T {
	buf := alloc.Allocate(src.ElementCount())
	constructed := 0
	defer func() {
		if r := recover(); r != nil {
			rollback(alloc, buf, constructed)
			panic(r)
		}
	}()
	if len(buf) > 0 {
		uninitializedCopyArrayData(src.Traverse(), alloc, buf, &constructed)
	}
	return buf
}
