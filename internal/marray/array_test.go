package marray

import (
	"testing"
)

// countingAlloc tracks outstanding allocations and live elements, and can
// be told to fail on the n-th construction.
type countingAlloc struct {
	std         StdAllocator[float64]
	allocations *int
	constructed *int
	failAt      int // 1-based construction call that panics; 0 disables
	calls       *int
}

type constructionFailure struct{ call int }

func newCountingAlloc(failAt int) countingAlloc {
	return countingAlloc{
		allocations: new(int),
		constructed: new(int),
		calls:       new(int),
		failAt:      failAt,
	}
}

func (c countingAlloc) Allocate(n int) []float64 {
	*c.allocations++
	return c.std.Allocate(n)
}

func (c countingAlloc) Construct(p *float64, v float64) {
	*c.calls++
	if c.failAt > 0 && *c.calls == c.failAt {
		panic(constructionFailure{call: *c.calls})
	}
	c.std.Construct(p, v)
	*c.constructed++
}

func (c countingAlloc) Destroy(p *float64) {
	c.std.Destroy(p)
	*c.constructed--
}

func (c countingAlloc) Deallocate(buf []float64) {
	*c.allocations--
	c.std.Deallocate(buf)
}

func TestArrayConstruction(t *testing.T) {
	a := New[int](Shape{2, 3})
	assertInt(t, 6, a.ElementCount(), "element count")
	assertInt(t, 0, a.At(1, 2), "zero initialized")
	assertTrue(t, a.IsUnstrided(), "arrays always use the canonical layout")
	assertTrue(t, a.Strides().Equal(Stride{1, 2}), "canonical stride")

	f := Full(Shape{2, 2}, 9)
	assertInt(t, 9, f.At(1, 1), "fill value")

	s, err := FromSlice([]int{1, 2, 3, 4, 5, 6}, Shape{3, 2})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	assertInt(t, 1, s.At(0, 0), "scan order: dimension 0 fastest")
	assertInt(t, 2, s.At(1, 0), "scan order element 1")
	assertInt(t, 4, s.At(0, 1), "scan order element 3")

	if _, err := FromSlice([]int{1, 2, 3}, Shape{2, 2}); err == nil {
		t.Error("expected error for length mismatch")
	}
}

func TestArrayScalarShape(t *testing.T) {
	a := Full(Shape{}, 3)
	assertInt(t, 1, a.ElementCount(), "rank-0 arrays hold a single element")
	assertInt(t, 3, a.At(0), "scalar value")
	assertInt(t, 0, a.Stride(0), "synthetic dimension has stride 0")
}

func TestFromViewStrided(t *testing.T) {
	a := vol(t)
	sub := a.Subarray(Coord{1, 0, 0}, Coord{3, 2, 2})
	b := FromView[int](sub)
	assertTrue(t, b.IsUnstrided(), "FromView produces canonical layout")
	assertTrue(t, b.Shape().Equal(Shape{2, 2, 2}), "FromView keeps the shape")
	assertInt(t, sub.At(1, 1, 1), b.At(1, 1, 1), "FromView copies through strides")

	// Cross element type.
	f := FromView[float64](sub)
	assertFloat(t, float64(sub.At(0, 1, 0)), f.At(0, 1, 0), 0, "cross-type construction converts")
}

func TestArrayAssignSameShape(t *testing.T) {
	a := Full(Shape{2, 3}, 1)
	before := a.Data()
	b := Full(Shape{2, 3}, 7)
	a.Assign(&b.View)
	assertInt(t, 7, a.At(0, 0), "elements copied")
	assertTrue(t, &before[0] == &a.Data()[0], "same-shape assignment copies in place")
}

func TestArrayAssignReallocates(t *testing.T) {
	a := Full(Shape{2, 3}, 1)
	old := a.Data()
	b := Full(Shape{4}, 7)
	a.Assign(&b.View)
	assertTrue(t, a.Shape().Equal(Shape{4}), "assignment adopts the new shape")
	assertInt(t, 7, a.At(2), "elements copied")
	assertTrue(t, &old[0] != &a.Data()[0], "different-shape assignment reallocates, invalidating dependents")
}

func TestReshape(t *testing.T) {
	a := Full(Shape{2, 3}, 5)
	a.ReshapeWith(Shape{4, 2}, 1)
	assertTrue(t, a.Shape().Equal(Shape{4, 2}), "reshape adopts the new shape")
	assertInt(t, 8, a.ElementCount(), "element count matches the new shape")
	for i := 0; i < a.ElementCount(); i++ {
		assertInt(t, 1, a.AtIndex(i), "all elements take the initial value")
	}

	// Same shape: reinitializes in place instead of reallocating.
	buf := a.Data()
	a.Set(42, 0, 0)
	a.ReshapeWith(Shape{4, 2}, 2)
	assertInt(t, 2, a.At(0, 0), "same-shape reshape resets every element")
	assertTrue(t, &buf[0] == &a.Data()[0], "same-shape reshape keeps the buffer")

	a.Reshape(Shape{3})
	assertInt(t, 0, a.At(1), "Reshape zero-initializes")
}

func TestArraySwap(t *testing.T) {
	a := Full(Shape{2, 2}, 1)
	b := Full(Shape{3}, 2)
	ad, bd := a.Data(), b.Data()
	a.Swap(b)
	assertTrue(t, a.Shape().Equal(Shape{3}), "shapes exchanged")
	assertTrue(t, b.Shape().Equal(Shape{2, 2}), "shapes exchanged")
	assertTrue(t, &a.Data()[0] == &bd[0] && &b.Data()[0] == &ad[0], "buffers exchanged without copying")
}

func TestArrayFree(t *testing.T) {
	a := Full(Shape{2, 2}, 1)
	a.Free()
	assertTrue(t, !a.IsBound(), "freed array is unbound")
	assertInt(t, 0, a.ElementCount(), "freed array has no elements")
	a.Free() // idempotent
}

func TestAllocatorAccounting(t *testing.T) {
	alloc := newCountingAlloc(0)
	a := FullAlloc(Shape{3, 3}, 1.0, alloc)
	assertInt(t, 1, *alloc.allocations, "one outstanding allocation")
	assertInt(t, 9, *alloc.constructed, "nine live elements")
	a.Free()
	assertInt(t, 0, *alloc.allocations, "no outstanding allocations after Free")
	assertInt(t, 0, *alloc.constructed, "no live elements after Free")
}

func TestAllocationExceptionSafety(t *testing.T) {
	alloc := newCountingAlloc(5) // fail constructing the 5th element
	var caught any
	func() {
		defer func() { caught = recover() }()
		FullAlloc(Shape{3, 3}, 1.0, alloc)
	}()
	failure, ok := caught.(constructionFailure)
	if !ok {
		t.Fatalf("expected the construction failure to propagate unchanged, got %v", caught)
	}
	assertInt(t, 5, failure.call, "original panic value re-raised")
	assertInt(t, 0, *alloc.allocations, "raw storage released after rollback")
	assertInt(t, 0, *alloc.constructed, "constructed prefix destroyed after rollback")
}

func TestAllocationExceptionSafetyFromView(t *testing.T) {
	src := Full(Shape{2, 3}, 2.0)
	alloc := newCountingAlloc(4)
	var caught any
	func() {
		defer func() { caught = recover() }()
		FromViewAlloc[float64](&src.View, alloc)
	}()
	if _, ok := caught.(constructionFailure); !ok {
		t.Fatalf("expected the construction failure to propagate, got %v", caught)
	}
	assertInt(t, 0, *alloc.allocations, "no leak after failed view construction")
	assertInt(t, 0, *alloc.constructed, "no live elements after failed view construction")
}

func TestReshapeFailureLeavesArrayIntact(t *testing.T) {
	alloc := newCountingAlloc(0)
	a := FullAlloc(Shape{2, 2}, 3.0, alloc)
	*alloc.calls = 0
	alloc.failAt = 2
	a.alloc = alloc

	var caught any
	func() {
		defer func() { caught = recover() }()
		a.ReshapeWith(Shape{5}, 1.0)
	}()
	if caught == nil {
		t.Fatal("expected the reshape construction failure to propagate")
	}
	assertTrue(t, a.Shape().Equal(Shape{2, 2}), "failed reshape leaves the old shape")
	assertFloat(t, 3, a.At(1, 1), 0, "failed reshape leaves the old elements")
	assertInt(t, 1, *alloc.allocations, "only the original allocation remains outstanding")
}
