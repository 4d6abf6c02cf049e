package marray

import "testing"

// sumRecursive consumes a (traverser, shape, accessor) tuple the way an
// external dimension-recursive algorithm would.
func sumRecursive(tr Traverser[int], acc Accessor[int]) int {
	if tr.Dim() == 0 {
		sum := 0
		for i := 0; i < tr.Len(); i++ {
			sum += acc.Get(tr.Ref())
			tr = tr.Next()
		}
		return sum
	}
	sum := 0
	for i := 0; i < tr.Len(); i++ {
		sum += sumRecursive(tr.Begin(), acc)
		tr = tr.Next()
	}
	return sum
}

func TestSrcRangeTraversal(t *testing.T) {
	a, err := FromSlice([]int{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	tr, shape, acc := SrcRange(&a.View)
	assertTrue(t, shape.Equal(Shape{2, 3}), "SrcRange reports the view's shape")
	assertInt(t, 21, sumRecursive(tr, acc), "traverser walks every element once")

	// The tuple follows strides, so it works for sliced views too.
	trT, _, accT := SrcRange(a.Transpose())
	assertInt(t, 21, sumRecursive(trT, accT), "traverser walks a strided view correctly")
}

func TestDestTraversalWrites(t *testing.T) {
	a := New[int](Shape{4})
	tr, acc := Dest(&a.View)
	for i := 0; i < tr.Len(); i++ {
		acc.Set(tr.Ref(), i*i)
		tr = tr.Next()
	}
	for i := 0; i < 4; i++ {
		assertInt(t, i*i, a.At(i), "accessor writes land in the view")
	}
}

type doublingAccessor struct{ ValueAccessor[int] }

func (doublingAccessor) Get(p *int) int { return 2 * *p }

func TestExplicitAccessor(t *testing.T) {
	a, err := FromSlice([]int{1, 2, 3}, Shape{3})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	tr, _, acc := SrcRangeWith[int](&a.View, doublingAccessor{})
	assertInt(t, 12, sumRecursive(tr, acc), "explicit accessor transforms reads")
}
