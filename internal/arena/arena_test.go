package arena

import "testing"

func TestInternReturnsCanonicalCopy(t *testing.T) {
	a := New()

	s1 := a.Intern("hello")
	s2 := a.Intern("hello")

	if s1 != s2 {
		t.Fatalf("expected interned strings to be equal, got %q and %q", s1, s2)
	}
}

func TestInternDistinctStringsDoNotCollide(t *testing.T) {
	a := New()

	foo := a.Intern("foo")
	bar := a.Intern("bar")

	if foo == bar {
		t.Fatalf("distinct strings must not intern to the same value")
	}
}

type testNode struct {
	Name string
	N    int
}

func TestAllocReturnsZeroValue(t *testing.T) {
	a := New()

	n := Alloc[testNode](a)
	if n == nil {
		t.Fatal("Alloc returned nil")
	}
	if n.Name != "" || n.N != 0 {
		t.Fatalf("expected zero value, got %+v", n)
	}

	n.Name = "x"
	if n.Name != "x" {
		t.Fatalf("allocated node did not retain assigned field")
	}
}

func TestAllocSliceLength(t *testing.T) {
	a := New()

	s := AllocSlice[int](a, 3)
	if len(s) != 3 {
		t.Fatalf("expected length 3, got %d", len(s))
	}
}
