package utils

import "testing"

type stampee struct{ name string }

func TestStampIsStablePerObject(t *testing.T) {
	s := NewStamper()
	obj := &stampee{name: "a"}

	first := s.Stamp(obj)
	second := s.Stamp(obj)
	if first != second {
		t.Errorf("Stamp called twice gave %d then %d, want the same id", first, second)
	}
	if first <= 0 {
		t.Errorf("Stamp gave %d, want a positive id", first)
	}
}

func TestStampIsMonotonicAcrossObjects(t *testing.T) {
	s := NewStamper()
	a := s.Stamp(&stampee{name: "a"})
	b := s.Stamp(&stampee{name: "b"})
	c := s.Stamp(&stampee{name: "c"})

	if a == b || b == c || a == c {
		t.Errorf("distinct objects got ids %d, %d, %d, want all distinct", a, b, c)
	}
	if !(a < b && b < c) {
		t.Errorf("ids %d, %d, %d are not monotonically increasing", a, b, c)
	}
}

func TestHasStampDoesNotAssign(t *testing.T) {
	s := NewStamper()
	obj := &stampee{name: "a"}

	if _, ok := s.HasStamp(obj); ok {
		t.Fatal("HasStamp reported an id before Stamp")
	}
	want := s.Stamp(obj)
	got, ok := s.HasStamp(obj)
	if !ok || got != want {
		t.Errorf("HasStamp = (%d, %v), want (%d, true)", got, ok, want)
	}
}

func TestStampersAreIndependent(t *testing.T) {
	obj := &stampee{name: "shared"}
	s1 := NewStamper()
	s2 := NewStamper()

	if got := s1.Stamp(obj); got != 1 {
		t.Errorf("first stamper id = %d, want 1", got)
	}
	if got := s2.Stamp(obj); got != 1 {
		t.Errorf("second stamper id = %d, want 1 (counters must not be shared)", got)
	}
}
