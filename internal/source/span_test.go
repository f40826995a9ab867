package source

import "testing"

func TestSpanEmptyAndLen(t *testing.T) {
	s := Span{File: 1, Start: 10, End: 10}
	if !s.Empty() {
		t.Fatalf("expected empty span")
	}
	if s.Len() != 0 {
		t.Fatalf("expected zero length, got %d", s.Len())
	}

	s2 := Span{File: 1, Start: 10, End: 15}
	if s2.Empty() {
		t.Fatalf("expected non-empty span")
	}
	if s2.Len() != 5 {
		t.Fatalf("expected length 5, got %d", s2.Len())
	}
}

func TestSpanDummy(t *testing.T) {
	if !Dummy.IsDummy() {
		t.Fatalf("Dummy must report IsDummy")
	}
	if (Span{File: 1}).IsDummy() {
		t.Fatalf("non-zero file must not be dummy")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 10, End: 20}
	b := Span{File: 1, Start: 5, End: 15}
	got := a.Cover(b)
	want := Span{File: 1, Start: 5, End: 20}
	if got != want {
		t.Fatalf("Cover() = %v, want %v", got, want)
	}

	c := Span{File: 1, Start: 18, End: 30}
	got2 := a.Cover(c)
	want2 := Span{File: 1, Start: 10, End: 30}
	if got2 != want2 {
		t.Fatalf("Cover() = %v, want %v", got2, want2)
	}

	// Covering across files is a no-op (returns the receiver unchanged).
	d := Span{File: 2, Start: 0, End: 5}
	if got3 := a.Cover(d); got3 != a {
		t.Fatalf("Cover() across files should not modify receiver, got %v", got3)
	}
}

func TestSpanIsLeftOf(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 10}
	b := Span{File: 1, Start: 10, End: 20}
	if !a.IsLeftOf(b) {
		t.Fatalf("expected a to be left of b")
	}
	if b.IsLeftOf(a) {
		t.Fatalf("expected b not to be left of a")
	}
	c := Span{File: 2, Start: 0, End: 1}
	if a.IsLeftOf(c) {
		t.Fatalf("spans in different files are never ordered")
	}
}

func TestSpanString(t *testing.T) {
	s := Span{File: 3, Start: 4, End: 9}
	if got, want := s.String(), "3:4-9"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
