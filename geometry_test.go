package mrtree2d

import "testing"

func TestContains(t *testing.T) {
	q := Rect{LX: 0, LY: 0, UX: 10, UY: 10}
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{10, 10}, true},
		{Point{5, 5}, true},
		{Point{-1, 5}, false},
		{Point{5, 11}, false},
	}
	for _, c := range cases {
		if got := Contains(c.p, q); got != c.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", c.p, q, got, c.want)
		}
	}
}

func TestIntersect(t *testing.T) {
	a := Rect{LX: 0, LY: 0, UX: 10, UY: 10}
	cases := []struct {
		b    Rect
		want bool
	}{
		{Rect{LX: 5, LY: 5, UX: 15, UY: 15}, true},
		{Rect{LX: 10, LY: 10, UX: 20, UY: 20}, true}, // touching corner counts, closed intervals
		{Rect{LX: 11, LY: 0, UX: 20, UY: 10}, false},
		{Rect{LX: -10, LY: -10, UX: -1, UY: -1}, false},
	}
	for _, c := range cases {
		if got := Intersect(a, c.b); got != c.want {
			t.Errorf("Intersect(%v, %v) = %v, want %v", a, c.b, got, c.want)
		}
	}
}

func TestEnlargeIdentity(t *testing.T) {
	r := Rect{LX: 1, LY: 2, UX: 3, UY: 4}
	if got := EnlargeRect(r, EmptyRect); got != r {
		t.Errorf("EnlargeRect(r, EmptyRect) = %v, want %v", got, r)
	}
	if got := EnlargeRect(EmptyRect, r); got != r {
		t.Errorf("EnlargeRect(EmptyRect, r) = %v, want %v", got, r)
	}
}

func TestEnlargeCommutativeAssociative(t *testing.T) {
	a := Rect{LX: 0, LY: 0, UX: 1, UY: 1}
	b := Rect{LX: 5, LY: -2, UX: 8, UY: 9}
	c := Rect{LX: -3, LY: -3, UX: -1, UY: 0}

	if EnlargeRect(a, b) != EnlargeRect(b, a) {
		t.Error("EnlargeRect is not commutative")
	}
	left := EnlargeRect(EnlargeRect(a, b), c)
	right := EnlargeRect(a, EnlargeRect(b, c))
	if left != right {
		t.Errorf("EnlargeRect is not associative: %v != %v", left, right)
	}
}

func TestEnlargePointBounds(t *testing.T) {
	got := EnlargePoint(EmptyRect, Point{X: 3, Y: -4})
	want := Rect{LX: 3, LY: -4, UX: 3, UY: -4}
	if got != want {
		t.Errorf("EnlargePoint(EmptyRect, p) = %v, want %v", got, want)
	}
}
