package mrtree2d

// Point is a single 2D location in the integer plane.
type Point struct {
	X, Y int32
}

// Rect is a closed axis-aligned bounding box (lx, ly, ux, uy) with
// lx <= ux and ly <= uy.
type Rect struct {
	LX, LY, UX, UY int32
}

// EmptyRect is the sentinel identity value for Enlarge: enlarging any
// rectangle or point by EmptyRect yields a rectangle that tightly bounds
// the operand.
var EmptyRect = Rect{
	LX: 1, LY: 1, UX: 0, UY: 0,
}

// isEmpty reports whether r is the empty-rectangle sentinel.
func (r Rect) isEmpty() bool {
	return r.LX > r.UX || r.LY > r.UY
}

// Contains reports whether q.LX <= p.X <= q.UX and q.LY <= p.Y <= q.UY.
func Contains(p Point, q Rect) bool {
	return q.LX <= p.X && p.X <= q.UX && q.LY <= p.Y && p.Y <= q.UY
}

// Intersect reports whether two rectangles overlap on both axes
// (closed-interval overlap).
func Intersect(a, b Rect) bool {
	if a.isEmpty() || b.isEmpty() {
		return false
	}
	return a.LX <= b.UX && a.UX >= b.LX && a.LY <= b.UY && a.UY >= b.LY
}

// EnlargeRect returns the smallest rectangle containing both a and b. It is
// commutative and associative and treats EmptyRect as its identity.
func EnlargeRect(a, b Rect) Rect {
	if a.isEmpty() {
		return b
	}
	if b.isEmpty() {
		return a
	}
	return Rect{
		LX: minI32(a.LX, b.LX),
		LY: minI32(a.LY, b.LY),
		UX: maxI32(a.UX, b.UX),
		UY: maxI32(a.UY, b.UY),
	}
}

// EnlargePoint returns the smallest rectangle containing both r and p.
func EnlargePoint(r Rect, p Point) Rect {
	return EnlargeRect(r, Rect{LX: p.X, LY: p.Y, UX: p.X, UY: p.Y})
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
