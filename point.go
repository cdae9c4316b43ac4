package mrtree2d

import "sort"

// Record is a single dataset point: an identifier plus a location.
// Identifier uniqueness across a dataset is desirable but not enforced.
type Record struct {
	ID  uint32
	Loc Point
}

// serialize appends id, x, y to buf in the order (u32 id, i32 x, i32 y) —
// the fixed leaf content schema hashed into a leaf's digest.
func (r Record) serialize(buf *HashBuffer) {
	buf.PutU32(r.ID).PutI32(r.Loc.X).PutI32(r.Loc.Y)
}

// PointOrder selects the ordering used to sort points before bulk-loading.
// The choice must match between the side that builds the tree and the side
// that later interprets its digests, since child order is part of the
// commitment.
type PointOrder int

const (
	// OrderLexicographic sorts by (X, Y) lexicographically.
	OrderLexicographic PointOrder = iota
	// OrderMorton sorts by the 64-bit Morton (z-order) interleave of
	// (X, Y), reinterpreting the signed coordinates as unsigned two's
	// complement before interleaving.
	OrderMorton
)

// sortRecords sorts pts in place according to order. The sort step breaks
// ties itself; no secondary key is introduced, so equal keys retain
// whatever relative order the sort algorithm happens to produce between
// them.
func sortRecords(pts []Record, order PointOrder) {
	var less func(i, j int) bool
	switch order {
	case OrderMorton:
		less = func(i, j int) bool {
			return mortonEncode(pts[i].Loc) < mortonEncode(pts[j].Loc)
		}
	default:
		less = func(i, j int) bool {
			a, b := pts[i].Loc, pts[j].Loc
			if a.X != b.X {
				return a.X < b.X
			}
			return a.Y < b.Y
		}
	}
	sort.Slice(pts, less)
}
