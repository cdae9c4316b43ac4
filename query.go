package mrtree2d

// ValidateRect rejects a malformed query rectangle: one with lx > ux or
// ly > uy.
func ValidateRect(q Rect) error {
	if q.LX > q.UX || q.LY > q.UY {
		return ErrInvalidRectangle
	}
	return nil
}

// Query walks root against the query rectangle q and produces a
// verification object. stats may be nil.
//
// At an internal node whose MBR intersects q, every child is visited,
// including children whose own MBR does not intersect q. Such a child that
// is an internal node emits VOPruned, preserving the digest witness the
// verifier needs to recompute the parent's digest without seeing the
// pruned subtree's contents; such a child that is a leaf emits its full
// VOLeaf, since leaves are never pruned.
func Query(root Node, q Rect, stats *Stats) VO {
	if root == nil {
		return nil
	}
	if stats != nil {
		stats.NodesVisited++
	}

	switch n := root.(type) {
	case *Leaf:
		if stats != nil {
			stats.PointsExamined += len(n.Points)
		}
		return &VOLeaf{Points: n.Points}
	case *Internal:
		if !Intersect(n.MBR(), q) {
			if stats != nil {
				stats.NodesPruned++
			}
			return &VOPruned{MBR: n.MBR(), Digest: n.Digest()}
		}
		children := make([]VO, len(n.Children))
		for i, c := range n.Children {
			children[i] = Query(c, q, stats)
		}
		return &VOContainer{Children: children}
	default:
		panic("mrtree2d: unknown node kind")
	}
}
