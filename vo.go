package mrtree2d

// VO is a verification object: the authenticated subset of the tree
// returned alongside a query answer, containing enough information for a
// verifier to recompute the root digest without possessing pruned
// subtrees' contents. Its three variants are VOLeaf, VOPruned, and
// VOContainer; callers dispatch on the concrete type with a type switch —
// Go has no sum types, so a marker method plus a switch stands in for one.
type VO interface {
	isVO()
}

// VOLeaf carries the full, unfiltered point sequence of a reached leaf.
// The verifier must see every point to recompute the leaf's digest, so
// leaves are never pre-filtered against the query.
type VOLeaf struct {
	Points []Record
}

func (*VOLeaf) isVO() {}

// VOPruned carries the (MBR, digest) witness of a subtree whose root MBR
// did not intersect the query. This is where the client trusts the
// witness; the trust is validated transitively once the digest is folded
// into an ancestor's serialization.
type VOPruned struct {
	MBR    Rect
	Digest Digest
}

func (*VOPruned) isVO() {}

// VOContainer carries one child VO per child of the corresponding internal
// node, in the node's original child order.
type VOContainer struct {
	Children []VO
}

func (*VOContainer) isVO() {}
