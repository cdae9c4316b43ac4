package mrtree2d

// Kind tags which variant a Node is.
type Kind int

const (
	// KindLeaf marks a Node as a Leaf.
	KindLeaf Kind = iota
	// KindInternal marks a Node as an Internal.
	KindInternal
)

// Node is the shared view over the two node variants: it reports its type
// tag, its cached minimum bounding rectangle, and its cached digest.
// Leaves and internals are immutable once constructed.
type Node interface {
	Kind() Kind
	MBR() Rect
	Digest() Digest
}

// Leaf owns an ordered sequence of points. Its MBR is the enlarge-fold of
// those points' locations; its digest is SHA-256 of their serialized
// sequence.
type Leaf struct {
	mbr    Rect
	digest Digest
	Points []Record
}

func (l *Leaf) Kind() Kind     { return KindLeaf }
func (l *Leaf) MBR() Rect      { return l.mbr }
func (l *Leaf) Digest() Digest { return l.digest }

// Internal owns an ordered sequence of child nodes. Its MBR is the
// enlarge-fold of the children's MBRs; its digest is SHA-256 of each
// child's (MBR, digest) pair concatenated in child order.
type Internal struct {
	mbr      Rect
	digest   Digest
	Children []Node
}

func (n *Internal) Kind() Kind     { return KindInternal }
func (n *Internal) MBR() Rect      { return n.mbr }
func (n *Internal) Digest() Digest { return n.digest }

// newLeaf builds a leaf from an owned, already-ordered point sequence.
// Passing an empty slice yields the leaf identity used only as an internal
// convenience — the bulk loader never calls newLeaf with no points on a
// non-empty dataset.
func newLeaf(points []Record) *Leaf {
	if len(points) == 0 {
		return &Leaf{mbr: EmptyRect}
	}
	buf := NewHashBuffer(len(points) * 12)
	mbr := EmptyRect
	for _, p := range points {
		mbr = EnlargePoint(mbr, p.Loc)
		p.serialize(buf)
	}
	return &Leaf{mbr: mbr, digest: buf.Sum(), Points: points}
}

// newInternal builds an internal node from an owned, already-ordered child
// sequence.
func newInternal(children []Node) *Internal {
	if len(children) == 0 {
		return &Internal{mbr: EmptyRect}
	}
	buf := NewHashBuffer(len(children) * (16 + DigestSize))
	mbr := EmptyRect
	for _, c := range children {
		cr := c.MBR()
		mbr = EnlargeRect(mbr, cr)
		d := c.Digest()
		buf.PutI32(cr.LX).PutI32(cr.LY).PutI32(cr.UX).PutI32(cr.UY).PutBytes(d[:])
	}
	return &Internal{mbr: mbr, digest: buf.Sum(), Children: children}
}
