package mrtree2d

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func le32(v int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}

func TestNewLeafGoldenDigest(t *testing.T) {
	points := []Record{
		{ID: 1, Loc: Point{X: 10, Y: 20}},
		{ID: 2, Loc: Point{X: -5, Y: 7}},
	}

	var raw []byte
	for _, p := range points {
		raw = append(raw, le32(int32(p.ID))...)
		raw = append(raw, le32(p.Loc.X)...)
		raw = append(raw, le32(p.Loc.Y)...)
	}
	want := sha256.Sum256(raw)

	leaf := newLeaf(points)
	require.Equal(t, Digest(want), leaf.Digest())
	require.Equal(t, Rect{LX: -5, LY: 7, UX: 10, UY: 20}, leaf.MBR())
}

func TestNewInternalGoldenDigest(t *testing.T) {
	l1 := newLeaf([]Record{{ID: 1, Loc: Point{X: 0, Y: 0}}})
	l2 := newLeaf([]Record{{ID: 2, Loc: Point{X: 10, Y: 10}}})

	var raw []byte
	for _, c := range []Node{l1, l2} {
		mbr := c.MBR()
		raw = append(raw, le32(mbr.LX)...)
		raw = append(raw, le32(mbr.LY)...)
		raw = append(raw, le32(mbr.UX)...)
		raw = append(raw, le32(mbr.UY)...)
		d := c.Digest()
		raw = append(raw, d[:]...)
	}
	want := sha256.Sum256(raw)

	internal := newInternal([]Node{l1, l2})
	require.Equal(t, Digest(want), internal.Digest())
	require.Equal(t, Rect{LX: 0, LY: 0, UX: 10, UY: 10}, internal.MBR())
}

func TestNewLeafOrderSensitivity(t *testing.T) {
	a := newLeaf([]Record{{ID: 1, Loc: Point{X: 0, Y: 0}}, {ID: 2, Loc: Point{X: 1, Y: 1}}})
	b := newLeaf([]Record{{ID: 2, Loc: Point{X: 1, Y: 1}}, {ID: 1, Loc: Point{X: 0, Y: 0}}})
	require.NotEqual(t, a.Digest(), b.Digest(), "child order is part of the commitment")
}
