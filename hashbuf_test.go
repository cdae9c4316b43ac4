package mrtree2d

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashBufferLittleEndian(t *testing.T) {
	buf := NewHashBuffer(0)
	buf.PutU32(0x01020304).PutI32(-1)

	want := sha256.Sum256([]byte{0x04, 0x03, 0x02, 0x01, 0xff, 0xff, 0xff, 0xff})
	require.Equal(t, Digest(want), buf.Sum())
}

func TestHashBufferNoFraming(t *testing.T) {
	a := NewHashBuffer(0)
	a.PutU32(1).PutU32(2)

	b := NewHashBuffer(0)
	b.PutBytes([]byte{1, 0, 0, 0, 2, 0, 0, 0})

	require.Equal(t, a.Sum(), b.Sum(), "positional schema means no separators between fields")
}
