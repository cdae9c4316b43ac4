package mrtree2d

import (
	"crypto/sha256"
	"encoding/binary"
)

// DigestSize is the width in bytes of a node digest (SHA-256 output).
const DigestSize = sha256.Size

// Digest is a 256-bit content commitment.
type Digest [DigestSize]byte

// HashBuffer is an append-only byte sink backing a digest computation. It
// serializes integers in little-endian two's-complement form at exactly
// their declared width; there is no framing, length prefix, or separator
// between fields, so the schema is positional and fixed by the order in
// which callers append to it.
type HashBuffer struct {
	buf []byte
}

// NewHashBuffer returns a buffer pre-sized to hold n bytes.
func NewHashBuffer(n int) *HashBuffer {
	return &HashBuffer{buf: make([]byte, 0, n)}
}

// PutU32 appends v as 4 little-endian bytes.
func (b *HashBuffer) PutU32(v uint32) *HashBuffer {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
	return b
}

// PutI32 appends v as 4 little-endian two's-complement bytes.
func (b *HashBuffer) PutI32(v int32) *HashBuffer {
	return b.PutU32(uint32(v))
}

// PutBytes copies raw verbatim into the buffer.
func (b *HashBuffer) PutBytes(raw []byte) *HashBuffer {
	b.buf = append(b.buf, raw...)
	return b
}

// Sum computes the SHA-256 digest of everything appended so far.
func (b *HashBuffer) Sum() Digest {
	return sha256.Sum256(b.buf)
}

// Len returns the number of bytes appended so far.
func (b *HashBuffer) Len() int {
	return len(b.buf)
}
