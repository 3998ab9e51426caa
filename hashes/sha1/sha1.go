// Package sha1 implements SHA-1 on top of the digest engine.
//
// SHA-1 is cryptographically broken; use it only for compatibility.
package sha1

import (
	"encoding/binary"
	"hash"
	"math/bits"

	"DigestEngine/engine"
)

const (
	// Size is the size of a SHA-1 digest in bytes.
	Size = 20
	// BlockSize is the block size of SHA-1 in bytes.
	BlockSize = 64
)

const (
	_k0 = 0x5a827999
	_k1 = 0x6ed9eba1
	_k2 = 0x8f1bbcdc
	_k3 = 0xca62c1d6
)

var iv = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}

var padding = engine.MDPadding{LengthSize: 8}

type digest struct {
	h [5]uint32
}

// New returns an engine computing SHA-1.
func New(opts ...engine.Option) *engine.Engine {
	return engine.New(&digest{}, opts...)
}

// NewHash returns a hash.Hash computing SHA-1.
func NewHash() hash.Hash { return engine.MustNewHash(New()) }

// Sum returns the SHA-1 digest of data.
func Sum(data []byte) [Size]byte {
	var out [Size]byte
	e := New()
	e.Update(data)
	e.DigestInto(out[:])
	return out
}

func (d *digest) Init()                 { d.Reset() }
func (d *digest) Reset()                { d.h = iv }
func (d *digest) ProcessBlock(p []byte) { block(&d.h, p) }
func (d *digest) DigestLength() int     { return Size }
func (d *digest) BlockLength() int      { return BlockSize }
func (d *digest) String() string        { return "SHA-1" }

func (d *digest) DoPadding(s *engine.State, out []byte) {
	padding.Pad(s, d.ProcessBlock)
	for i, v := range d.h {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}
}

func (d *digest) Clone() engine.Algorithm {
	c := *d
	return &c
}

func block(h *[5]uint32, p []byte) {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(p[i*4:])
	}
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := h[0], h[1], h[2], h[3], h[4]
	for i := 0; i < 80; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f = b&c | (^b)&d
			k = _k0
		case i < 40:
			f = b ^ c ^ d
			k = _k1
		case i < 60:
			f = ((b | c) & d) | (b & c)
			k = _k2
		default:
			f = b ^ c ^ d
			k = _k3
		}
		t := bits.RotateLeft32(a, 5) + f + e + w[i] + k
		a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
}
