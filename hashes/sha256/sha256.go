// Package sha256 implements SHA-224 and SHA-256 on top of the digest engine.
package sha256

import (
	"encoding/binary"
	"hash"
	"math/bits"

	"DigestEngine/engine"
)

const (
	// Size is the size of a SHA-256 digest in bytes.
	Size = 32
	// Size224 is the size of a SHA-224 digest in bytes.
	Size224 = 28
	// BlockSize is the block size of SHA-224 and SHA-256 in bytes.
	BlockSize = 64
)

var (
	iv256 = [8]uint32{
		0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
		0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
	}
	iv224 = [8]uint32{
		0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
		0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
	}
)

var _k = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

var padding = engine.MDPadding{LengthSize: 8}

type digest struct {
	h     [8]uint32
	is224 bool
}

// New returns an engine computing SHA-256.
func New(opts ...engine.Option) *engine.Engine {
	return engine.New(&digest{}, opts...)
}

// New224 returns an engine computing SHA-224.
func New224(opts ...engine.Option) *engine.Engine {
	return engine.New(&digest{is224: true}, opts...)
}

// NewHash returns a hash.Hash computing SHA-256.
func NewHash() hash.Hash { return engine.MustNewHash(New()) }

// NewHash224 returns a hash.Hash computing SHA-224.
func NewHash224() hash.Hash { return engine.MustNewHash(New224()) }

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) [Size]byte {
	var out [Size]byte
	e := New()
	e.Update(data)
	e.DigestInto(out[:])
	return out
}

// Sum224 returns the SHA-224 digest of data.
func Sum224(data []byte) [Size224]byte {
	var out [Size224]byte
	e := New224()
	e.Update(data)
	e.DigestInto(out[:])
	return out
}

func (d *digest) Init() { d.Reset() }

func (d *digest) Reset() {
	if d.is224 {
		d.h = iv224
	} else {
		d.h = iv256
	}
}

func (d *digest) ProcessBlock(p []byte) { block(&d.h, p) }

func (d *digest) DoPadding(s *engine.State, out []byte) {
	padding.Pad(s, d.ProcessBlock)
	for i := 0; i < len(out)/4; i++ {
		binary.BigEndian.PutUint32(out[i*4:], d.h[i])
	}
}

func (d *digest) DigestLength() int {
	if d.is224 {
		return Size224
	}
	return Size
}

func (d *digest) BlockLength() int { return BlockSize }

func (d *digest) Clone() engine.Algorithm {
	c := *d
	return &c
}

func (d *digest) String() string {
	if d.is224 {
		return "SHA-224"
	}
	return "SHA-256"
}

func block(h *[8]uint32, p []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(p[i*4:])
	}
	for i := 16; i < 64; i++ {
		v1 := w[i-2]
		t1 := bits.RotateLeft32(v1, -17) ^ bits.RotateLeft32(v1, -19) ^ (v1 >> 10)
		v2 := w[i-15]
		t2 := bits.RotateLeft32(v2, -7) ^ bits.RotateLeft32(v2, -18) ^ (v2 >> 3)
		w[i] = t1 + w[i-7] + t2 + w[i-16]
	}

	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
	for i := 0; i < 64; i++ {
		t1 := hh + (bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)) +
			((e & f) ^ (^e & g)) + _k[i] + w[i]
		t2 := (bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)) +
			((a & b) ^ (a & c) ^ (b & c))
		hh = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
}
