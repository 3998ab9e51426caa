// Package md5 implements MD5 on top of the digest engine.
//
// MD5 is broken; use it only for compatibility with existing checksums.
package md5

import (
	"encoding/binary"
	"hash"
	"math/bits"

	"DigestEngine/engine"
)

const (
	// Size is the size of an MD5 digest in bytes.
	Size = 16
	// BlockSize is the block size of MD5 in bytes.
	BlockSize = 64
)

var iv = [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}

var _k = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

var shifts = [4][4]int{
	{7, 12, 17, 22},
	{5, 9, 14, 20},
	{4, 11, 16, 23},
	{6, 10, 15, 21},
}

var padding = engine.MDPadding{LittleEndian: true, LengthSize: 8}

type digest struct {
	s [4]uint32
}

// New returns an engine computing MD5.
func New(opts ...engine.Option) *engine.Engine {
	return engine.New(&digest{}, opts...)
}

// NewHash returns a hash.Hash computing MD5.
func NewHash() hash.Hash { return engine.MustNewHash(New()) }

// Sum returns the MD5 digest of data.
func Sum(data []byte) [Size]byte {
	var out [Size]byte
	e := New()
	e.Update(data)
	e.DigestInto(out[:])
	return out
}

func (d *digest) Init()                 { d.Reset() }
func (d *digest) Reset()                { d.s = iv }
func (d *digest) ProcessBlock(p []byte) { block(&d.s, p) }
func (d *digest) DigestLength() int     { return Size }
func (d *digest) BlockLength() int      { return BlockSize }
func (d *digest) String() string        { return "MD5" }

func (d *digest) DoPadding(s *engine.State, out []byte) {
	padding.Pad(s, d.ProcessBlock)
	for i, v := range d.s {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
}

func (d *digest) Clone() engine.Algorithm {
	c := *d
	return &c
}

func block(s *[4]uint32, p []byte) {
	var x [16]uint32
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(p[i*4:])
	}

	a, b, c, d := s[0], s[1], s[2], s[3]
	for i := 0; i < 64; i++ {
		var f uint32
		var g int
		switch i / 16 {
		case 0:
			f = ((c ^ d) & b) ^ d
			g = i
		case 1:
			f = ((b ^ c) & d) ^ c
			g = (5*i + 1) % 16
		case 2:
			f = b ^ c ^ d
			g = (3*i + 5) % 16
		default:
			f = c ^ (b | ^d)
			g = (7 * i) % 16
		}
		f += a + _k[i] + x[g]
		a = d
		d = c
		c = b
		b += bits.RotateLeft32(f, shifts[i/16][i%4])
	}

	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
}
