package engine

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// MDPadding is the Merkle-Damgård strengthening used by the MD4 family:
// a 0x80 marker, zero fill and the message length in bits in the last
// LengthSize bytes of the final block.
type MDPadding struct {
	// LittleEndian selects the byte order of the length field.
	LittleEndian bool
	// LengthSize is 8 or 16.
	LengthSize int
}

// Pad completes the pending block of s and runs process over the final one
// or two blocks.
func (p MDPadding) Pad(s *State, process func(block []byte)) {
	if p.LengthSize != 8 && p.LengthSize != 16 {
		panic(fmt.Sprintf("engine: unsupported length field size %d", p.LengthSize))
	}
	buf := s.BlockBuffer()
	n := s.Flush()
	bl := len(buf)

	// bit length = (blockCount*blockLen + n) * 8, on 128 bits
	hi, lo := bits.Mul64(s.BlockCount(), uint64(bl))
	lo, carry := bits.Add64(lo, uint64(n), 0)
	hi += carry
	hi = hi<<3 | lo>>61
	lo <<= 3

	buf[n] = 0x80
	n++
	if n > bl-p.LengthSize {
		clear(buf[n:])
		process(buf)
		n = 0
	}
	clear(buf[n : bl-p.LengthSize])

	tail := buf[bl-p.LengthSize:]
	var order binary.ByteOrder = binary.BigEndian
	if p.LittleEndian {
		order = binary.LittleEndian
	}
	switch {
	case p.LengthSize == 8:
		order.PutUint64(tail, lo)
	case p.LittleEndian:
		order.PutUint64(tail, lo)
		order.PutUint64(tail[8:], hi)
	default:
		order.PutUint64(tail, hi)
		order.PutUint64(tail[8:], lo)
	}
	process(buf)
}
