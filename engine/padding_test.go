package engine_test

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DigestEngine/engine"
)

// recAlg records the final blocks produced by MDPadding.
type recAlg struct {
	pad      engine.MDPadding
	blockLen int
	final    [][]byte
	padding  bool
}

func (r *recAlg) Init()  {}
func (r *recAlg) Reset() {}

func (r *recAlg) ProcessBlock(p []byte) {
	if r.padding {
		r.final = append(r.final, append([]byte(nil), p...))
	}
}

func (r *recAlg) DoPadding(s *engine.State, out []byte) {
	r.final = nil
	r.padding = true
	r.pad.Pad(s, r.ProcessBlock)
	r.padding = false
	out[0] = byte(len(r.final))
}

func (r *recAlg) DigestLength() int { return 1 }
func (r *recAlg) BlockLength() int  { return r.blockLen }

func finalBlocks(t *testing.T, pad engine.MDPadding, blockLen, msgLen int) [][]byte {
	t.Helper()
	alg := &recAlg{pad: pad, blockLen: blockLen}
	e := engine.New(alg)
	e.Update(pattern(msgLen))
	e.DigestInto(make([]byte, 1))
	return alg.final
}

func TestMDPadding(t *testing.T) {
	tests := []struct {
		pad      engine.MDPadding
		blockLen int
		msgLen   int
		blocks   int
	}{
		{engine.MDPadding{LengthSize: 8}, 64, 0, 1},
		{engine.MDPadding{LengthSize: 8}, 64, 55, 1},
		{engine.MDPadding{LengthSize: 8}, 64, 56, 2},
		{engine.MDPadding{LengthSize: 8}, 64, 63, 2},
		{engine.MDPadding{LengthSize: 8}, 64, 64, 1},
		{engine.MDPadding{LengthSize: 8}, 64, 130, 1},
		{engine.MDPadding{LittleEndian: true, LengthSize: 8}, 64, 3, 1},
		{engine.MDPadding{LittleEndian: true, LengthSize: 8}, 64, 60, 2},
		{engine.MDPadding{LengthSize: 16}, 128, 111, 1},
		{engine.MDPadding{LengthSize: 16}, 128, 112, 2},
		{engine.MDPadding{LittleEndian: true, LengthSize: 16}, 128, 300, 1},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("le=%v/len=%d/block=%d/msg=%d", tt.pad.LittleEndian, tt.pad.LengthSize, tt.blockLen, tt.msgLen)
		t.Run(name, func(t *testing.T) {
			blocks := finalBlocks(t, tt.pad, tt.blockLen, tt.msgLen)
			require.Len(t, blocks, tt.blocks)

			pending := tt.msgLen % tt.blockLen
			first := blocks[0]
			assert.Equal(t, pattern(tt.msgLen)[tt.msgLen-pending:], first[:pending])
			assert.Equal(t, byte(0x80), first[pending])

			last := blocks[len(blocks)-1]
			tail := last[tt.blockLen-tt.pad.LengthSize:]
			bitLen := uint64(tt.msgLen) * 8

			var lo, hi uint64
			switch {
			case tt.pad.LengthSize == 8 && tt.pad.LittleEndian:
				lo = binary.LittleEndian.Uint64(tail)
			case tt.pad.LengthSize == 8:
				lo = binary.BigEndian.Uint64(tail)
			case tt.pad.LittleEndian:
				lo = binary.LittleEndian.Uint64(tail)
				hi = binary.LittleEndian.Uint64(tail[8:])
			default:
				hi = binary.BigEndian.Uint64(tail)
				lo = binary.BigEndian.Uint64(tail[8:])
			}
			assert.Equal(t, bitLen, lo)
			assert.Zero(t, hi)

			// everything between the marker and the length field is zero
			var zeros []byte
			if len(blocks) == 1 {
				zeros = last[pending+1 : tt.blockLen-tt.pad.LengthSize]
			} else {
				zeros = append(first[pending+1:], last[:tt.blockLen-tt.pad.LengthSize]...)
			}
			for _, b := range zeros {
				assert.Zero(t, b)
			}
		})
	}
}

func TestMDPadding_InvalidLengthSize(t *testing.T) {
	alg := &recAlg{pad: engine.MDPadding{LengthSize: 4}, blockLen: 64}
	e := engine.New(alg)

	assert.Panics(t, func() { e.Digest() })
}
