// Package engine implements the buffering layer shared by block-based hash
// functions.
//
// A concrete hash function only supplies an Algorithm: its block transform,
// its final padding and its reset/init hooks. The Engine takes care of
// accumulating bytes into blocks, counting processed blocks, extracting
// (possibly truncated) digests and copying buffered state between instances.
//
// An Engine is not safe for concurrent use. Hash common prefixes once and
// Copy the engine for each goroutine instead.
package engine

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrNotCloneable is returned by Copy and NewHash when the algorithm does not
// implement Cloner.
var ErrNotCloneable = errors.New("algorithm does not implement Cloner")

// Algorithm is the set of primitives a hash function plugs into an Engine.
type Algorithm interface {
	// Init is called once, when the Engine is constructed, before any
	// length query.
	Init()

	// Reset restores the initial chaining value.
	Reset()

	// ProcessBlock absorbs exactly one block. The slice is reused by the
	// engine after the call returns and must not be retained.
	ProcessBlock(block []byte)

	// DoPadding finalizes the hash. It learns the pending partial block
	// through s, runs the trailing transform(s) and writes the digest into
	// out, which is exactly DigestLength() bytes long.
	DoPadding(s *State, out []byte)

	DigestLength() int
	BlockLength() int
}

// InternalBlockLengther is implemented by algorithms whose internal buffering
// granularity differs from the advertised BlockLength.
type InternalBlockLengther interface {
	InternalBlockLength() int
}

// Cloner is implemented by algorithms able to duplicate their chaining state.
// Clone must return an independent, already initialized instance.
type Cloner interface {
	Clone() Algorithm
}

// State is the buffering state of an Engine as seen by padding routines.
type State struct {
	inputBuf   []byte
	inputLen   int
	blockCount uint64
}

// Flush reports the number of bytes buffered but not yet processed.
func (s *State) Flush() int {
	return s.inputLen
}

// BlockBuffer returns the internal block-sized buffer. Only the first Flush()
// bytes are defined; the rest may be overwritten freely.
func (s *State) BlockBuffer() []byte {
	return s.inputBuf
}

// BlockCount returns the number of ProcessBlock calls made by the engine
// since the last reset.
func (s *State) BlockCount() uint64 {
	return s.blockCount
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used by the engine.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Engine buffers input for an Algorithm and drives its block transform.
type Engine struct {
	alg       Algorithm
	state     State
	digestLen int
	blockLen  int
	outputBuf []byte
	logger    *zap.Logger
}

// New initializes alg and builds an engine around it. It panics if alg
// reports a non-positive block length or a negative digest length.
func New(alg Algorithm, opts ...Option) *Engine {
	alg.Init()
	return build(alg, opts)
}

func build(alg Algorithm, opts []Option) *Engine {
	e := &Engine{
		alg:    alg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.digestLen = alg.DigestLength()
	e.blockLen = internalBlockLength(alg)
	if e.blockLen <= 0 {
		panic(fmt.Sprintf("engine: %T reports invalid block length %d", alg, e.blockLen))
	}
	if e.digestLen < 0 {
		panic(fmt.Sprintf("engine: %T reports invalid digest length %d", alg, e.digestLen))
	}
	e.state.inputBuf = make([]byte, e.blockLen)
	e.outputBuf = make([]byte, e.digestLen)

	e.logger.Debug("digest engine created",
		zap.String("algorithm", fmt.Sprintf("%T", alg)),
		zap.Int("blockLen", e.blockLen),
		zap.Int("digestLen", e.digestLen))
	return e
}

func internalBlockLength(alg Algorithm) int {
	if ib, ok := alg.(InternalBlockLengther); ok {
		return ib.InternalBlockLength()
	}
	return alg.BlockLength()
}

// adjustDigestLen materializes the digest length if the algorithm reported
// zero at construction time.
func (e *Engine) adjustDigestLen() {
	if e.digestLen != 0 {
		return
	}
	e.digestLen = e.alg.DigestLength()
	if e.digestLen < 0 {
		panic(fmt.Sprintf("engine: %T reports invalid digest length %d", e.alg, e.digestLen))
	}
	e.outputBuf = make([]byte, e.digestLen)
	e.logger.Warn("digest length resolved after construction",
		zap.String("algorithm", fmt.Sprintf("%T", e.alg)),
		zap.Int("digestLen", e.digestLen))
}

func (e *Engine) processBuffer() {
	e.alg.ProcessBlock(e.state.inputBuf)
	e.state.blockCount++
	e.state.inputLen = 0
}

// UpdateByte appends a single byte.
func (e *Engine) UpdateByte(b byte) {
	e.state.inputBuf[e.state.inputLen] = b
	e.state.inputLen++
	if e.state.inputLen == e.blockLen {
		e.processBuffer()
	}
}

// Update appends p. To feed a sub-range, pass p[off:off+n].
func (e *Engine) Update(p []byte) {
	for len(p) > 0 {
		n := copy(e.state.inputBuf[e.state.inputLen:], p)
		e.state.inputLen += n
		p = p[n:]
		if e.state.inputLen == e.blockLen {
			e.processBuffer()
		}
	}
}

// Write implements io.Writer. It never returns an error.
func (e *Engine) Write(p []byte) (int, error) {
	e.Update(p)
	return len(p), nil
}

// Digest finalizes the computation, resets the engine and returns the digest.
// A second call without intervening updates returns the digest of the empty
// message.
func (e *Engine) Digest() []byte {
	e.adjustDigestLen()
	out := make([]byte, e.digestLen)
	e.DigestInto(out)
	return out
}

// DigestOf appends p and then behaves as Digest.
func (e *Engine) DigestOf(p []byte) []byte {
	e.Update(p)
	return e.Digest()
}

// DigestInto finalizes the computation into out and resets the engine. If out
// is shorter than the digest length, only the first len(out) digest bytes are
// written. It returns the number of bytes written. To write at an offset,
// pass buf[off:off+n].
func (e *Engine) DigestInto(out []byte) int {
	e.adjustDigestLen()
	if len(out) >= e.digestLen {
		e.alg.DoPadding(&e.state, out[:e.digestLen])
		e.Reset()
		return e.digestLen
	}
	e.alg.DoPadding(&e.state, e.outputBuf)
	n := copy(out, e.outputBuf)
	e.Reset()
	return n
}

// Reset restores the algorithm's initial chaining value and drops buffered
// input. Buffers are kept.
func (e *Engine) Reset() {
	e.alg.Reset()
	e.state.inputLen = 0
	e.state.blockCount = 0
}

// CopyState copies the buffered input, the block count and the output buffer
// into dst and returns dst. The algorithm's chaining state is not copied.
// dst must have the same block and digest lengths.
func (e *Engine) CopyState(dst *Engine) *Engine {
	if len(dst.state.inputBuf) != len(e.state.inputBuf) {
		panic(fmt.Sprintf("engine: copy state between block lengths %d and %d",
			len(e.state.inputBuf), len(dst.state.inputBuf)))
	}
	dst.state.inputLen = e.state.inputLen
	dst.state.blockCount = e.state.blockCount
	copy(dst.state.inputBuf, e.state.inputBuf)

	e.adjustDigestLen()
	dst.adjustDigestLen()
	if len(dst.outputBuf) != len(e.outputBuf) {
		panic(fmt.Sprintf("engine: copy state between digest lengths %d and %d",
			len(e.outputBuf), len(dst.outputBuf)))
	}
	copy(dst.outputBuf, e.outputBuf)
	return dst
}

// Copy returns an independent engine with the same algorithm and buffered
// state. The algorithm must implement Cloner.
func (e *Engine) Copy() (*Engine, error) {
	c, ok := e.alg.(Cloner)
	if !ok {
		return nil, fmt.Errorf("copy %T: %w", e.alg, ErrNotCloneable)
	}
	dst := build(c.Clone(), []Option{WithLogger(e.logger)})
	return e.CopyState(dst), nil
}

// DigestLength returns the digest length advertised by the algorithm.
func (e *Engine) DigestLength() int {
	return e.alg.DigestLength()
}

// BlockLength returns the block length advertised by the algorithm.
func (e *Engine) BlockLength() int {
	return e.alg.BlockLength()
}

// Algorithm returns the plugged-in algorithm.
func (e *Engine) Algorithm() Algorithm {
	return e.alg
}

func (e *Engine) String() string {
	if s, ok := e.alg.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", e.alg)
}
