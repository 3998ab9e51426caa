package engine

import (
	"fmt"
	"hash"
)

var _ hash.Hash = (*Hasher)(nil)

// Hasher exposes an Engine through the hash.Hash interface.
type Hasher struct {
	e *Engine
}

// NewHash wraps e. The algorithm must implement Cloner so that Sum can leave
// the running state untouched.
func NewHash(e *Engine) (*Hasher, error) {
	if _, ok := e.alg.(Cloner); !ok {
		return nil, fmt.Errorf("hash %T: %w", e.alg, ErrNotCloneable)
	}
	return &Hasher{e: e}, nil
}

// MustNewHash is like NewHash but panics on error.
func MustNewHash(e *Engine) *Hasher {
	h, err := NewHash(e)
	if err != nil {
		panic(err)
	}
	return h
}

func (h *Hasher) Write(p []byte) (int, error) {
	h.e.Update(p)
	return len(p), nil
}

// Sum appends the digest of the data written so far to b.
func (h *Hasher) Sum(b []byte) []byte {
	c, err := h.e.Copy()
	if err != nil {
		panic(err)
	}
	return append(b, c.Digest()...)
}

func (h *Hasher) Reset()         { h.e.Reset() }
func (h *Hasher) Size() int      { return h.e.DigestLength() }
func (h *Hasher) BlockSize() int { return h.e.BlockLength() }

// Engine returns the wrapped engine.
func (h *Hasher) Engine() *Engine { return h.e }
