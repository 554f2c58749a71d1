// Package hash provides an incremental SHA-256 digest engine.
//
// An Engine absorbs input across any number of Update calls and produces the
// 32-byte digest on demand. Digest finalizes a copy of the engine, so it can
// be called repeatedly and the stream can be extended afterwards.
//
// An Engine is not safe for concurrent use. Distinct engines share no mutable
// state and may be used from different goroutines.
package hash

import (
	"fmt"
	stdhash "hash"
)

const (
	// Size is the digest length in bytes.
	Size = 32
	// BlockSize is the compression block length in bytes.
	BlockSize = 64
	// MaxMessageBytes is the longest message whose bit length fits the
	// 64-bit length field appended during padding.
	MaxMessageBytes = 1<<61 - 1
)

var _ stdhash.Hash = (*Engine)(nil)

// Engine holds the running state of one SHA-256 computation.
type Engine struct {
	h   [8]uint32
	x   [BlockSize]byte
	nx  int
	len uint64
}

// New creates an engine with the initial hash values and no input.
func New() *Engine {
	e := &Engine{}
	e.Reset()
	return e
}

// Reset discards all input and restores the initial hash values.
func (e *Engine) Reset() {
	e.h = iv
	e.x = [BlockSize]byte{}
	e.nx = 0
	e.len = 0
}

// Size returns the digest length in bytes.
func (e *Engine) Size() int { return Size }

// BlockSize returns the compression block length in bytes.
func (e *Engine) BlockSize() int { return BlockSize }

// Len returns the number of bytes written so far.
func (e *Engine) Len() uint64 { return e.len }

// Write adds p to the message. It either absorbs all of p or, when the
// message would exceed MaxMessageBytes, none of it and returns an error
// wrapping ErrMessageTooLong.
func (e *Engine) Write(p []byte) (int, error) {
	if uint64(len(p)) > MaxMessageBytes-e.len {
		return 0, fmt.Errorf("write %d bytes after %d: %w", len(p), e.len, ErrMessageTooLong)
	}
	e.len += uint64(len(p))
	e.absorb(p)
	return len(p), nil
}

// Update adds p to the message. A zero-length p is a no-op.
func (e *Engine) Update(p []byte) error {
	_, err := e.Write(p)
	return err
}

// UpdateString adds the bytes of s to the message.
func (e *Engine) UpdateString(s string) error {
	return e.Update([]byte(s))
}

// absorb buffers p and compresses every block it completes. It does not
// touch the length counter.
func (e *Engine) absorb(p []byte) {
	if e.nx > 0 {
		n := copy(e.x[e.nx:], p)
		e.nx += n
		if e.nx == BlockSize {
			block(e, e.x[:])
			e.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		block(e, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		e.nx = copy(e.x[:], p)
	}
}

// Digest returns the digest of everything written so far. The engine is
// left unchanged.
func (e *Engine) Digest() Digest {
	final := *e
	final.pad()

	var d Digest
	for i, word := range final.h {
		d[i*4] = byte(word >> 24)
		d[i*4+1] = byte(word >> 16)
		d[i*4+2] = byte(word >> 8)
		d[i*4+3] = byte(word)
	}
	return d
}

// Sum appends the current digest to b and returns the resulting slice.
func (e *Engine) Sum(b []byte) []byte {
	d := e.Digest()
	return append(b, d[:]...)
}

// Sum256 returns the digest of p.
func Sum256(p []byte) Digest {
	e := New()
	if err := e.Update(p); err != nil {
		panic(err)
	}
	return e.Digest()
}
