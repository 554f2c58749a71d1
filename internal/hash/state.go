package hash

import (
	"encoding/binary"
	"fmt"
)

// The snapshot layout matches crypto/sha256: magic, state words, the full
// block buffer and the byte count, all big-endian.
const (
	stateMagic = "sha\x03"
	stateSize  = len(stateMagic) + 8*4 + BlockSize + 8
)

// MarshalBinary snapshots the engine so it can be resumed later.
func (e *Engine) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, stateSize)
	b = append(b, stateMagic...)
	for _, word := range e.h {
		b = binary.BigEndian.AppendUint32(b, word)
	}
	b = append(b, e.x[:e.nx]...)
	b = append(b, make([]byte, BlockSize-e.nx)...)
	b = binary.BigEndian.AppendUint64(b, e.len)
	return b, nil
}

// UnmarshalBinary restores a snapshot taken with MarshalBinary.
func (e *Engine) UnmarshalBinary(b []byte) error {
	if len(b) < len(stateMagic) || string(b[:len(stateMagic)]) != stateMagic {
		return fmt.Errorf("bad magic: %w", ErrInvalidState)
	}
	if len(b) != stateSize {
		return fmt.Errorf("size %d, want %d: %w", len(b), stateSize, ErrInvalidState)
	}
	n := binary.BigEndian.Uint64(b[stateSize-8:])
	if n > MaxMessageBytes {
		return fmt.Errorf("length %d: %w", n, ErrInvalidState)
	}

	b = b[len(stateMagic):]
	for i := range e.h {
		e.h[i] = binary.BigEndian.Uint32(b[i*4:])
	}
	b = b[8*4:]
	copy(e.x[:], b[:BlockSize])
	e.len = n
	e.nx = int(n % BlockSize)
	clear(e.x[e.nx:])
	return nil
}
