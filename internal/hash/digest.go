package hash

import (
	"encoding/hex"
	"errors"
	"fmt"
)

var (
	// ErrMessageTooLong reports input beyond MaxMessageBytes.
	ErrMessageTooLong = errors.New("message too long")
	// ErrInvalidHex reports a digest string that is not 64 hex characters.
	ErrInvalidHex = errors.New("invalid hex digest")
	// ErrInvalidState reports a malformed engine snapshot.
	ErrInvalidState = errors.New("invalid engine state")
)

// Digest is a SHA-256 digest: the eight final state words in big-endian order.
type Digest [Size]byte

// ToString renders d as 64 lowercase hex characters.
func ToString(d Digest) string {
	return hex.EncodeToString(d[:])
}

// String implements fmt.Stringer.
func (d Digest) String() string { return ToString(d) }

// ParseHex decodes a 64-character hex string into a Digest. Upper-case
// digits are accepted.
func ParseHex(s string) (Digest, error) {
	var d Digest
	if len(s) != hex.EncodedLen(Size) {
		return d, fmt.Errorf("length %d: %w", len(s), ErrInvalidHex)
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return Digest{}, fmt.Errorf("%v: %w", err, ErrInvalidHex)
	}
	return d, nil
}
