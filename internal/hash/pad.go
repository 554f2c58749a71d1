package hash

import "encoding/binary"

// pad appends 0x80, zero fill up to 56 mod 64 and the big-endian bit length,
// compressing the final one or two blocks. The length field is taken before
// any padding byte is absorbed.
func (e *Engine) pad() {
	bitLen := e.len << 3

	var tmp [BlockSize + 8]byte
	tmp[0] = 0x80
	rem := e.len % BlockSize
	var zeros uint64
	if rem < 56 {
		zeros = 56 - rem
	} else {
		zeros = BlockSize + 56 - rem
	}
	binary.BigEndian.PutUint64(tmp[zeros:], bitLen)
	e.absorb(tmp[:zeros+8])

	if e.nx != 0 {
		panic("hash: padding left a partial block")
	}
}
