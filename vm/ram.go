package vm

import "encoding/binary"

// RAM is a word-addressable linear store of fixed size. Address i in
// [0, Size) holds one 32-bit word; there is no byte addressing.
type RAM struct {
	words []uint32
}

// NewRAM allocates a RAM of the given word count.
func NewRAM(size uint32) *RAM {
	return &RAM{words: make([]uint32, size)}
}

// Size returns the number of addressable words.
func (m *RAM) Size() uint32 {
	return uint32(len(m.words))
}

// Read returns the word at addr. It reports OutOfBoundsError if addr is
// beyond the RAM's size.
func (m *RAM) Read(addr uint32) (uint32, error) {
	if addr >= m.Size() {
		return 0, &OutOfBoundsError{Addr: addr, Op: "read"}
	}
	return m.words[addr], nil
}

// Write stores value at addr. It reports OutOfBoundsError if addr is beyond
// the RAM's size.
func (m *RAM) Write(addr, value uint32) error {
	if addr >= m.Size() {
		return &OutOfBoundsError{Addr: addr, Op: "write"}
	}
	m.words[addr] = value
	return nil
}

// LoadImage bulk-loads a binary image into RAM starting at word 0. The
// image is interpreted as a sequence of 4-byte big-endian words, matching
// the on-disk format produced by the assembler (§4.8, §6). It reports
// OutOfBoundsError if the image is larger than the RAM.
func (m *RAM) LoadImage(image []byte) error {
	numWords := len(image) / 4
	if uint32(numWords) > m.Size() {
		return &OutOfBoundsError{Addr: uint32(numWords), Op: "load"}
	}
	for i := 0; i < numWords; i++ {
		m.words[i] = binary.BigEndian.Uint32(image[i*4 : i*4+4])
	}
	return nil
}
