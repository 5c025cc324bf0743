package aes128

import "fmt"

// State is a 16-byte block laid out as a 4x4 grid, indexed [row][column].
// Byte i of a block lives at row i%4, column i/4.
type State [4][4]byte

// Word is one column of a State, top row first
type Word [4]byte

// Encode places a 16-byte block into a State in column-major order.
func Encode(b []byte) (State, error) {
	var s State
	if len(b) != BlockLen {
		return s, fmt.Errorf("%w: got %d bytes", ErrInvalidBlockLength, len(b))
	}
	s.load(b)
	return s, nil
}

// load fills s from a block whose length has already been checked
func (s *State) load(b []byte) {
	_ = b[BlockLen-1]
	for i := 0; i < BlockLen; i++ {
		s[i%4][i/4] = b[i]
	}
}

// store writes s into dst in column-major order
func (s *State) store(dst []byte) {
	_ = dst[BlockLen-1]
	for i := 0; i < BlockLen; i++ {
		dst[i] = s[i%4][i/4]
	}
}

// Bytes returns the 16 bytes of s in block order. It is the inverse of Encode.
func (s State) Bytes() []byte {
	out := make([]byte, BlockLen)
	s.store(out)
	return out
}

// Column returns column c of s
func (s *State) Column(c int) Word {
	return Word{s[0][c], s[1][c], s[2][c], s[3][c]}
}

// SetColumn overwrites column c of s with w
func (s *State) SetColumn(c int, w Word) {
	s[0][c] = w[0]
	s[1][c] = w[1]
	s[2][c] = w[2]
	s[3][c] = w[3]
}
