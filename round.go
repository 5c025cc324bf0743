package aes128

// SubBytes replaces every byte of the state through the S-box
func (s *State) SubBytes() {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] = sbox[s[r][c]]
		}
	}
}

// ShiftRows rotates row r left by r positions
func (s *State) ShiftRows() {
	for r := 1; r < 4; r++ {
		var row [4]byte
		for c := 0; c < 4; c++ {
			row[c] = s[r][(c+r)%4]
		}
		s[r] = row
	}
}

// MixColumns multiplies each column by the MixColumns matrix over GF(2^8)
func (s *State) MixColumns() {
	for c := 0; c < 4; c++ {
		col := s.Column(c)
		var out Word
		for r := 0; r < 4; r++ {
			out[r] = Mul(mixMatrix[r][0], col[0]) ^
				Mul(mixMatrix[r][1], col[1]) ^
				Mul(mixMatrix[r][2], col[2]) ^
				Mul(mixMatrix[r][3], col[3])
		}
		s.SetColumn(c, out)
	}
}

// AddRoundKey XORs the round key into the state. Applying it twice with the
// same key restores the original state.
func (s *State) AddRoundKey(k *State) {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] ^= k[r][c]
		}
	}
}
