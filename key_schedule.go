package aes128

// Schedule holds the round keys for rounds 0 through 10.
// Schedule[0] is the cipher key itself.
type Schedule [Rounds + 1]State

// NextRoundKey advances k in place from round key round-1 to round key round.
// round must be in 1..10.
func NextRoundKey(k *State, round int) {
	if round < 1 || round > Rounds {
		panic("NextRoundKey: round must be in 1..10")
	}

	// RotWord, SubWord and Rcon on the last column
	last := k.Column(3)
	temp := Word{
		sbox[last[1]] ^ rcon[round],
		sbox[last[2]],
		sbox[last[3]],
		sbox[last[0]],
	}

	for c := 0; c < 4; c++ {
		col := k.Column(c)
		for i := range col {
			col[i] ^= temp[i]
		}
		k.SetColumn(c, col)
		temp = col
	}
}

// ExpandKey derives all eleven round keys from the cipher key. Each key is
// computed from the one before it, so the sequence is always built in order.
func ExpandKey(key State) Schedule {
	var ks Schedule
	ks[0] = key
	k := key
	for r := 1; r <= Rounds; r++ {
		NextRoundKey(&k, r)
		ks[r] = k
	}
	return ks
}
