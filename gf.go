package aes128

// Arithmetic in GF(2^8) modulo x^8 + x^4 + x^3 + x + 1 (0x11B)

// reduction is the low byte of the AES reduction polynomial
const reduction = 0x1B

// xtime multiplies b by x (i.e. by 2) in GF(2^8)
func xtime(b byte) byte {
	hi := b & 0x80
	b <<= 1
	if hi != 0 {
		b ^= reduction
	}
	return b
}

// Mul multiplies a by b in GF(2^8).
//
// MixColumns only needs the coefficients 1, 2 and 3, but the routine is
// general so that any coefficient can be used.
func Mul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		a = xtime(a)
		b >>= 1
	}
	return p
}
