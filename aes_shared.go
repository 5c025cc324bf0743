package aes128

import "crypto/aes"

// Shared implementations used by both hardware and generic builds

// SupportsHardwareAES reports whether the CPU has AES instructions
func SupportsHardwareAES() bool {
	return hasAES
}

// initHardware prepares the hardware block for c when it was requested and
// the CPU supports it. Otherwise c stays on the generic path.
func (c *Cipher) initHardware(key []byte) {
	if !hasAES {
		return
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		// key is always 16 bytes here
		panic("initHardware: " + err.Error())
	}
	c.hw = block
}

// encryptBlockOptimized uses the hardware block when one is set up
func (c *Cipher) encryptBlockOptimized(dst, src []byte) {
	if c.hw != nil {
		c.hw.Encrypt(dst, src)
		return
	}
	c.encryptBlockGeneric(dst, src)
}

// encryptBlockGeneric is the pure Go round pipeline
func (c *Cipher) encryptBlockGeneric(dst, src []byte) {
	if len(src) != BlockLen {
		panic("encryptBlockGeneric: input must be exactly 16 bytes")
	}
	if len(dst) != BlockLen {
		panic("encryptBlockGeneric: output must be exactly 16 bytes")
	}

	var s State
	s.load(src)

	s.AddRoundKey(&c.ks[0])

	for r := 1; r < Rounds; r++ {
		s.SubBytes()
		s.ShiftRows()
		s.MixColumns()
		s.AddRoundKey(&c.ks[r])
	}

	// Final round has no MixColumns
	s.SubBytes()
	s.ShiftRows()
	s.AddRoundKey(&c.ks[Rounds])

	s.store(dst)
}
