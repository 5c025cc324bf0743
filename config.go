package aes128

// Config controls how a Cipher prepares its key and which block
// implementation it uses.
type Config struct {
	// KeyPadByte fills a short key up to 16 bytes.
	KeyPadByte byte

	// UseHardware selects the CPU's AES instructions when they are
	// available, falling back to the pure Go rounds otherwise. The output
	// is identical either way.
	UseHardware bool
}

// DefaultConfig returns zero-byte key padding and the pure Go rounds.
func DefaultConfig() Config {
	return Config{
		KeyPadByte:  0x00,
		UseHardware: false,
	}
}
