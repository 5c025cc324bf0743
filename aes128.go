// Package aes128 implements the AES-128 block cipher encryption path and
// an ECB driver that encrypts arbitrary-length input block by block.
//
// Decryption and chained modes are not provided. The implementation is not
// constant-time.
package aes128

import (
	"crypto/cipher"
	"errors"
	"fmt"
)

// Algorithm parameters
const (
	KeySize  = 16 // 128 bits
	BlockLen = 16 // 128 bits
	Rounds   = 10
)

var (
	// ErrInvalidKeyLength is returned for keys longer than 16 bytes
	ErrInvalidKeyLength = errors.New("aes128: key must be at most 16 bytes")

	// ErrInvalidBlockLength is returned when a block is not exactly 16 bytes
	ErrInvalidBlockLength = errors.New("aes128: block must be exactly 16 bytes")
)

// Cipher is an AES-128 instance with its round keys expanded once. The same
// schedule is applied to every block.
type Cipher struct {
	ks Schedule
	hw cipher.Block // nil unless hardware AES is in use
}

// NewCipher creates a Cipher using DefaultConfig.
func NewCipher(key []byte) (*Cipher, error) {
	return NewCipherWithConfig(key, DefaultConfig())
}

// NewCipherWithConfig creates a Cipher. Keys shorter than 16 bytes are
// padded with cfg.KeyPadByte.
func NewCipherWithConfig(key []byte, cfg Config) (*Cipher, error) {
	padded, err := PadKey(key, cfg.KeyPadByte)
	if err != nil {
		return nil, err
	}

	var k State
	k.load(padded)

	c := &Cipher{ks: ExpandKey(k)}
	if cfg.UseHardware {
		c.initHardware(padded)
	}
	return c, nil
}

// PadKey returns key extended to 16 bytes with pad
func PadKey(key []byte, pad byte) ([]byte, error) {
	if len(key) > KeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(key))
	}
	out := make([]byte, KeySize)
	n := copy(out, key)
	for i := n; i < KeySize; i++ {
		out[i] = pad
	}
	return out, nil
}

// Schedule returns the expanded round keys
func (c *Cipher) Schedule() Schedule {
	return c.ks
}

// EncryptBlock encrypts exactly one 16-byte block
func (c *Cipher) EncryptBlock(src []byte) ([]byte, error) {
	if len(src) != BlockLen {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidBlockLength, len(src))
	}
	dst := make([]byte, BlockLen)
	c.encryptBlockOptimized(dst, src)
	return dst, nil
}

// Encrypt encrypts plaintext in ECB fashion. A trailing partial block is
// zero padded, so the result length is len(plaintext) rounded up to a
// multiple of 16. Empty input gives empty output.
func (c *Cipher) Encrypt(plaintext []byte) []byte {
	ct := make([]byte, 0, (len(plaintext)+BlockLen-1)/BlockLen*BlockLen)
	forEachChunkZeroPadded(plaintext, BlockLen, func(block []byte) {
		var out [BlockLen]byte
		c.encryptBlockOptimized(out[:], block)
		ct = append(ct, out[:]...)
	})
	return ct
}

// Blocks encrypts plaintext like Encrypt but returns each ciphertext block
// separately. The blocks share one backing array.
func (c *Cipher) Blocks(plaintext []byte) [][]byte {
	ct := c.Encrypt(plaintext)
	blocks := make([][]byte, 0, len(ct)/BlockLen)
	for i := 0; i < len(ct); i += BlockLen {
		blocks = append(blocks, ct[i:i+BlockLen:i+BlockLen])
	}
	return blocks
}

// Encrypt encrypts plaintext under key with DefaultConfig
func Encrypt(plaintext, key []byte) ([]byte, error) {
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	return c.Encrypt(plaintext), nil
}
