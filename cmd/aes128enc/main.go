// Command aes128enc encrypts a plaintext string with AES-128 and prints one
// hex ciphertext block per line.
//
// Usage:
//
//	aes128enc -k <key> -p <plaintext> [flags]
//
// Flags:
//
//	-k          Key text, up to 16 bytes
//	-key-hex    Key as hex, up to 32 digits (overrides -k)
//	-p          Plaintext to encrypt
//	-pad        Byte used to pad a short key (default 0; 13 pads with '\r')
//	-hw         Use hardware AES when the CPU supports it
//	-verbosity  Log level 0-4 (default 1)
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aes128/go-aes128"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("aes128enc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	keyText := fs.String("k", "", "Encryption key, up to 16 bytes")
	keyHex := fs.String("key-hex", "", "Encryption key as hex (overrides -k)")
	plaintext := fs.String("p", "", "Plaintext to encrypt")
	pad := fs.Uint("pad", 0, "Byte used to pad a short key")
	useHW := fs.Bool("hw", false, "Use hardware AES when available")
	verbosity := fs.Int("verbosity", 1, "Log level 0-4 (0=error, 4=debug)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := setupLogging(stderr, *verbosity)

	if *pad > 0xff {
		logger.Error("Invalid pad byte", "pad", *pad)
		return 1
	}

	key := []byte(*keyText)
	if *keyHex != "" {
		var err error
		key, err = hex.DecodeString(*keyHex)
		if err != nil {
			logger.Error("Invalid hex key", "err", err)
			return 1
		}
	}

	cfg := aes128.DefaultConfig()
	cfg.KeyPadByte = byte(*pad)
	cfg.UseHardware = *useHW

	c, err := aes128.NewCipherWithConfig(key, cfg)
	if err != nil {
		if errors.Is(err, aes128.ErrInvalidKeyLength) {
			logger.Error("Encryption key is too long", "max", aes128.KeySize, "got", len(key))
		} else {
			logger.Error("Failed to create cipher", "err", err)
		}
		return 1
	}

	logger.Info("Encrypting",
		"plaintext_len", len(*plaintext),
		"key_len", len(key),
		"hardware", cfg.UseHardware && aes128.SupportsHardwareAES(),
	)

	for i, block := range c.Blocks([]byte(*plaintext)) {
		logger.Debug("Encrypted block", "index", i)
		fmt.Fprintln(stdout, hex.EncodeToString(block))
	}
	return 0
}

// setupLogging maps a verbosity level to a text logger on w
func setupLogging(w io.Writer, verbosity int) *slog.Logger {
	var lvl slog.Level
	switch {
	case verbosity <= 0:
		lvl = slog.LevelError
	case verbosity == 1:
		lvl = slog.LevelWarn
	case verbosity == 2:
		lvl = slog.LevelInfo
	default:
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
