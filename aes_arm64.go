//go:build arm64

package aes128

import "golang.org/x/sys/cpu"

// ARM64 feature detection

// hasAES indicates if the CPU supports the ARMv8 AES instructions
var hasAES = cpu.ARM64.HasAES
