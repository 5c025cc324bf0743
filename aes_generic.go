//go:build !arm64

package aes128

import "golang.org/x/sys/cpu"

// Feature detection for non-ARM64 platforms. On anything other than x86
// the flag stays false and the pure Go rounds are used.

// hasAES indicates if the CPU supports AES-NI
var hasAES = cpu.X86.HasAES
