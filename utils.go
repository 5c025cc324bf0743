package aes128

// zeroPad pads data with zeros to make its length a multiple of blockSize
func zeroPad(data []byte, blockSize int) []byte {
	if blockSize <= 0 {
		panic("zeroPad: blockSize must be positive")
	}

	padLen := (blockSize - (len(data) % blockSize)) % blockSize
	if padLen == 0 {
		return data
	}

	result := make([]byte, len(data)+padLen)
	copy(result, data)
	return result
}

// forEachChunkZeroPadded iterates over blockSize-byte chunks of data.
// Full blocks are passed without copying; a trailing partial block is
// copied into a zero-filled buffer so fn never sees a short slice.
func forEachChunkZeroPadded(data []byte, blockSize int, fn func([]byte)) {
	if blockSize <= 0 {
		panic("forEachChunkZeroPadded: blockSize must be positive")
	}

	numFullBlocks := len(data) / blockSize

	for i := 0; i < numFullBlocks; i++ {
		start := i * blockSize
		end := start + blockSize
		fn(data[start:end])
	}

	remainder := len(data) % blockSize
	if remainder != 0 {
		fn(zeroPad(data[len(data)-remainder:], blockSize))
	}
}
