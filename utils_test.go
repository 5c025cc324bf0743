package aes128

import "testing"

// TestUtilityFunctions tests the chunking helpers
func TestUtilityFunctions(t *testing.T) {
	// Test zero padding
	data := []byte{0x01, 0x02, 0x03}
	padded := zeroPad(data, 8)
	expectedPad := []byte{0x01, 0x02, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00}
	if hexEncode(padded) != hexEncode(expectedPad) {
		t.Errorf("zeroPad failed\nExpected: %s\nGot:      %s",
			hexEncode(expectedPad), hexEncode(padded))
	}
	if len(zeroPad(nil, 16)) != 0 {
		t.Error("zeroPad of empty input should stay empty")
	}

	// Test chunk iteration
	var chunks []string
	forEachChunkZeroPadded([]byte{1, 2, 3, 4, 5}, 4, func(b []byte) {
		chunks = append(chunks, hexEncode(b))
	})
	if len(chunks) != 2 || chunks[0] != "01020304" || chunks[1] != "05000000" {
		t.Errorf("forEachChunkZeroPadded failed: %v", chunks)
	}
}
