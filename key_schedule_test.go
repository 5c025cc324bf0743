package aes128

import "testing"

// Round keys from FIPS-197 Appendix A.1
var fipsRoundKeys = []string{
	"2b7e151628aed2a6abf7158809cf4f3c",
	"a0fafe1788542cb123a339392a6c7605",
	"f2c295f27a96b9435935807a7359f67f",
	"3d80477d4716fe3e1e237e446d7a883b",
	"ef44a541a8525b7fb671253bdb0bad00",
	"d4d1c6f87c839d87caf2b8bc11f915bc",
	"6d88a37a110b3efddbf98641ca0093fd",
	"4e54f70e5f5fc9f384a64fb24ea6dc4f",
	"ead27321b58dbad2312bf5607f8d292f",
	"ac7766f319fadc2128d12941575c006e",
	"d014f9a8c9ee2589e13f0cc8b6630ca6",
}

// TestExpandKey checks every round key against FIPS-197
func TestExpandKey(t *testing.T) {
	ks := ExpandKey(mustEncode(t, fipsRoundKeys[0]))
	for r, want := range fipsRoundKeys {
		if got := hexEncode(ks[r].Bytes()); got != want {
			t.Errorf("round %d key\nExpected: %s\nGot:      %s", r, want, got)
		}
	}
}

// TestNextRoundKeyStepwise checks the in-place recurrence one round at a time
func TestNextRoundKeyStepwise(t *testing.T) {
	k := mustEncode(t, fipsRoundKeys[0])
	for r := 1; r <= Rounds; r++ {
		NextRoundKey(&k, r)
		if got := hexEncode(k.Bytes()); got != fipsRoundKeys[r] {
			t.Fatalf("round %d key\nExpected: %s\nGot:      %s", r, fipsRoundKeys[r], got)
		}
	}
}

// TestNextRoundKeyDeterministic checks the same input always gives the same key
func TestNextRoundKeyDeterministic(t *testing.T) {
	prev := mustEncode(t, "000102030405060708090a0b0c0d0e0f")
	for r := 1; r <= Rounds; r++ {
		a, b := prev, prev
		NextRoundKey(&a, r)
		NextRoundKey(&b, r)
		if a != b {
			t.Fatalf("round %d: %v != %v", r, a, b)
		}
		if a == prev {
			t.Fatalf("round %d: key did not change", r)
		}
	}

	// Different round constants give different keys
	a, b := prev, prev
	NextRoundKey(&a, 1)
	NextRoundKey(&b, 2)
	if a == b {
		t.Error("rounds 1 and 2 produced the same key")
	}
}

// TestNextRoundKeyRange checks that out-of-range rounds panic
func TestNextRoundKeyRange(t *testing.T) {
	for _, r := range []int{0, -1, 11} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NextRoundKey(round %d) did not panic", r)
				}
			}()
			var k State
			NextRoundKey(&k, r)
		}()
	}
}

// TestCipherSchedule checks that a Cipher keeps the schedule it was built with
func TestCipherSchedule(t *testing.T) {
	c, err := NewCipher(hexDecode(fipsRoundKeys[0]))
	if err != nil {
		t.Fatalf("NewCipher failed: %v", err)
	}
	before := c.Schedule()
	c.Encrypt(make([]byte, 5*BlockLen))
	if c.Schedule() != before {
		t.Error("round keys changed after encrypting")
	}
	if got := hexEncode(before[Rounds].Bytes()); got != fipsRoundKeys[Rounds] {
		t.Errorf("last round key = %s", got)
	}
}
