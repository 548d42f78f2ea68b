package hashes

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// RFC 4231 test cases.
func TestHmacSha256Vectors(t *testing.T) {
	tests := []struct {
		key  []byte
		data []byte
		want string
	}{
		{
			bytes.Repeat([]byte{0x0b}, 20),
			[]byte("Hi There"),
			"b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7",
		},
		{
			[]byte("Jefe"),
			[]byte("what do ya want for nothing?"),
			"5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		},
		{
			bytes.Repeat([]byte{0xaa}, 131),
			[]byte("Test Using Larger Than Block-Size Key - Hash Key First"),
			"60e431591ee0b67f0d8a26aacbf5b77f8e0bc6213728c5140546040f0ee37f54",
		},
	}
	for i, test := range tests {
		got := hex.EncodeToString(Sha256HMAC(test.key, test.data))
		require.Equal(t, test.want, got, "case %d", i)
	}
}

func TestHmacSha512Vector(t *testing.T) {
	got := hex.EncodeToString(Sha512HMAC(
		bytes.Repeat([]byte{0x0b}, 20), []byte("Hi There")))
	want := "87aa7cdea5ef619d4ff0b4241a1d6cb02379f4e2ce4ec2787ad0b30545e17cde" +
		"daa833b7d6b8a702038b274eaea3f4e4be9d914eeb61f1702e696c203a126854"
	require.Equal(t, want, got)
}

// Reset must rekey the mac so it can authenticate a fresh message.
func TestHmacReset(t *testing.T) {
	key := []byte("Jefe")
	h := NewHMAC(New256, key)
	h.Write([]byte("throwaway"))
	h.Reset()
	h.Write([]byte("what do ya want for nothing?"))
	require.Equal(t, Sha256HMAC(key, []byte("what do ya want for nothing?")),
		h.Sum(nil))
}

// Sum on an hmac must be repeatable and non-destructive, matching the
// digest behavior it wraps.
func TestHmacSumNonDestructive(t *testing.T) {
	h := NewHMAC(New256, []byte("key"))
	h.Write([]byte("part one "))
	first := h.Sum(nil)
	second := h.Sum(nil)
	require.Equal(t, first, second)

	h.Write([]byte("part two"))
	require.Equal(t, Sha256HMAC([]byte("key"), []byte("part one part two")),
		h.Sum(nil))
}
