package hashes

import "encoding/hex"

// Sha256 returns the SHA-256 digest of data.
func Sha256(data []byte) []byte {
	sum := sum256(data)
	return sum[:]
}

// Sha512 returns the SHA-512 digest of data.
func Sha512(data []byte) []byte {
	h := New512()
	h.Write(data)
	return h.Sum(nil)
}

// Sha1 returns the SHA-1 digest of data.
func Sha1(data []byte) []byte {
	h := New1()
	h.Write(data)
	return h.Sum(nil)
}

// Ripemd160 returns the RIPEMD-160 digest of data.
func Ripemd160(data []byte) []byte {
	h := New160()
	h.Write(data)
	return h.Sum(nil)
}

// Hash256 returns sha256(sha256(data)), the double hash used for block
// and transaction ids.
func Hash256(data []byte) []byte {
	return Sha256(Sha256(data))
}

// Hash160 returns ripemd160(sha256(data)), the short hash used for
// addresses.
func Hash160(data []byte) []byte {
	return Ripemd160(Sha256(data))
}

// Sha256HMAC returns the HMAC-SHA256 of data under key.
func Sha256HMAC(key, data []byte) []byte {
	h := NewHMAC(New256, key)
	h.Write(data)
	return h.Sum(nil)
}

// Sha512HMAC returns the HMAC-SHA512 of data under key.
func Sha512HMAC(key, data []byte) []byte {
	h := NewHMAC(New512, key)
	h.Write(data)
	return h.Sum(nil)
}

// Sha256Hex is Sha256 on a hex string input, returning hex.
func Sha256Hex(data string) (string, error) {
	b, err := hex.DecodeString(data)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(Sha256(b)), nil
}

// Sha512Hex is Sha512 on a hex string input, returning hex.
func Sha512Hex(data string) (string, error) {
	b, err := hex.DecodeString(data)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(Sha512(b)), nil
}

// Sha1Hex is Sha1 on a hex string input, returning hex.
func Sha1Hex(data string) (string, error) {
	b, err := hex.DecodeString(data)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(Sha1(b)), nil
}

// Ripemd160Hex is Ripemd160 on a hex string input, returning hex.
func Ripemd160Hex(data string) (string, error) {
	b, err := hex.DecodeString(data)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(Ripemd160(b)), nil
}

// Hash256Hex is Hash256 on a hex string input, returning hex.
func Hash256Hex(data string) (string, error) {
	b, err := hex.DecodeString(data)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(Hash256(b)), nil
}

// Hash160Hex is Hash160 on a hex string input, returning hex.
func Hash160Hex(data string) (string, error) {
	b, err := hex.DecodeString(data)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(Hash160(b)), nil
}
