package hashes

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 derives a key of keyLen bytes from password and salt using the
// named PRF. Only "sha512" is supported; anything else is an error.
func PBKDF2(password, salt []byte, iterations, keyLen int, algorithm string) ([]byte, error) {
	if algorithm != "sha512" {
		return nil, errors.Errorf("pbkdf2: unsupported algorithm %q", algorithm)
	}
	if iterations < 1 {
		return nil, errors.Errorf("pbkdf2: iteration count %d out of range", iterations)
	}
	if keyLen < 1 {
		return nil, errors.Errorf("pbkdf2: derived key length %d out of range", keyLen)
	}
	if currentBackend() == Accelerated {
		return pbkdf2.Key(password, salt, iterations, keyLen, New512), nil
	}
	return pbkdf2SHA512(password, salt, iterations, keyLen), nil
}

// pbkdf2SHA512 is the portable derivation. Each output block i is
// U1 xor U2 xor ... xor Uc where U1 = PRF(password, salt || be32(i)).
func pbkdf2SHA512(password, salt []byte, iterations, keyLen int) []byte {
	prf := NewHMAC(New512, password)
	hashLen := prf.Size()
	numBlocks := (keyLen + hashLen - 1) / hashLen

	var buf [4]byte
	dk := make([]byte, 0, numBlocks*hashLen)
	u := make([]byte, hashLen)
	for block := 1; block <= numBlocks; block++ {
		prf.Reset()
		prf.Write(salt)
		binary.BigEndian.PutUint32(buf[:], uint32(block))
		prf.Write(buf[:])
		dk = prf.Sum(dk)
		t := dk[len(dk)-hashLen:]
		copy(u, t)

		for n := 2; n <= iterations; n++ {
			prf.Reset()
			prf.Write(u)
			u = u[:0]
			u = prf.Sum(u)
			for x := range u {
				t[x] ^= u[x]
			}
		}
	}
	return dk[:keyLen]
}
