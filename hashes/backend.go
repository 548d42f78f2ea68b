package hashes

import (
	"sync/atomic"

	miniosha "github.com/minio/sha256-simd"
)

// Backend selects between the portable digests in this package and
// accelerated third-party implementations for the hot one-shot paths.
type Backend int32

const (
	// Portable uses the pure-Go digests in this package everywhere.
	Portable Backend = iota

	// Accelerated routes one-shot SHA-256 through a SIMD implementation
	// and PBKDF2 through an optimized deriver. Streaming digests and all
	// outputs are unchanged.
	Accelerated
)

var backend atomic.Int32

// SetBackend switches the active backend. Safe to call concurrently with
// hashing; individual operations see one backend or the other, never a mix.
func SetBackend(b Backend) {
	backend.Store(int32(b))
}

func currentBackend() Backend {
	return Backend(backend.Load())
}

func sum256(data []byte) [Size256]byte {
	if currentBackend() == Accelerated {
		return miniosha.Sum256(data)
	}
	d := new(digest256)
	d.Reset()
	d.Write(data)
	return d.checkSum()
}
