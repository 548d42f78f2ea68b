package hashes

import "hash"

// hmacState keeps the keyed inner and outer digests. Sum clones the inner
// digest so the state can keep accepting writes afterwards.
type hmacState struct {
	newHash func() hash.Hash
	inner   hash.Hash
	outer   hash.Hash
	ipad    []byte
	opad    []byte
}

// NewHMAC returns an HMAC instance keyed with key over the digest produced
// by h. Keys longer than the digest's block size are hashed down first.
func NewHMAC(h func() hash.Hash, key []byte) hash.Hash {
	hm := &hmacState{
		newHash: h,
		inner:   h(),
		outer:   h(),
	}
	bs := hm.inner.BlockSize()
	if len(key) > bs {
		hm.outer.Write(key)
		key = hm.outer.Sum(nil)
		hm.outer.Reset()
	}
	hm.ipad = make([]byte, bs)
	hm.opad = make([]byte, bs)
	copy(hm.ipad, key)
	copy(hm.opad, key)
	for i := range hm.ipad {
		hm.ipad[i] ^= 0x36
	}
	for i := range hm.opad {
		hm.opad[i] ^= 0x5c
	}
	hm.inner.Write(hm.ipad)
	return hm
}

func (hm *hmacState) Write(p []byte) (int, error) { return hm.inner.Write(p) }

func (hm *hmacState) Size() int { return hm.inner.Size() }

func (hm *hmacState) BlockSize() int { return hm.inner.BlockSize() }

func (hm *hmacState) Sum(in []byte) []byte {
	innerSum := hm.inner.Sum(nil)
	hm.outer.Reset()
	hm.outer.Write(hm.opad)
	hm.outer.Write(innerSum)
	return hm.outer.Sum(in)
}

func (hm *hmacState) Reset() {
	hm.inner.Reset()
	hm.inner.Write(hm.ipad)
}
