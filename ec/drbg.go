package ec

import (
	"github.com/quellen-io/primitives/hashes"
)

// HmacDRBG is the HMAC-SHA256 deterministic bit generator from
// RFC 6979 section 3.2. Deterministic signing seeds it with the
// private key and message digest; callers needing reproducible
// per-input byte streams can use it directly.
//
// An HmacDRBG is stateful and not safe for concurrent use.
type HmacDRBG struct {
	k []byte
	v []byte
}

// NewHmacDRBG instantiates the generator from the concatenation of the
// seed parts.
func NewHmacDRBG(seed ...[]byte) *HmacDRBG {
	d := &HmacDRBG{
		k: make([]byte, 32),
		v: make([]byte, 32),
	}
	for i := range d.v {
		d.v[i] = 0x01
	}
	var material []byte
	for _, part := range seed {
		material = append(material, part...)
	}
	d.update(material)
	return d
}

// update performs the K/V state transition, mixing in the provided
// data when present.
func (d *HmacDRBG) update(data []byte) {
	d.k = hashes.Sha256HMAC(d.k, concat(d.v, []byte{0x00}, data))
	d.v = hashes.Sha256HMAC(d.k, d.v)
	if len(data) > 0 {
		d.k = hashes.Sha256HMAC(d.k, concat(d.v, []byte{0x01}, data))
		d.v = hashes.Sha256HMAC(d.k, d.v)
	}
}

// Generate returns the next length bytes of the stream and steps the
// state so consecutive calls yield fresh output.
func (d *HmacDRBG) Generate(length int) []byte {
	var out []byte
	for len(out) < length {
		d.v = hashes.Sha256HMAC(d.k, d.v)
		out = append(out, d.v...)
	}
	d.update(nil)
	return out[:length]
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
