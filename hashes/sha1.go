package hashes

import (
	"encoding/binary"
	"hash"
	"math/bits"
)

// SHA-1 block and digest sizes in bytes.
const (
	Size1      = 20
	BlockSize1 = 64
)

// digest1 is the classic five-word SHA-1 state machine.
type digest1 struct {
	h   [5]uint32
	x   [BlockSize1]byte
	nx  int
	len uint64
	w   [80]uint32
}

// New1 returns a new SHA-1 digest.
func New1() hash.Hash {
	d := new(digest1)
	d.Reset()
	return d
}

func (d *digest1) Reset() {
	d.h = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}
	d.nx = 0
	d.len = 0
}

func (d *digest1) Size() int { return Size1 }

func (d *digest1) BlockSize() int { return BlockSize1 }

func (d *digest1) Write(p []byte) (n int, err error) {
	n = len(p)
	d.len += uint64(n)
	if d.nx > 0 {
		c := copy(d.x[d.nx:], p)
		d.nx += c
		if d.nx == BlockSize1 {
			d.block(d.x[:])
			d.nx = 0
		}
		p = p[c:]
	}
	for len(p) >= BlockSize1 {
		d.block(p[:BlockSize1])
		p = p[BlockSize1:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return n, nil
}

func (d *digest1) Sum(in []byte) []byte {
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:]...)
}

func (d *digest1) checkSum() [Size1]byte {
	msgLen := d.len
	var pad [BlockSize1]byte
	pad[0] = 0x80
	var t uint64
	if msgLen%64 < 56 {
		t = 56 - msgLen%64
	} else {
		t = 64 + 56 - msgLen%64
	}
	d.Write(pad[:t])
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], msgLen<<3)
	d.Write(length[:])

	var out [Size1]byte
	for i, v := range d.h {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}
	return out
}

func (d *digest1) block(p []byte) {
	w := &d.w
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(p[i*4:])
	}
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, dd, e := d.h[0], d.h[1], d.h[2], d.h[3], d.h[4]
	for i := 0; i < 80; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f = (b & c) | (^b & dd)
			k = 0x5a827999
		case i < 40:
			f = b ^ c ^ dd
			k = 0x6ed9eba1
		case i < 60:
			f = (b & c) | (b & dd) | (c & dd)
			k = 0x8f1bbcdc
		default:
			f = b ^ c ^ dd
			k = 0xca62c1d6
		}
		t := bits.RotateLeft32(a, 5) + f + e + k + w[i]
		e, dd, c, b, a = dd, c, bits.RotateLeft32(b, 30), a, t
	}

	d.h[0] += a
	d.h[1] += b
	d.h[2] += c
	d.h[3] += dd
	d.h[4] += e
}
