package hashes

import (
	"encoding/binary"
	"hash"
	"math/bits"
)

// RIPEMD-160 block and digest sizes in bytes.
const (
	Size160      = 20
	BlockSize160 = 64
)

// Message word selection per step, left and right lines.
var md160nl = [80]uint{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
	3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
	1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
	4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
}

var md160nr = [80]uint{
	5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
	6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
	15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
	8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
	12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
}

// Rotation amounts per step, left and right lines.
var md160rl = [80]int{
	11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
	7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
	11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
	11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
	9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
}

var md160rr = [80]int{
	8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
	9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
	9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
	15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
	8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
}

var md160kl = [5]uint32{0, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xa953fd4e}

var md160kr = [5]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x7a6d76e9, 0}

// digest160 is the RIPEMD-160 state machine. Unlike the SHA family it is
// little-endian throughout, including the trailing bit-length.
type digest160 struct {
	h   [5]uint32
	x   [BlockSize160]byte
	nx  int
	len uint64
}

// New160 returns a new RIPEMD-160 digest.
func New160() hash.Hash {
	d := new(digest160)
	d.Reset()
	return d
}

func (d *digest160) Reset() {
	d.h = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}
	d.nx = 0
	d.len = 0
}

func (d *digest160) Size() int { return Size160 }

func (d *digest160) BlockSize() int { return BlockSize160 }

func (d *digest160) Write(p []byte) (n int, err error) {
	n = len(p)
	d.len += uint64(n)
	if d.nx > 0 {
		c := copy(d.x[d.nx:], p)
		d.nx += c
		if d.nx == BlockSize160 {
			d.block(d.x[:])
			d.nx = 0
		}
		p = p[c:]
	}
	for len(p) >= BlockSize160 {
		d.block(p[:BlockSize160])
		p = p[BlockSize160:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return n, nil
}

func (d *digest160) Sum(in []byte) []byte {
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:]...)
}

func (d *digest160) checkSum() [Size160]byte {
	msgLen := d.len
	var pad [BlockSize160]byte
	pad[0] = 0x80
	var t uint64
	if msgLen%64 < 56 {
		t = 56 - msgLen%64
	} else {
		t = 64 + 56 - msgLen%64
	}
	d.Write(pad[:t])
	var length [8]byte
	binary.LittleEndian.PutUint64(length[:], msgLen<<3)
	d.Write(length[:])

	var out [Size160]byte
	for i, v := range d.h {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
	return out
}

func md160f(rnd int, x, y, z uint32) uint32 {
	switch rnd {
	case 0:
		return x ^ y ^ z
	case 1:
		return (x & y) | (^x & z)
	case 2:
		return (x | ^y) ^ z
	case 3:
		return (x & z) | (y & ^z)
	default:
		return x ^ (y | ^z)
	}
}

func (d *digest160) block(p []byte) {
	var x [16]uint32
	for i := 0; i < 16; i++ {
		x[i] = binary.LittleEndian.Uint32(p[i*4:])
	}

	al, bl, cl, dl, el := d.h[0], d.h[1], d.h[2], d.h[3], d.h[4]
	ar, br, cr, dr, er := al, bl, cl, dl, el
	for i := 0; i < 80; i++ {
		rnd := i >> 4

		t := bits.RotateLeft32(al+md160f(rnd, bl, cl, dl)+x[md160nl[i]]+md160kl[rnd], md160rl[i]) + el
		al, bl, cl, dl, el = el, t, bl, bits.RotateLeft32(cl, 10), dl

		t = bits.RotateLeft32(ar+md160f(4-rnd, br, cr, dr)+x[md160nr[i]]+md160kr[rnd], md160rr[i]) + er
		ar, br, cr, dr, er = er, t, br, bits.RotateLeft32(cr, 10), dr
	}

	t := d.h[1] + cl + dr
	d.h[1] = d.h[2] + dl + er
	d.h[2] = d.h[3] + el + ar
	d.h[3] = d.h[4] + al + br
	d.h[4] = d.h[0] + bl + cr
	d.h[0] = t
}
