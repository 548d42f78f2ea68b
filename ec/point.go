package ec

import (
	"encoding/hex"
	"math/big"
)

// Point byte encoding prefixes per SEC1.
const (
	pubkeyCompressedEven byte = 0x02
	pubkeyCompressedOdd  byte = 0x03
	pubkeyUncompressed   byte = 0x04
	pubkeyHybridEven     byte = 0x06
	pubkeyHybridOdd      byte = 0x07
)

// Point is an affine secp256k1 point, or the point at infinity. Points
// are immutable after creation; every operation returns a fresh point.
type Point struct {
	x, y     *big.Int
	infinity bool
}

// Infinity returns the point at infinity, the group identity.
func Infinity() *Point {
	return &Point{infinity: true}
}

// NewPoint returns the affine point (x, y) after validating it lies on
// the curve.
func NewPoint(x, y *big.Int) (*Point, error) {
	p := &Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y)}
	if !p.onCurve() {
		return nil, errorf(ErrPointNotOnCurve, "point (%x, %x) is not on the curve", x, y)
	}
	return p, nil
}

// IsInfinity returns whether the point is the group identity.
func (p *Point) IsInfinity() bool {
	return p.infinity
}

// XY returns copies of the affine coordinates. Asking the point at
// infinity for coordinates is an error; it has none.
func (p *Point) XY() (x, y *big.Int, err error) {
	if p.infinity {
		return nil, nil, makeError(ErrInfinityPoint, "point at infinity has no affine coordinates")
	}
	return new(big.Int).Set(p.x), new(big.Int).Set(p.y), nil
}

func (p *Point) onCurve() bool {
	// y^2 = x^3 + 7, with both sides reduced mod p.
	if p.x.Sign() < 0 || p.x.Cmp(S256().P) >= 0 ||
		p.y.Sign() < 0 || p.y.Cmp(S256().P) >= 0 {
		return false
	}
	lhs := pSqr(p.y)
	rhs := pAdd(pMul(pSqr(p.x), p.x), S256().B)
	return lhs.Cmp(rhs) == 0
}

// Validate returns nil when the point satisfies the curve equation.
// The point at infinity is rejected; it is a valid group element but
// has no coordinates to check.
func (p *Point) Validate() error {
	if p.infinity {
		return makeError(ErrInvalidPoint, "point at infinity cannot be validated")
	}
	if !p.onCurve() {
		return errorf(ErrPointNotOnCurve, "point (%x, %x) is not on the curve", p.x, p.y)
	}
	return nil
}

// Eq returns whether two points are the same group element.
func (p *Point) Eq(q *Point) bool {
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// Neg returns -p.
func (p *Point) Neg() *Point {
	if p.infinity {
		return Infinity()
	}
	return &Point{x: new(big.Int).Set(p.x), y: pSub(new(big.Int), p.y)}
}

// Add returns p + q.
func (p *Point) Add(q *Point) *Point {
	if p.infinity {
		return q.copy()
	}
	if q.infinity {
		return p.copy()
	}
	return p.ToJacobian().AddAffine(q).ToAffine()
}

// Double returns 2*p.
func (p *Point) Double() *Point {
	return p.ToJacobian().Double().ToAffine()
}

func (p *Point) copy() *Point {
	if p.infinity {
		return Infinity()
	}
	return &Point{x: new(big.Int).Set(p.x), y: new(big.Int).Set(p.y)}
}

// yParityOdd reports the parity of the y coordinate.
func (p *Point) yParityOdd() bool {
	return p.y.Bit(0) == 1
}

// FromX recovers the point with the given x coordinate and y parity.
// Roughly half of all field values have no matching curve point; those
// return ErrPointNotOnCurve.
func FromX(x *big.Int, oddY bool) (*Point, error) {
	if x.Sign() < 0 || x.Cmp(S256().P) >= 0 {
		return nil, errorf(ErrMalformedPoint, "x coordinate %x out of field range", x)
	}
	ySq := pAdd(pMul(pSqr(x), x), S256().B)
	y, ok := pSqrt(ySq)
	if !ok {
		return nil, errorf(ErrPointNotOnCurve, "no point with x coordinate %x", x)
	}
	if (y.Bit(0) == 1) != oddY {
		y = pSub(new(big.Int), y)
	}
	return &Point{x: new(big.Int).Set(x), y: y}, nil
}

// Encode serializes the point per SEC1: 33 bytes 02/03||x compressed,
// 65 bytes 04||x||y uncompressed.
func (p *Point) Encode(compressed bool) ([]byte, error) {
	if p.infinity {
		return nil, makeError(ErrInfinityPoint, "point at infinity cannot be encoded")
	}
	byteSize := S256().ByteSize
	if compressed {
		out := make([]byte, 1+byteSize)
		out[0] = pubkeyCompressedEven
		if p.yParityOdd() {
			out[0] = pubkeyCompressedOdd
		}
		p.x.FillBytes(out[1:])
		return out, nil
	}
	out := make([]byte, 1+2*byteSize)
	out[0] = pubkeyUncompressed
	p.x.FillBytes(out[1 : 1+byteSize])
	p.y.FillBytes(out[1+byteSize:])
	return out, nil
}

// DecodePoint parses a SEC1 encoded point: compressed (02/03),
// uncompressed (04), or hybrid (06/07). Hybrid parity is checked
// against the final byte of the encoding, matching the widely deployed
// decoder behavior rather than re-deriving it from the y value. The
// decoded point is validated against the curve equation.
func DecodePoint(b []byte) (*Point, error) {
	byteSize := S256().ByteSize
	if len(b) == 0 {
		return nil, makeError(ErrMalformedPoint, "empty point bytes")
	}

	format := b[0]
	switch format {
	case pubkeyCompressedEven, pubkeyCompressedOdd:
		if len(b) != 1+byteSize {
			return nil, errorf(ErrMalformedPoint,
				"compressed point is %d bytes, want %d", len(b), 1+byteSize)
		}
		x := new(big.Int).SetBytes(b[1:])
		return FromX(x, format == pubkeyCompressedOdd)

	case pubkeyUncompressed, pubkeyHybridEven, pubkeyHybridOdd:
		if len(b) != 1+2*byteSize {
			return nil, errorf(ErrMalformedPoint,
				"uncompressed point is %d bytes, want %d", len(b), 1+2*byteSize)
		}
		if format == pubkeyHybridEven || format == pubkeyHybridOdd {
			expected := pubkeyHybridEven + (b[len(b)-1] & 1)
			if format != expected {
				return nil, makeError(ErrMalformedPoint, "hybrid point parity mismatch")
			}
		}
		x := new(big.Int).SetBytes(b[1 : 1+byteSize])
		y := new(big.Int).SetBytes(b[1+byteSize:])
		return NewPoint(x, y)

	default:
		return nil, errorf(ErrMalformedPoint, "unknown point prefix 0x%02x", format)
	}
}

// String returns the compressed encoding as hex, or "infinity".
func (p *Point) String() string {
	enc, err := p.Encode(true)
	if err != nil {
		return "infinity"
	}
	return hex.EncodeToString(enc)
}

// PointFromHex decodes a hex SEC1 point encoding.
func PointFromHex(s string) (*Point, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errorf(ErrMalformedPoint, "invalid point hex: %v", err)
	}
	return DecodePoint(b)
}

// Mul returns k*p via windowed non-adjacent form recoding. The scalar
// is taken mod n; k = 0 yields infinity.
func (p *Point) Mul(k *big.Int) *Point {
	return wnafMul(p, nMod(k)).ToAffine()
}

// MulAdd returns k1*p1 + k2*p2 in one interleaved pass, splitting each
// scalar with the curve endomorphism. ECDSA verification uses it for
// u1*G + u2*Q.
func MulAdd(k1 *big.Int, p1 *Point, k2 *big.Int, p2 *Point) *Point {
	return endoWnafMulAdd(
		[]*Point{p1, p2},
		[]*big.Int{nMod(k1), nMod(k2)},
	).ToAffine()
}
