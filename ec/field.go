package ec

import (
	"encoding/hex"
	"math/big"
)

// Internal mod-p helpers. All inputs are canonically reduced values in
// [0, p) and all results are returned the same way; nothing here
// mutates its arguments.

func pAdd(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	if r.Cmp(S256().P) >= 0 {
		r.Sub(r, S256().P)
	}
	return r
}

func pSub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	if r.Sign() < 0 {
		r.Add(r, S256().P)
	}
	return r
}

// pMul reduces the 512-bit product with the pseudo-Mersenne identity
// 2^256 = 2^32 + 977 (mod p). Folding the high half twice leaves a
// value below 2p, so a single conditional subtraction finishes the
// reduction.
func pMul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return pReduce(r)
}

func pSqr(a *big.Int) *big.Int {
	r := new(big.Int).Mul(a, a)
	return pReduce(r)
}

func pReduce(r *big.Int) *big.Int {
	p := S256().P
	hi := new(big.Int)
	t := new(big.Int)
	for i := 0; i < 2; i++ {
		hi.Rsh(r, 256)
		if hi.Sign() == 0 {
			break
		}
		// r = lo + (hi << 32) + hi*977
		t.Lsh(hi, 32)
		t.Add(t, new(big.Int).Mul(hi, big977))
		r.And(r, mask256)
		r.Add(r, t)
	}
	if r.Cmp(p) >= 0 {
		r.Sub(r, p)
	}
	return r
}

var (
	big977  = big.NewInt(977)
	mask256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
)

func pInv(a *big.Int) (*big.Int, error) {
	if a.Sign() == 0 {
		return nil, makeError(ErrZeroInverse, "field inverse of zero")
	}
	return new(big.Int).ModInverse(a, S256().P), nil
}

// pSqrt returns a square root of a when one exists. p = 3 mod 4, so
// the candidate is a^((p+1)/4); squaring it back detects
// non-residues.
func pSqrt(a *big.Int) (*big.Int, bool) {
	p := S256().P
	e := new(big.Int).Add(p, big.NewInt(1))
	e.Rsh(e, 2)
	r := new(big.Int).Exp(a, e, p)
	if pSqr(r).Cmp(new(big.Int).Mod(a, p)) != 0 {
		return nil, false
	}
	return r, true
}

// FieldElement is an integer modulo the field prime p, always held
// canonically reduced. The zero value is the field element 0.
// Operations return fresh elements; a FieldElement is never mutated
// after creation.
type FieldElement struct {
	n *big.Int
}

// NewFieldElement returns v reduced into [0, p).
func NewFieldElement(v *big.Int) FieldElement {
	return FieldElement{n: new(big.Int).Mod(v, S256().P)}
}

// FieldElementFromBytes interprets b as an unsigned big-endian integer
// and reduces it into the field.
func FieldElementFromBytes(b []byte) FieldElement {
	return NewFieldElement(new(big.Int).SetBytes(b))
}

func (f FieldElement) big() *big.Int {
	if f.n == nil {
		return new(big.Int)
	}
	return f.n
}

// BigInt returns a copy of the element's value.
func (f FieldElement) BigInt() *big.Int {
	return new(big.Int).Set(f.big())
}

// Bytes returns the element as a 32-byte big-endian array.
func (f FieldElement) Bytes() [32]byte {
	var out [32]byte
	f.big().FillBytes(out[:])
	return out
}

// IsZero returns whether the element is 0.
func (f FieldElement) IsZero() bool {
	return f.big().Sign() == 0
}

// Equals returns whether two elements hold the same value.
func (f FieldElement) Equals(g FieldElement) bool {
	return f.big().Cmp(g.big()) == 0
}

// Add returns f + g mod p.
func (f FieldElement) Add(g FieldElement) FieldElement {
	return FieldElement{n: pAdd(f.big(), g.big())}
}

// Sub returns f - g mod p.
func (f FieldElement) Sub(g FieldElement) FieldElement {
	return FieldElement{n: pSub(f.big(), g.big())}
}

// Mul returns f * g mod p.
func (f FieldElement) Mul(g FieldElement) FieldElement {
	return FieldElement{n: pMul(f.big(), g.big())}
}

// Square returns f^2 mod p.
func (f FieldElement) Square() FieldElement {
	return FieldElement{n: pSqr(f.big())}
}

// Pow returns f^e mod p for a non-negative exponent.
func (f FieldElement) Pow(e *big.Int) FieldElement {
	return FieldElement{n: new(big.Int).Exp(f.big(), e, S256().P)}
}

// Inverse returns f^-1 mod p, or ErrZeroInverse when f is zero.
func (f FieldElement) Inverse() (FieldElement, error) {
	r, err := pInv(f.big())
	if err != nil {
		return FieldElement{}, err
	}
	return FieldElement{n: r}, nil
}

// Sqrt returns a square root of f and true when f is a quadratic
// residue, and false otherwise. A non-residue is an expected outcome
// during point decompression, not an error.
func (f FieldElement) Sqrt() (FieldElement, bool) {
	r, ok := pSqrt(f.big())
	if !ok {
		return FieldElement{}, false
	}
	return FieldElement{n: r}, true
}

// String returns the element as zero-padded hex.
func (f FieldElement) String() string {
	b := f.Bytes()
	return hex.EncodeToString(b[:])
}
