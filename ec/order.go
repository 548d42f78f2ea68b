package ec

import (
	"encoding/hex"
	"math/big"
)

// Internal mod-n helpers, mirroring the mod-p set in field.go. The
// order is not pseudo-Mersenne, so reduction is a plain Mod.

func nMod(a *big.Int) *big.Int {
	return new(big.Int).Mod(a, S256().N)
}

func nMul(a, b *big.Int) *big.Int {
	return nMod(new(big.Int).Mul(a, b))
}

func nInv(a *big.Int) (*big.Int, error) {
	if new(big.Int).Mod(a, S256().N).Sign() == 0 {
		return nil, makeError(ErrZeroInverse, "order inverse of zero")
	}
	return new(big.Int).ModInverse(a, S256().N), nil
}

// OrderElement is an integer modulo the group order n, always held
// canonically reduced. The zero value is 0. Operations return fresh
// elements; an OrderElement is never mutated after creation.
type OrderElement struct {
	n *big.Int
}

// NewOrderElement returns v reduced into [0, n).
func NewOrderElement(v *big.Int) OrderElement {
	return OrderElement{n: nMod(v)}
}

// OrderElementFromBytes interprets b as an unsigned big-endian integer
// and reduces it modulo n.
func OrderElementFromBytes(b []byte) OrderElement {
	return NewOrderElement(new(big.Int).SetBytes(b))
}

func (o OrderElement) big() *big.Int {
	if o.n == nil {
		return new(big.Int)
	}
	return o.n
}

// BigInt returns a copy of the element's value.
func (o OrderElement) BigInt() *big.Int {
	return new(big.Int).Set(o.big())
}

// Bytes returns the element as a 32-byte big-endian array.
func (o OrderElement) Bytes() [32]byte {
	var out [32]byte
	o.big().FillBytes(out[:])
	return out
}

// IsZero returns whether the element is 0.
func (o OrderElement) IsZero() bool {
	return o.big().Sign() == 0
}

// Cmp compares two elements, returning -1, 0, or 1.
func (o OrderElement) Cmp(q OrderElement) int {
	return o.big().Cmp(q.big())
}

// IsHigh returns whether the element exceeds n/2.
func (o OrderElement) IsHigh() bool {
	return o.big().Cmp(S256().HalfN) > 0
}

// Add returns o + q mod n.
func (o OrderElement) Add(q OrderElement) OrderElement {
	r := new(big.Int).Add(o.big(), q.big())
	if r.Cmp(S256().N) >= 0 {
		r.Sub(r, S256().N)
	}
	return OrderElement{n: r}
}

// Mul returns o * q mod n.
func (o OrderElement) Mul(q OrderElement) OrderElement {
	return OrderElement{n: nMul(o.big(), q.big())}
}

// Neg returns -o mod n.
func (o OrderElement) Neg() OrderElement {
	if o.IsZero() {
		return OrderElement{}
	}
	return OrderElement{n: new(big.Int).Sub(S256().N, o.big())}
}

// Inverse returns o^-1 mod n, or ErrZeroInverse when o is zero.
func (o OrderElement) Inverse() (OrderElement, error) {
	r, err := nInv(o.big())
	if err != nil {
		return OrderElement{}, err
	}
	return OrderElement{n: r}, nil
}

// String returns the element as zero-padded hex.
func (o OrderElement) String() string {
	b := o.Bytes()
	return hex.EncodeToString(b[:])
}
