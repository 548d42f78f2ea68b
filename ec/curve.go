package ec

import (
	"math/big"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Number of cached odd-multiple tables. Each entry covers one base
// point, so a handful is plenty for the generator plus the public keys
// a process verifies against repeatedly.
const tableCacheSize = 64

// Curve houses the secp256k1 domain parameters together with the
// precomputed values scalar multiplication relies on. It is created
// once and never mutated afterwards; the only concurrent-write state,
// the multiple table cache, is safe for concurrent use on its own.
type Curve struct {
	// P is the field prime 2^256 - 2^32 - 977.
	P *big.Int

	// N is the order of the base point.
	N *big.Int

	// B is the constant term of the curve equation y^2 = x^3 + B.
	B *big.Int

	// Gx, Gy are the affine coordinates of the base point.
	Gx, Gy *big.Int

	// G is the base point.
	G *Point

	// HalfN is N >> 1, the canonical low-s boundary.
	HalfN *big.Int

	// ByteSize is the length of a serialized coordinate or scalar.
	ByteSize int

	// beta and lambda define the efficiently computable endomorphism
	// phi(x, y) = (beta*x, y) = lambda*(x, y).
	beta   *big.Int
	lambda *big.Int

	// Lattice basis for splitting a scalar into two half-length
	// components k1 + k2*lambda = k mod N.
	a1, b1, a2, b2 *big.Int

	tables *lru.Cache[tableKey, []*JacobianPoint]
}

var (
	secp256k1 Curve
	initonce  sync.Once
)

// fromHex converts the passed hex string into a big integer pointer
// and will panic if there is an error. This is only provided for the
// hard-coded constants so errors in the source code can be detected.
// It will only (and must only) be called with hard-coded values.
func fromHex(s string) *big.Int {
	r, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return r
}

func initS256() {
	c := &secp256k1
	c.P = fromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")
	c.N = fromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	c.B = big.NewInt(7)
	c.Gx = fromHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	c.Gy = fromHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
	c.G = &Point{x: c.Gx, y: c.Gy}
	c.HalfN = new(big.Int).Rsh(c.N, 1)
	c.ByteSize = 32

	c.beta = fromHex("7ae96a2b657c07106e64479eac3434e99cf0497512f58995c1396c28719501ee")
	c.lambda = fromHex("5363ad4cc05c30e0a5261c028812645a122e22ea20816678df02967c1b23bd72")
	c.a1 = fromHex("3086d221a7d46bcde86c90e49284eb15")
	c.b1 = new(big.Int).Neg(fromHex("e4437ed6010e88286f547fa90abfe4c3"))
	c.a2 = fromHex("114ca50f7a8e2f3f657c1108d9d44cfd8")
	c.b2 = new(big.Int).Set(c.a1)

	tables, err := lru.New[tableKey, []*JacobianPoint](tableCacheSize)
	if err != nil {
		panic(err)
	}
	c.tables = tables
}

// S256 returns the secp256k1 curve context.
func S256() *Curve {
	initonce.Do(initS256)
	return &secp256k1
}
