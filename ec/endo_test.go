package ec

import (
	"math/big"
	"math/rand"
	"testing"
)

// splitScalar must satisfy k1 + k2*lambda = k (mod n) with both
// components at most half length.
func TestSplitScalar(t *testing.T) {
	c := S256()
	rng := rand.New(rand.NewSource(30))

	scalars := []*big.Int{
		big.NewInt(1),
		new(big.Int).Set(c.lambda),
		new(big.Int).Sub(c.N, big.NewInt(1)),
		new(big.Int).Set(c.HalfN),
	}
	for i := 0; i < 128; i++ {
		scalars = append(scalars, randScalar(rng))
	}

	for _, k := range scalars {
		k1, k2 := splitScalar(k)

		recombined := new(big.Int).Mul(k2, c.lambda)
		recombined.Add(recombined, k1)
		recombined.Mod(recombined, c.N)
		if recombined.Cmp(k) != 0 {
			t.Fatalf("k1 + k2*lambda != k for k=%x (k1=%x k2=%x)", k, k1, k2)
		}

		if new(big.Int).Abs(k1).BitLen() > 129 || new(big.Int).Abs(k2).BitLen() > 129 {
			t.Fatalf("split components too long for k=%x: %d and %d bits",
				k, k1.BitLen(), k2.BitLen())
		}
	}
}

// The endomorphism phi(x, y) = (beta*x, y) must equal multiplication
// by lambda.
func TestEndomorphism(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for i := 0; i < 8; i++ {
		p := randPoint(rng)
		if !phi(p).Eq(p.Mul(S256().lambda)) {
			t.Fatal("phi(p) != lambda*p")
		}
	}
	if err := phi(S256().G).Validate(); err != nil {
		t.Fatalf("phi(G) off curve: %v", err)
	}
	if !phi(Infinity()).IsInfinity() {
		t.Fatal("phi(infinity) != infinity")
	}
}

func TestMulAddMatchesSeparate(t *testing.T) {
	rng := rand.New(rand.NewSource(32))
	g := S256().G

	for i := 0; i < 16; i++ {
		p := randPoint(rng)
		k1 := randScalar(rng)
		k2 := randScalar(rng)

		got := MulAdd(k1, g, k2, p)
		want := g.Mul(k1).Add(p.Mul(k2))
		if !got.Eq(want) {
			t.Fatalf("MulAdd mismatch for k1=%x k2=%x", k1, k2)
		}
	}
}

func TestMulAddEdgeCases(t *testing.T) {
	g := S256().G
	k := big.NewInt(11)
	zero := new(big.Int)

	if !MulAdd(k, g, zero, g).Eq(g.Mul(k)) {
		t.Fatal("zero second coefficient changed the result")
	}
	if !MulAdd(zero, g, zero, g).IsInfinity() {
		t.Fatal("all-zero MulAdd is not infinity")
	}
	if !MulAdd(k, Infinity(), k, Infinity()).IsInfinity() {
		t.Fatal("MulAdd over infinity is not infinity")
	}

	// k*G + k*(-G) cancels.
	if !MulAdd(k, g, k, g.Neg()).IsInfinity() {
		t.Fatal("k*G + k*(-G) is not infinity")
	}
}
