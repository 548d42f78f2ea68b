package ec

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"
)

// randFieldInt returns a random integer in [0, p).
func randFieldInt(rng *rand.Rand) *big.Int {
	b := make([]byte, 32)
	rng.Read(b)
	return new(big.Int).Mod(new(big.Int).SetBytes(b), S256().P)
}

// The fast reduction must agree with plain big.Int modular arithmetic
// across random operands and the boundary values around p.
func TestFieldMulMatchesReference(t *testing.T) {
	p := S256().P
	rng := rand.New(rand.NewSource(1))

	edge := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		new(big.Int).Sub(p, big.NewInt(1)),
		new(big.Int).Sub(p, big.NewInt(2)),
	}
	var cases [][2]*big.Int
	for _, a := range edge {
		for _, b := range edge {
			cases = append(cases, [2]*big.Int{a, b})
		}
	}
	for i := 0; i < 512; i++ {
		cases = append(cases, [2]*big.Int{randFieldInt(rng), randFieldInt(rng)})
	}

	for _, c := range cases {
		got := pMul(c[0], c[1])
		want := new(big.Int).Mod(new(big.Int).Mul(c[0], c[1]), p)
		if got.Cmp(want) != 0 {
			t.Fatalf("pMul(%x, %x) = %x, want %x", c[0], c[1], got, want)
		}
		gotSqr := pSqr(c[0])
		wantSqr := new(big.Int).Mod(new(big.Int).Mul(c[0], c[0]), p)
		if gotSqr.Cmp(wantSqr) != 0 {
			t.Fatalf("pSqr(%x) = %x, want %x", c[0], gotSqr, wantSqr)
		}
	}
}

func TestFieldAddSub(t *testing.T) {
	p := S256().P
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 256; i++ {
		a, b := randFieldInt(rng), randFieldInt(rng)
		sum := pAdd(a, b)
		want := new(big.Int).Mod(new(big.Int).Add(a, b), p)
		if sum.Cmp(want) != 0 {
			t.Fatalf("pAdd(%x, %x) = %x, want %x", a, b, sum, want)
		}
		back := pSub(sum, b)
		if back.Cmp(a) != 0 {
			t.Fatalf("pSub round trip: got %x, want %x", back, a)
		}
	}
}

func TestFieldElementInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	one := NewFieldElement(big.NewInt(1))
	for i := 0; i < 64; i++ {
		a := NewFieldElement(randFieldInt(rng))
		if a.IsZero() {
			continue
		}
		inv, err := a.Inverse()
		if err != nil {
			t.Fatalf("Inverse(%v): %v", a, err)
		}
		if !a.Mul(inv).Equals(one) {
			t.Fatalf("a * a^-1 != 1 for a = %v", a)
		}
	}

	_, err := FieldElement{}.Inverse()
	if !errors.Is(err, ErrZeroInverse) {
		t.Fatalf("inverse of zero: got %v, want ErrZeroInverse", err)
	}
}

func TestFieldElementSqrt(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	residues, nonResidues := 0, 0
	for i := 0; i < 128; i++ {
		a := NewFieldElement(randFieldInt(rng))
		sq := a.Square()
		r, ok := sq.Sqrt()
		if !ok {
			t.Fatalf("square %v reported as non-residue", sq)
		}
		if !r.Square().Equals(sq) {
			t.Fatalf("sqrt(%v)^2 = %v, want %v", sq, r.Square(), sq)
		}
		residues++

		// A random element is a non-residue about half the time.
		if _, ok := a.Sqrt(); !ok {
			nonResidues++
		}
	}
	if nonResidues == 0 {
		t.Fatal("no non-residues seen in 128 random elements")
	}
}

func TestFieldElementPow(t *testing.T) {
	p := S256().P
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 32; i++ {
		a := randFieldInt(rng)
		e := randFieldInt(rng)
		got := NewFieldElement(a).Pow(e)
		want := new(big.Int).Exp(a, e, p)
		if got.BigInt().Cmp(want) != 0 {
			t.Fatalf("Pow mismatch: got %x, want %x", got.BigInt(), want)
		}
	}

	// Fermat: a^(p-1) = 1 for nonzero a.
	pm1 := new(big.Int).Sub(p, big.NewInt(1))
	got := NewFieldElement(big.NewInt(12345)).Pow(pm1)
	if got.BigInt().Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("a^(p-1) = %x, want 1", got.BigInt())
	}
}

func TestOrderElement(t *testing.T) {
	n := S256().N
	rng := rand.New(rand.NewSource(6))
	one := NewOrderElement(big.NewInt(1))

	for i := 0; i < 64; i++ {
		b := make([]byte, 32)
		rng.Read(b)
		a := OrderElementFromBytes(b)
		if a.IsZero() {
			continue
		}

		inv, err := a.Inverse()
		if err != nil {
			t.Fatalf("Inverse: %v", err)
		}
		if a.Mul(inv).Cmp(one) != 0 {
			t.Fatalf("a * a^-1 != 1 mod n for a = %v", a)
		}

		if !a.Add(a.Neg()).IsZero() {
			t.Fatalf("a + (-a) != 0 mod n for a = %v", a)
		}
	}

	_, err := OrderElement{}.Inverse()
	if !errors.Is(err, ErrZeroInverse) {
		t.Fatalf("inverse of zero: got %v, want ErrZeroInverse", err)
	}

	high := NewOrderElement(new(big.Int).Sub(n, big.NewInt(1)))
	if !high.IsHigh() {
		t.Fatal("n-1 not reported as high")
	}
	if one.IsHigh() {
		t.Fatal("1 reported as high")
	}
}
