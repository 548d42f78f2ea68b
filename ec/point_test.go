package ec

import (
	"bytes"
	"errors"
	"math/big"
	"math/rand"
	"testing"
)

// randScalar returns a random integer in [1, n).
func randScalar(rng *rand.Rand) *big.Int {
	b := make([]byte, 32)
	for {
		rng.Read(b)
		k := new(big.Int).Mod(new(big.Int).SetBytes(b), S256().N)
		if k.Sign() != 0 {
			return k
		}
	}
}

// randPoint returns a random non-infinity point.
func randPoint(rng *rand.Rand) *Point {
	return S256().G.Mul(randScalar(rng))
}

func TestGeneratorOnCurve(t *testing.T) {
	if err := S256().G.Validate(); err != nil {
		t.Fatalf("generator failed validation: %v", err)
	}
}

func TestGroupLaw(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	inf := Infinity()

	for i := 0; i < 32; i++ {
		p := randPoint(rng)
		q := randPoint(rng)
		r := randPoint(rng)

		// Identity.
		if !p.Add(inf).Eq(p) || !inf.Add(p).Eq(p) {
			t.Fatal("infinity is not the additive identity")
		}

		// Inverse.
		if !p.Add(p.Neg()).IsInfinity() {
			t.Fatal("p + (-p) is not infinity")
		}

		// Commutativity.
		if !p.Add(q).Eq(q.Add(p)) {
			t.Fatal("addition is not commutative")
		}

		// Associativity.
		if !p.Add(q).Add(r).Eq(p.Add(q.Add(r))) {
			t.Fatal("addition is not associative")
		}

		// Doubling consistency.
		if !p.Add(p).Eq(p.Double()) {
			t.Fatal("p + p != 2p")
		}

		if err := p.Add(q).Validate(); err != nil {
			t.Fatalf("sum left the curve: %v", err)
		}
	}
}

func TestJacobianMatchesAffine(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 32; i++ {
		p := randPoint(rng)
		q := randPoint(rng)

		viaJacobian := p.ToJacobian().Add(q.ToJacobian()).ToAffine()
		if !viaJacobian.Eq(p.Add(q)) {
			t.Fatal("jacobian add disagrees with affine add")
		}

		viaMixed := p.ToJacobian().AddAffine(q).ToAffine()
		if !viaMixed.Eq(p.Add(q)) {
			t.Fatal("mixed add disagrees with affine add")
		}

		if !p.ToJacobian().Double().ToAffine().Eq(p.Double()) {
			t.Fatal("jacobian double disagrees with affine double")
		}
	}

	// Adding a point to itself through the general formula must fall
	// through to doubling.
	g := S256().G
	if !g.ToJacobian().Add(g.ToJacobian()).ToAffine().Eq(g.Double()) {
		t.Fatal("general add of equal points did not double")
	}
}

func TestXYInfinity(t *testing.T) {
	_, _, err := Infinity().XY()
	if !errors.Is(err, ErrInfinityPoint) {
		t.Fatalf("XY on infinity: got %v, want ErrInfinityPoint", err)
	}

	x, y, err := S256().G.XY()
	if err != nil {
		t.Fatalf("XY on generator: %v", err)
	}
	if x.Cmp(S256().Gx) != 0 || y.Cmp(S256().Gy) != 0 {
		t.Fatal("XY returned wrong generator coordinates")
	}
}

func TestNewPointRejectsOffCurve(t *testing.T) {
	_, err := NewPoint(big.NewInt(1), big.NewInt(1))
	if !errors.Is(err, ErrPointNotOnCurve) {
		t.Fatalf("got %v, want ErrPointNotOnCurve", err)
	}
}

func TestFromXRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for i := 0; i < 32; i++ {
		p := randPoint(rng)
		recovered, err := FromX(p.x, p.yParityOdd())
		if err != nil {
			t.Fatalf("FromX: %v", err)
		}
		if !recovered.Eq(p) {
			t.Fatal("FromX did not recover the original point")
		}

		flipped, err := FromX(p.x, !p.yParityOdd())
		if err != nil {
			t.Fatalf("FromX flipped parity: %v", err)
		}
		if !flipped.Eq(p.Neg()) {
			t.Fatal("FromX with flipped parity is not the negation")
		}
	}
}

func TestFromXNoPoint(t *testing.T) {
	// x = 5 has no matching y on secp256k1.
	_, err := FromX(big.NewInt(5), false)
	if !errors.Is(err, ErrPointNotOnCurve) {
		t.Fatalf("got %v, want ErrPointNotOnCurve", err)
	}

	_, err = FromX(S256().P, false)
	if !errors.Is(err, ErrMalformedPoint) {
		t.Fatalf("x = p: got %v, want ErrMalformedPoint", err)
	}
}

func TestPointCodec(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 32; i++ {
		p := randPoint(rng)

		for _, compressed := range []bool{true, false} {
			enc, err := p.Encode(compressed)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			dec, err := DecodePoint(enc)
			if err != nil {
				t.Fatalf("DecodePoint: %v", err)
			}
			if !dec.Eq(p) {
				t.Fatal("codec round trip lost the point")
			}
		}

		// Hybrid form: uncompressed body with a parity prefix.
		enc, _ := p.Encode(false)
		enc[0] = pubkeyHybridEven + (enc[len(enc)-1] & 1)
		dec, err := DecodePoint(enc)
		if err != nil {
			t.Fatalf("hybrid decode: %v", err)
		}
		if !dec.Eq(p) {
			t.Fatal("hybrid round trip lost the point")
		}

		// Flipping the hybrid prefix must fail the parity check.
		enc[0] ^= 0x01
		if _, err := DecodePoint(enc); !errors.Is(err, ErrMalformedPoint) {
			t.Fatalf("hybrid parity mismatch: got %v, want ErrMalformedPoint", err)
		}
	}
}

func TestDecodePointRejectsMalformed(t *testing.T) {
	g, _ := S256().G.Encode(true)

	tests := []struct {
		name string
		in   []byte
		want ErrorKind
	}{
		{"empty", nil, ErrMalformedPoint},
		{"unknown prefix", append([]byte{0x05}, g[1:]...), ErrMalformedPoint},
		{"compressed short", g[:32], ErrMalformedPoint},
		{"compressed long", append(g, 0x00), ErrMalformedPoint},
		{"uncompressed wrong length", append([]byte{0x04}, g[1:]...), ErrMalformedPoint},
	}
	for _, test := range tests {
		if _, err := DecodePoint(test.in); !errors.Is(err, test.want) {
			t.Fatalf("%s: got %v, want %v", test.name, err, test.want)
		}
	}
}

func TestPointHexRoundTrip(t *testing.T) {
	p := S256().G.Mul(big.NewInt(7))
	back, err := PointFromHex(p.String())
	if err != nil {
		t.Fatalf("PointFromHex: %v", err)
	}
	if !back.Eq(p) {
		t.Fatal("hex round trip lost the point")
	}
}

func TestInfinityEncode(t *testing.T) {
	if _, err := Infinity().Encode(true); !errors.Is(err, ErrInfinityPoint) {
		t.Fatalf("got %v, want ErrInfinityPoint", err)
	}
	if err := Infinity().Validate(); !errors.Is(err, ErrInvalidPoint) {
		t.Fatalf("got %v, want ErrInvalidPoint", err)
	}
}

func TestEncodeMatchesKnownGenerator(t *testing.T) {
	enc, err := S256().G.Encode(true)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x02}
	var xb [32]byte
	S256().Gx.FillBytes(xb[:])
	want = append(want, xb[:]...)
	if !bytes.Equal(enc, want) {
		t.Fatalf("generator encoding mismatch: got %x", enc)
	}
}
