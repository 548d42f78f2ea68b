package ec

import (
	"math/big"
)

// Maximum nonce candidates tried before signing gives up. The
// deterministic generator rejects a candidate with probability around
// 2^-128, so reaching this bound means a broken caller-supplied
// generator rather than bad luck.
const maxSignIterations = 100

// Signature is an ECDSA signature over secp256k1. DER encoding is left
// to callers; this package deals in the raw (r, s) pair and the
// fixed-width compact form.
type Signature struct {
	R *big.Int
	S *big.Int
}

// IsEqual compares this signature to the passed one and returns
// whether both represent the same (r, s) pair.
func (sig *Signature) IsEqual(other *Signature) bool {
	return sig.R.Cmp(other.R) == 0 && sig.S.Cmp(other.S) == 0
}

// Serialize returns the 64-byte compact form r||s, each value
// zero-padded to 32 bytes.
func (sig *Signature) Serialize() []byte {
	out := make([]byte, 64)
	sig.R.FillBytes(out[:32])
	sig.S.FillBytes(out[32:])
	return out
}

// ParseSignature parses the 64-byte compact form, rejecting values
// outside [1, n-1].
func ParseSignature(b []byte) (*Signature, error) {
	if len(b) != 64 {
		return nil, errorf(ErrMalformedSignature, "compact signature is %d bytes, want 64", len(b))
	}
	r := new(big.Int).SetBytes(b[:32])
	s := new(big.Int).SetBytes(b[32:])
	n := S256().N
	if r.Sign() == 0 || r.Cmp(n) >= 0 {
		return nil, makeError(ErrMalformedSignature, "signature r out of range")
	}
	if s.Sign() == 0 || s.Cmp(n) >= 0 {
		return nil, makeError(ErrMalformedSignature, "signature s out of range")
	}
	return &Signature{R: r, S: s}, nil
}

type nonceKind int

const (
	nonceDeterministic nonceKind = iota
	nonceFixed
	nonceGenerator
)

// NonceSource selects how Sign obtains its per-signature secret k. The
// zero value is the deterministic source, so most callers never
// construct one explicitly.
type NonceSource struct {
	kind  nonceKind
	fixed *big.Int
	gen   func(iteration int) *big.Int
}

// DeterministicNonce derives k from the key and message with the
// HMAC-SHA256 generator of RFC 6979, giving identical signatures for
// identical inputs.
func DeterministicNonce() NonceSource {
	return NonceSource{kind: nonceDeterministic}
}

// FixedNonce uses exactly k. If k is unusable the failure surfaces as
// a named error instead of retrying; there is nothing to retry with.
func FixedNonce(k *big.Int) NonceSource {
	return NonceSource{kind: nonceFixed, fixed: new(big.Int).Set(k)}
}

// GeneratorNonce draws candidates from fn, called with the retry
// iteration starting at 0. Unusable candidates are skipped silently.
func GeneratorNonce(fn func(iteration int) *big.Int) NonceSource {
	return NonceSource{kind: nonceGenerator, gen: fn}
}

// truncateToN keeps the leftmost bitlen(n) bits of msg. With truncOnly
// unset the result is additionally brought below n by a single
// subtraction.
func truncateToN(msg *big.Int, truncOnly bool) *big.Int {
	c := S256()
	delta := (msg.BitLen()+7)/8*8 - c.N.BitLen()
	m := new(big.Int).Set(msg)
	if delta > 0 {
		m.Rsh(m, uint(delta))
	}
	if !truncOnly && m.Cmp(c.N) >= 0 {
		m.Sub(m, c.N)
	}
	return m
}

// Sign produces an ECDSA signature of msg (a hash interpreted as an
// integer) under the private key. With forceLowS the s value is
// canonicalized below n/2. The nonce source controls k; the zero
// NonceSource is deterministic.
func Sign(msg, key *big.Int, forceLowS bool, nonce NonceSource) (*Signature, error) {
	c := S256()
	d := nMod(key)
	if d.Sign() == 0 {
		return nil, makeError(ErrInvalidPrivateKey, "private key is zero mod n")
	}
	m := truncateToN(msg, false)

	var drbg *HmacDRBG
	if nonce.kind == nonceDeterministic {
		var keyBytes, msgBytes [32]byte
		d.FillBytes(keyBytes[:])
		m.FillBytes(msgBytes[:])
		drbg = NewHmacDRBG(keyBytes[:], msgBytes[:])
	}

	nMinusOne := new(big.Int).Sub(c.N, big.NewInt(1))
	for iter := 0; iter < maxSignIterations; iter++ {
		var k *big.Int
		switch nonce.kind {
		case nonceDeterministic:
			k = truncateToN(new(big.Int).SetBytes(drbg.Generate(c.ByteSize)), true)
		case nonceFixed:
			k = nonce.fixed
		case nonceGenerator:
			k = nonce.gen(iter)
		}

		sig, kindErr := signWithNonce(m, d, k, nMinusOne, forceLowS)
		if kindErr == "" {
			return sig, nil
		}
		if nonce.kind == nonceFixed {
			return nil, makeError(kindErr, "fixed nonce cannot produce a signature")
		}
	}
	return nil, makeError(ErrSignFailed, "nonce candidates exhausted")
}

// signWithNonce attempts one candidate k, returning the rejection kind
// when it is unusable.
func signWithNonce(m, d, k, nMinusOne *big.Int, forceLowS bool) (*Signature, ErrorKind) {
	c := S256()
	if k == nil || k.Cmp(big.NewInt(1)) <= 0 || k.Cmp(nMinusOne) >= 0 {
		return nil, ErrNonceOutOfRange
	}

	kp := c.G.Mul(k)
	if kp.IsInfinity() {
		return nil, ErrNonceAtInfinity
	}

	r := nMod(kp.x)
	if r.Sign() == 0 {
		return nil, ErrNonceZeroR
	}

	kInv, err := nInv(k)
	if err != nil {
		return nil, ErrNonceOutOfRange
	}
	s := nMul(kInv, new(big.Int).Add(m, nMul(r, d)))
	if s.Sign() == 0 {
		return nil, ErrNonceZeroS
	}

	if forceLowS && s.Cmp(c.HalfN) > 0 {
		s = new(big.Int).Sub(c.N, s)
	}
	return &Signature{R: r, S: s}, ""
}

// Verify reports whether sig is a valid signature of msg under the
// public key. Either s form verifies; low-s policy is the signer's
// concern.
func Verify(msg *big.Int, sig *Signature, pub *Point) bool {
	c := S256()
	if pub == nil || pub.IsInfinity() {
		return false
	}
	if sig.R.Sign() <= 0 || sig.R.Cmp(c.N) >= 0 {
		return false
	}
	if sig.S.Sign() <= 0 || sig.S.Cmp(c.N) >= 0 {
		return false
	}

	m := truncateToN(msg, false)
	w, err := nInv(sig.S)
	if err != nil {
		return false
	}
	u1 := nMul(m, w)
	u2 := nMul(sig.R, w)

	rp := MulAdd(u1, c.G, u2, pub)
	if rp.IsInfinity() {
		return false
	}
	return nMod(rp.x).Cmp(sig.R) == 0
}
