package ec

import "math/big"

// divRound returns a/b rounded to the nearest integer, halves away
// from zero. Both callers pass non-negative numerators.
func divRound(a, b *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	r.Lsh(r, 1)
	if r.CmpAbs(b) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}

// splitScalar decomposes k in [0, n) into signed half-length scalars
// with k1 + k2*lambda = k (mod n), using the precomputed lattice basis
// on the curve context. Either component may be negative; the caller
// compensates by negating the matching point.
func splitScalar(k *big.Int) (k1, k2 *big.Int) {
	c := S256()

	c1 := divRound(new(big.Int).Mul(c.b2, k), c.N)
	c2 := divRound(new(big.Int).Neg(new(big.Int).Mul(c.b1, k)), c.N)

	k1 = new(big.Int).Set(k)
	k1.Sub(k1, new(big.Int).Mul(c1, c.a1))
	k1.Sub(k1, new(big.Int).Mul(c2, c.a2))

	k2 = new(big.Int).Neg(new(big.Int).Mul(c1, c.b1))
	k2.Sub(k2, new(big.Int).Mul(c2, c.b2))
	return k1, k2
}

// phi applies the endomorphism (x, y) -> (beta*x, y), which equals
// multiplication by lambda.
func phi(p *Point) *Point {
	if p.infinity {
		return Infinity()
	}
	return &Point{x: pMul(S256().beta, p.x), y: new(big.Int).Set(p.y)}
}

// endoWnafMulAdd computes sum coeffs[i]*points[i] in a single
// interleaved pass. Each scalar is split with the endomorphism, so a
// two-term multiply-add runs over four half-length digit streams with
// one shared doubling per bit.
func endoWnafMulAdd(points []*Point, coeffs []*big.Int) *JacobianPoint {
	var (
		tables [][]*JacobianPoint
		digits [][]int8
	)

	for i, p := range points {
		k := coeffs[i]
		if p.infinity || k.Sign() == 0 {
			continue
		}
		k1, k2 := splitScalar(k)
		p1, p2 := p, phi(p)
		if k1.Sign() < 0 {
			k1 = new(big.Int).Neg(k1)
			p1 = p1.Neg()
		}
		if k2.Sign() < 0 {
			k2 = new(big.Int).Neg(k2)
			p2 = p2.Neg()
		}
		tables = append(tables, oddMultiples(p1, wnafWidth), oddMultiples(p2, wnafWidth))
		digits = append(digits, wnafDigits(k1, wnafWidth), wnafDigits(k2, wnafWidth))
	}

	maxLen := 0
	for _, d := range digits {
		if len(d) > maxLen {
			maxLen = len(d)
		}
	}

	acc := jacobianInfinity()
	for i := maxLen - 1; i >= 0; i-- {
		acc = acc.Double()
		for s, d := range digits {
			if i >= len(d) || d[i] == 0 {
				continue
			}
			if d[i] > 0 {
				acc = acc.Add(tables[s][(d[i]-1)/2])
			} else {
				acc = acc.Add(tables[s][(-d[i]-1)/2].Neg())
			}
		}
	}
	return acc
}
