package ec

import "math/big"

// wnafWidth is the window width for scalar multiplication. Width 5
// means odd digits in (-16, 16) and precomputed tables of 8 odd
// multiples per base point.
const wnafWidth = 5

// tableKey identifies a precomputed odd-multiple table by its base
// point and window width.
type tableKey struct {
	width uint
	x, y  string
}

// wnafDigits recodes a non-negative scalar into windowed non-adjacent
// form: one signed digit per bit position, each nonzero digit odd and
// in (-2^(width-1), 2^(width-1)), with at least width-1 zeros between
// nonzero digits.
func wnafDigits(k *big.Int, width uint) []int8 {
	var digits []int8
	n := new(big.Int).Set(k)
	halfWindow := int64(1) << (width - 1)

	for n.Sign() > 0 {
		var d int64
		if n.Bit(0) == 1 {
			for i := uint(0); i < width; i++ {
				d |= int64(n.Bit(int(i))) << i
			}
			if d >= halfWindow {
				d -= int64(1) << width
			}
			if d >= 0 {
				n.Sub(n, big.NewInt(d))
			} else {
				n.Add(n, big.NewInt(-d))
			}
		}
		digits = append(digits, int8(d))
		n.Rsh(n, 1)
	}
	return digits
}

// oddMultiples returns the table [1p, 3p, 5p, ..., (2^(width-1)-1)p] in
// Jacobian form, consulting the curve's bounded cache first. The cache
// only ever changes which table instance is returned, never its
// contents; results are identical with or without a hit.
func oddMultiples(p *Point, width uint) []*JacobianPoint {
	c := S256()
	key := tableKey{width: width, x: p.x.Text(16), y: p.y.Text(16)}
	if table, ok := c.tables.Get(key); ok {
		return table
	}

	size := 1 << (width - 2)
	table := make([]*JacobianPoint, size)
	table[0] = p.ToJacobian()
	twoP := table[0].Double()
	for i := 1; i < size; i++ {
		table[i] = table[i-1].Add(twoP)
	}

	c.tables.Add(key, table)
	return table
}

// wnafMul computes k*p for a scalar already reduced mod n, scanning the
// recoded digits from most significant down with one doubling per bit.
func wnafMul(p *Point, k *big.Int) *JacobianPoint {
	if p.infinity || k.Sign() == 0 {
		return jacobianInfinity()
	}

	table := oddMultiples(p, wnafWidth)
	digits := wnafDigits(k, wnafWidth)

	acc := jacobianInfinity()
	for i := len(digits) - 1; i >= 0; i-- {
		acc = acc.Double()
		d := digits[i]
		if d > 0 {
			acc = acc.Add(table[(d-1)/2])
		} else if d < 0 {
			acc = acc.Add(table[(-d-1)/2].Neg())
		}
	}
	return acc
}
