package ec

import "math/big"

// JacobianPoint is a curve point in Jacobian projective coordinates,
// where the affine point is (X/Z^2, Y/Z^3). Z = 0 encodes the point at
// infinity. The projective forms avoid a field inversion per group
// operation; ToAffine pays the single inversion at the end.
type JacobianPoint struct {
	X, Y, Z *big.Int
}

func jacobianInfinity() *JacobianPoint {
	return &JacobianPoint{
		X: new(big.Int),
		Y: new(big.Int),
		Z: new(big.Int),
	}
}

// IsInfinity returns whether the point is the group identity.
func (j *JacobianPoint) IsInfinity() bool {
	return j.Z.Sign() == 0
}

// ToJacobian lifts an affine point to Z = 1.
func (p *Point) ToJacobian() *JacobianPoint {
	if p.infinity {
		return jacobianInfinity()
	}
	return &JacobianPoint{
		X: new(big.Int).Set(p.x),
		Y: new(big.Int).Set(p.y),
		Z: big.NewInt(1),
	}
}

// ToAffine projects back to affine coordinates with one field
// inversion.
func (j *JacobianPoint) ToAffine() *Point {
	if j.IsInfinity() {
		return Infinity()
	}
	zInv, err := pInv(j.Z)
	if err != nil {
		// Unreachable: Z != 0 was checked above.
		return Infinity()
	}
	zInv2 := pSqr(zInv)
	x := pMul(j.X, zInv2)
	y := pMul(j.Y, pMul(zInv2, zInv))
	return &Point{x: x, y: y}
}

// Neg returns the point with Y negated.
func (j *JacobianPoint) Neg() *JacobianPoint {
	if j.IsInfinity() {
		return jacobianInfinity()
	}
	return &JacobianPoint{
		X: new(big.Int).Set(j.X),
		Y: pSub(new(big.Int), j.Y),
		Z: new(big.Int).Set(j.Z),
	}
}

// Double returns 2*j using the dbl-2009-l formulas, which are valid
// for a = 0 curves and need no special casing beyond infinity.
func (j *JacobianPoint) Double() *JacobianPoint {
	if j.IsInfinity() || j.Y.Sign() == 0 {
		return jacobianInfinity()
	}

	a := pSqr(j.X)
	b := pSqr(j.Y)
	c := pSqr(b)

	d := pAdd(j.X, b)
	d = pSqr(d)
	d = pSub(d, a)
	d = pSub(d, c)
	d = pAdd(d, d)

	e := pAdd(a, pAdd(a, a))
	f := pSqr(e)

	x3 := pSub(f, pAdd(d, d))
	c8 := pAdd(c, c)
	c8 = pAdd(c8, c8)
	c8 = pAdd(c8, c8)
	y3 := pSub(pMul(e, pSub(d, x3)), c8)
	z3 := pMul(j.Y, j.Z)
	z3 = pAdd(z3, z3)

	return &JacobianPoint{X: x3, Y: y3, Z: z3}
}

// Add returns j + o using the add-2007-bl formulas. Equal inputs fall
// through to doubling; inverse inputs yield infinity.
func (j *JacobianPoint) Add(o *JacobianPoint) *JacobianPoint {
	if j.IsInfinity() {
		return &JacobianPoint{
			X: new(big.Int).Set(o.X),
			Y: new(big.Int).Set(o.Y),
			Z: new(big.Int).Set(o.Z),
		}
	}
	if o.IsInfinity() {
		return &JacobianPoint{
			X: new(big.Int).Set(j.X),
			Y: new(big.Int).Set(j.Y),
			Z: new(big.Int).Set(j.Z),
		}
	}

	z1z1 := pSqr(j.Z)
	z2z2 := pSqr(o.Z)
	u1 := pMul(j.X, z2z2)
	u2 := pMul(o.X, z1z1)
	s1 := pMul(j.Y, pMul(o.Z, z2z2))
	s2 := pMul(o.Y, pMul(j.Z, z1z1))

	h := pSub(u2, u1)
	r := pSub(s2, s1)
	if h.Sign() == 0 {
		if r.Sign() == 0 {
			return j.Double()
		}
		return jacobianInfinity()
	}
	r = pAdd(r, r)

	i := pAdd(h, h)
	i = pSqr(i)
	jj := pMul(h, i)
	v := pMul(u1, i)

	x3 := pSub(pSqr(r), jj)
	x3 = pSub(x3, pAdd(v, v))

	y3 := pMul(r, pSub(v, x3))
	s1j := pMul(s1, jj)
	y3 = pSub(y3, pAdd(s1j, s1j))

	z3 := pAdd(j.Z, o.Z)
	z3 = pSqr(z3)
	z3 = pSub(z3, z1z1)
	z3 = pSub(z3, z2z2)
	z3 = pMul(z3, h)

	return &JacobianPoint{X: x3, Y: y3, Z: z3}
}

// AddAffine returns j + p for an affine p, the add-2007-bl formulas
// specialized to Z2 = 1. Scalar multiplication adds table entries this
// way when the table was built affine; the Jacobian tables go through
// Add.
func (j *JacobianPoint) AddAffine(p *Point) *JacobianPoint {
	if p.infinity {
		return &JacobianPoint{
			X: new(big.Int).Set(j.X),
			Y: new(big.Int).Set(j.Y),
			Z: new(big.Int).Set(j.Z),
		}
	}
	if j.IsInfinity() {
		return p.ToJacobian()
	}

	z1z1 := pSqr(j.Z)
	u2 := pMul(p.x, z1z1)
	s2 := pMul(p.y, pMul(j.Z, z1z1))

	h := pSub(u2, j.X)
	r := pSub(s2, j.Y)
	if h.Sign() == 0 {
		if r.Sign() == 0 {
			return j.Double()
		}
		return jacobianInfinity()
	}
	r = pAdd(r, r)

	i := pAdd(h, h)
	i = pSqr(i)
	jj := pMul(h, i)
	v := pMul(j.X, i)

	x3 := pSub(pSqr(r), jj)
	x3 = pSub(x3, pAdd(v, v))

	y3 := pMul(r, pSub(v, x3))
	s1j := pMul(j.Y, jj)
	y3 = pSub(y3, pAdd(s1j, s1j))

	z3 := pMul(j.Z, h)
	z3 = pAdd(z3, z3)

	return &JacobianPoint{X: x3, Y: y3, Z: z3}
}
