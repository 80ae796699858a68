package integer

import (
	"math/bits"

	"github.com/calebcase/oops"

	"github.com/calebcase/bigint/digits"
)

// Quo sets z to the quotient x/y, truncated toward zero, and returns z.
func (z *Int) Quo(x, y *Int) (*Int, error) {
	if y.IsZero() {
		return nil, oops.Trace(ErrDivisionByZero)
	}

	q, _ := quoRem(x, y)

	return z.move(q), nil
}

// Rem sets z to the remainder x%y and returns z. The remainder is zero or has
// the sign of x.
func (z *Int) Rem(x, y *Int) (*Int, error) {
	if y.IsZero() {
		return nil, oops.Trace(ErrDivisionByZero)
	}

	_, r := quoRem(x, y)

	return z.move(r), nil
}

// QuoRem sets z to x/y and r to x%y and returns (z, r). Together they satisfy
// x == z*y + r with |r| < |y|, the quotient truncated toward zero. z and r
// must be distinct. On error neither is modified.
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int, error) {
	if y.IsZero() {
		return nil, nil, oops.Trace(ErrDivisionByZero)
	}

	q, m := quoRem(x, y)

	return z.move(q), r.move(m), nil
}

// quoRem divides the magnitudes and reapplies the signs. y must not be zero.
func quoRem(x, y *Int) (q, r *Int) {
	a, b := magnitude(x), magnitude(y)

	switch {
	case b.size() == 1:
		q = new(Int)
		r = NewUint32(q.divDigit(a, b.at(0)))
	case cmpDigits(a, b) < 0:
		q, r = new(Int), a.Clone()
	default:
		q, r = divLarge(a, b)
	}

	if x.negative() != y.negative() {
		q.Neg(q)
	}

	if x.negative() {
		r.Neg(r)
	}

	return q, r
}

// divDigit sets z to x/d for non-negative x and returns the remainder.
func (z *Int) divDigit(x *Int, d digits.Digit) (r digits.Digit) {
	n := x.size()

	var out digits.Store
	for i := 0; i < n; i++ {
		out.Push(0)
	}

	for i := n - 1; i >= 0; i-- {
		var q digits.Digit
		q, r = bits.Div32(r, x.at(i), d)
		out.Set(i, q)
	}

	z.replace(&out, 0)

	return r
}

// divLarge divides a by b where a >= b >= 0 and b has at least two digits.
//
// Both are shifted so the top digit of the divisor has its high bit set. The
// first quotient digit comes from the top len(b) digits of the dividend; every
// following digit is produced by bringing down one more dividend digit into
// the running remainder.
func divLarge(a, b *Int) (q, r *Int) {
	t := bits.LeadingZeros32(b.at(b.size() - 1))
	u := new(Int).Lsh(a, t)
	v := new(Int).Lsh(b, t)
	n, m := v.size(), u.size()

	var d digits.Digit
	d, r = divStep(u.window(m-n, m), v)
	q = NewUint32(d)

	for i := m - n - 1; i >= 0; i-- {
		r.shl(r, digitBits)
		r.setLow(u.at(i))
		q.shl(q, digitBits)

		if cmpDigits(r, v) >= 0 {
			d, r = divStep(r, v)
			q.setLow(d)
		}
	}

	// The quotient counts digits and needs no correction.
	r.Rsh(r, t)

	return q, r
}

// divStep returns the single digit quotient and the remainder of u/v. v must
// be normalized with at least two digits and u < v<<digitBits.
func divStep(u, v *Int) (digits.Digit, *Int) {
	if cmpDigits(u, v) < 0 {
		return 0, u.Clone()
	}

	n := v.size()

	// With equal lengths and a normalized v, u < 2v.
	q := digits.Digit(1)
	if u.size() > n {
		q = div32(u.at(n), u.at(n-1), u.at(n-2), v.at(n-1), v.at(n-2))
	}

	r := new(Int).Mul(v, NewUint32(q))
	r.Sub(u, r)

	if r.negative() {
		q--
		r.Add(r, v)
	}

	return q, r
}

// div32 estimates the quotient of the three digits u2 u1 u0 by the two digits
// v1 v0. v1 must have its high bit set. The estimate starts from u2 u1 / v1,
// clamped to one digit, and is lowered until it times v1 v0 fits under
// u2 u1 u0. The result is never below the true quotient digit.
func div32(u2, u1, u0, v1, v0 digits.Digit) digits.Digit {
	q := (uint64(u2)<<digitBits | uint64(u1)) / uint64(v1)
	if q > uint64(allOnes) {
		q = uint64(allOnes)
	}

	for greater96(q, v1, v0, u2, u1, u0) {
		q--
	}

	return digits.Digit(q)
}

// greater96 reports whether q * (v1 v0) > (u2 u1 u0), comparing three digit
// values. q must fit in one digit.
func greater96(q uint64, v1, v0, u2, u1, u0 digits.Digit) bool {
	p0 := q * uint64(v0)
	p1 := q*uint64(v1) + p0>>digitBits

	p := [3]digits.Digit{digits.Digit(p1 >> digitBits), digits.Digit(p1), digits.Digit(p0)}
	u := [3]digits.Digit{u2, u1, u0}

	for i := range p {
		if p[i] != u[i] {
			return p[i] > u[i]
		}
	}

	return false
}

// window returns the non-negative value of the digits of x in [lo, hi).
func (x *Int) window(lo, hi int) *Int {
	z := new(Int)
	for i := lo; i < hi; i++ {
		z.digits.Push(x.at(i))
	}

	return z.norm()
}

// setLow overwrites the least significant digit of z.
func (z *Int) setLow(d digits.Digit) {
	z.extend(1)
	z.digits.Set(0, d)
}
