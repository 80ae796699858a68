package integer

import (
	"github.com/calebcase/bigint/digits"
)

// Mul sets z to x * y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		return z.SetUint32(0)
	}

	negative := x.negative() != y.negative()
	a, b := magnitude(x), magnitude(y)
	an, bn := a.size(), b.size()

	var out digits.Store
	for i := 0; i < an+bn; i++ {
		out.Push(0)
	}

	for i := 0; i < an; i++ {
		ai := uint64(a.at(i))

		var carry uint64
		for j := 0; j < bn || carry != 0; j++ {
			cur := uint64(out.At(i+j)) + ai*uint64(b.at(j)) + carry
			out.Set(i+j, digits.Digit(cur))
			carry = cur >> digitBits
		}
	}

	z.replace(&out, 0)
	if negative {
		z.Neg(z)
	}

	return z
}

// mulAddDigit sets z to z*m + a for non-negative z.
func (z *Int) mulAddDigit(m, a digits.Digit) *Int {
	z.extend(1)

	carry := uint64(a)
	for i := 0; i < z.digits.Len(); i++ {
		cur := uint64(z.digits.At(i))*uint64(m) + carry
		z.digits.Set(i, digits.Digit(cur))
		carry = cur >> digitBits
	}

	if carry != 0 {
		z.digits.Push(digits.Digit(carry))
	}

	return z.norm()
}
