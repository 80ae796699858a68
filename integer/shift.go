package integer

import (
	"github.com/calebcase/bigint/digits"
)

// Lsh sets z to x << n and returns z. A negative n shifts right.
func (z *Int) Lsh(x *Int, n int) *Int {
	if n < 0 {
		return z.shr(x, uint(-n))
	}

	return z.shl(x, uint(n))
}

// Rsh sets z to x >> n and returns z. A negative n shifts left. Shifting a
// negative value right rounds toward negative infinity.
func (z *Int) Rsh(x *Int, n int) *Int {
	if n < 0 {
		return z.shl(x, uint(-n))
	}

	return z.shr(x, uint(n))
}

// Shifts of a digit by digitBits or more yield 0 in Go, so a zero bit count
// needs no special case below.

func (z *Int) shl(x *Int, s uint) *Int {
	if s == 0 || x.IsZero() {
		return z.Set(x)
	}

	words, bits := int(s/digitBits), s%digitBits

	var out digits.Store
	for i := 0; i < words; i++ {
		out.Push(0)
	}

	var prev digits.Digit
	for i := 0; i <= x.size(); i++ {
		d := x.at(i)
		out.Push(d<<bits | prev>>(digitBits-bits))
		prev = d
	}

	return z.replace(&out, x.further)
}

func (z *Int) shr(x *Int, s uint) *Int {
	if s == 0 {
		return z.Set(x)
	}

	if s/digitBits >= uint(x.size()) {
		f := x.further

		z.digits.Clear()
		z.digits.Push(f)
		z.further = f

		return z
	}

	words, bits := int(s/digitBits), s%digitBits

	var out digits.Store
	for i := words; i < x.size(); i++ {
		out.Push(x.at(i)>>bits | x.at(i+1)<<(digitBits-bits))
	}

	return z.replace(&out, x.further)
}
