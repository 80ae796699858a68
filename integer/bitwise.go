package integer

import (
	"github.com/calebcase/bigint/digits"
)

type bitOp uint8

const (
	opAnd bitOp = iota
	opOr
	opXor
)

func (op bitOp) apply(a, b digits.Digit) digits.Digit {
	switch op {
	case opAnd:
		return a & b
	case opOr:
		return a | b
	case opXor:
		return a ^ b
	}

	panic("integer: unknown bit operation")
}

// Not sets z to ^x (equal to -x-1) and returns z.
func (z *Int) Not(x *Int) *Int {
	z.Set(x)
	z.extend(1)

	for i := 0; i < z.digits.Len(); i++ {
		z.digits.Set(i, ^z.digits.At(i))
	}
	z.further = ^z.further

	return z.norm()
}

// And sets z to x & y and returns z.
func (z *Int) And(x, y *Int) *Int {
	return z.bitwise(x, y, opAnd)
}

// Or sets z to x | y and returns z.
func (z *Int) Or(x, y *Int) *Int {
	return z.bitwise(x, y, opOr)
}

// Xor sets z to x ^ y and returns z.
func (z *Int) Xor(x, y *Int) *Int {
	return z.bitwise(x, y, opXor)
}

func (z *Int) bitwise(x, y *Int, op bitOp) *Int {
	// All operations commute, so an aliased y can trade places with x.
	if z == y {
		x, y = y, x
	}

	z.Set(x)
	z.extend(y.size())

	for i := 0; i < z.digits.Len(); i++ {
		z.digits.Set(i, op.apply(z.digits.At(i), y.at(i)))
	}
	z.further = op.apply(z.further, y.further)

	return z.norm()
}
