package integer

import (
	"math/bits"

	"github.com/calebcase/bigint/digits"
)

type carryOp uint8

const (
	opAdd carryOp = iota
	opSub
)

// operand returns the digit added for y. Subtraction adds the complement
// with an initial carry of one.
func (op carryOp) operand(d digits.Digit) digits.Digit {
	if op == opSub {
		return ^d
	}

	return d
}

func (op carryOp) carryIn() digits.Digit {
	if op == opSub {
		return 1
	}

	return 0
}

// Add sets z to x + y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	return z.evaluate(x, y, opAdd)
}

// Sub sets z to x - y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	return z.evaluate(x, y, opSub)
}

func (z *Int) evaluate(x, y *Int, op carryOp) *Int {
	if z == y && z != x {
		y = y.Clone()
	}

	// One digit past both operands absorbs the carry out.
	n := max(x.size(), y.size()) + 1

	z.Set(x)
	z.extend(n)

	carry := op.carryIn()
	for i := 0; i < n; i++ {
		var d digits.Digit
		d, carry = bits.Add32(z.digits.At(i), op.operand(y.at(i)), carry)
		z.digits.Set(i, d)
	}

	// The top digit is sign extension plus carry, so its high bit is the
	// sign of the result.
	z.further = fill(z.digits.Back()>>(digitBits-1) == 1)

	return z.norm()
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	return z.Not(x).Inc()
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	if x.negative() {
		return z.Neg(x)
	}

	return z.Set(x)
}

// Pos sets z to +x and returns z.
func (z *Int) Pos(x *Int) *Int {
	return z.Set(x)
}

// Inc adds one to z and returns z.
func (z *Int) Inc() *Int {
	z.extend(1)

	for i := 0; i < z.digits.Len(); i++ {
		d := z.digits.At(i)
		z.digits.Set(i, d+1)

		if d != allOnes {
			return z.norm()
		}
	}

	// The carry ran past every stored digit.
	if z.further == 0 {
		z.digits.Push(1)
	} else {
		z.further = 0
	}

	return z.norm()
}

// Dec subtracts one from z and returns z.
func (z *Int) Dec() *Int {
	z.extend(1)

	for i := 0; i < z.digits.Len(); i++ {
		d := z.digits.At(i)
		z.digits.Set(i, d-1)

		if d != 0 {
			return z.norm()
		}
	}

	// The borrow ran past every stored digit.
	if z.further == 0 {
		z.further = allOnes
	} else {
		z.digits.Push(allOnes - 1)
	}

	return z.norm()
}

// PostInc adds one to z and returns the previous value as a new Int.
func (z *Int) PostInc() *Int {
	old := z.Clone()
	z.Inc()

	return old
}

// PostDec subtracts one from z and returns the previous value as a new Int.
func (z *Int) PostDec() *Int {
	old := z.Clone()
	z.Dec()

	return old
}
