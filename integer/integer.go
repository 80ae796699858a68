package integer

import (
	"github.com/calebcase/bigint/digits"
)

const (
	digitBits = 32
	allOnes   = ^digits.Digit(0)
)

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Int is a signed integer of arbitrary size in two's complement.
//
// The digits hold the low positions and every position past them reads as
// further, which is 0 for non-negative values and all ones for negative
// values. The canonical form keeps at least one digit and never ends on a
// digit equal to further unless it is the only one.
//
// The zero value is 0. An Int must not be copied by value; use Set or Clone,
// which share storage until one side is written.
type Int struct {
	_ noCopy

	digits  digits.Store
	further digits.Digit
}

// New returns a new Int set to x.
func New(x int64) *Int {
	return new(Int).SetInt64(x)
}

// NewUint64 returns a new Int set to x.
func NewUint64(x uint64) *Int {
	return new(Int).SetUint64(x)
}

// NewInt32 returns a new Int set to x.
func NewInt32(x int32) *Int {
	return new(Int).SetInt32(x)
}

// NewUint32 returns a new Int set to x.
func NewUint32(x uint32) *Int {
	return new(Int).SetUint32(x)
}

func fill(negative bool) digits.Digit {
	if negative {
		return allOnes
	}

	return 0
}

// SetInt32 sets z to x and returns z.
func (z *Int) SetInt32(x int32) *Int {
	z.digits.Clear()
	z.digits.Push(digits.Digit(x))
	z.further = fill(x < 0)

	return z
}

// SetUint32 sets z to x and returns z.
func (z *Int) SetUint32(x uint32) *Int {
	z.digits.Clear()
	z.digits.Push(x)
	z.further = 0

	return z
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	u := uint64(x)

	z.digits.Clear()
	z.digits.Push(digits.Digit(u))
	z.digits.Push(digits.Digit(u >> digitBits))
	z.further = fill(x < 0)

	return z.norm()
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	z.digits.Clear()
	z.digits.Push(digits.Digit(x))
	z.digits.Push(digits.Digit(x >> digitBits))
	z.further = 0

	return z.norm()
}

// Set sets z to x and returns z. The digits are shared with x until either
// side is modified.
func (z *Int) Set(x *Int) *Int {
	if z != x {
		z.digits.Assign(&x.digits)
		z.further = x.further
	}

	return z
}

// Clone returns a new Int equal to x.
func (x *Int) Clone() *Int {
	return new(Int).Set(x)
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x *Int) Sign() int {
	switch {
	case x.negative():
		return -1
	case x.IsZero():
		return 0
	}

	return 1
}

// IsZero reports whether x is 0.
func (x *Int) IsZero() bool {
	return x.further == 0 && x.size() == 1 && x.at(0) == 0
}

// Int64 returns x as an int64. ok is false if x does not fit, in which case
// v holds the low 64 bits.
func (x *Int) Int64() (v int64, ok bool) {
	v = int64(uint64(x.at(1))<<digitBits | uint64(x.at(0)))

	return v, x.size() <= 2 && (v < 0) == x.negative()
}

// Uint64 returns x as a uint64. ok is false if x does not fit, in which case
// v holds the low 64 bits.
func (x *Int) Uint64() (v uint64, ok bool) {
	v = uint64(x.at(1))<<digitBits | uint64(x.at(0))

	return v, x.size() <= 2 && !x.negative()
}

func (x *Int) negative() bool {
	return x.further != 0
}

// size returns the number of positions held in digits. An empty store reads
// as a single digit equal to further.
func (x *Int) size() int {
	if n := x.digits.Len(); n > 0 {
		return n
	}

	return 1
}

// at returns the digit at position i, extending with further.
func (x *Int) at(i int) digits.Digit {
	if i < x.digits.Len() {
		return x.digits.At(i)
	}

	return x.further
}

// extend materializes positions up to n.
func (z *Int) extend(n int) {
	for z.digits.Len() < n {
		z.digits.Push(z.further)
	}
}

// norm trims leading digits equal to further, keeping at least one.
func (z *Int) norm() *Int {
	for z.digits.Len() > 1 && z.digits.Back() == z.further {
		z.digits.Pop()
	}

	if z.digits.Len() == 0 {
		z.digits.Push(z.further)
	}

	return z
}

// move transfers the digits of the temporary x into z, leaving x empty.
func (z *Int) move(x *Int) *Int {
	if z == x {
		return z
	}

	return z.replace(&x.digits, x.further)
}

// replace moves the contents of s into z and leaves s empty.
func (z *Int) replace(s *digits.Store, further digits.Digit) *Int {
	z.digits.Swap(s)
	s.Clear()
	z.further = further

	return z.norm()
}
