// Package integer provides signed integers of arbitrary size.
//
// An Int stores base 2^32 digits, least significant first, in a digits.Store
// and a further word that stands for every position past the stored digits.
// further is 0 for non-negative values and all ones for negative values, so
// the digits are an infinite-width two's complement number:
//
//	value  | digits                  | further
//	-------|-------------------------|------------
//	     0 | [0x00000000]            | 0x00000000
//	    -1 | [0xffffffff]            | 0xffffffff
//	 2^32  | [0x00000000 0x00000001] | 0x00000000
//	-2^32  | [0x00000000]            | 0xffffffff
//
// Bitwise operators and shifts work directly on this form. Multiplication and
// division split off the sign, work on magnitudes and negate the result.
//
// # Division
//
// Quo, Rem and QuoRem truncate toward zero and the remainder takes the sign of
// the dividend, so x == (x/y)*y + x%y. Dividing by zero returns
// ErrDivisionByZero.
//
// Division by a single digit is a short division. Longer divisors use
// schoolbook long division: both operands are shifted so the divisor's top
// digit has its high bit set, each quotient digit is estimated from the top
// three remainder digits and the top two divisor digits, and an estimate that
// is one too large is fixed by adding the divisor back.
//
// # Copying
//
// Set and Clone share digit storage. The first write to either side copies
// it, so sharing is never observable.
package integer
