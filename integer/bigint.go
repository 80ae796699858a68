package integer

import (
	"encoding/binary"
	"math/big"

	"github.com/calebcase/bigint/digits"
)

// bytes returns |x| as big-endian bytes without leading zeros, the layout of
// big.Int.Bytes.
func (x *Int) bytes() []byte {
	m := magnitude(x)
	n := m.size()

	buf := make([]byte, 4*n)
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint32(buf[4*(n-1-i):], m.at(i))
	}

	i := 0
	for i < len(buf) && buf[i] == 0 {
		i++
	}

	return buf[i:]
}

// setBytes sets z to the big-endian unsigned integer in buf.
func (z *Int) setBytes(buf []byte) *Int {
	var out digits.Store
	for end := len(buf); end > 0; end -= 4 {
		var d digits.Digit
		for _, c := range buf[max(end-4, 0):end] {
			d = d<<8 | digits.Digit(c)
		}

		out.Push(d)
	}

	return z.replace(&out, 0)
}

// BigInt returns x as a new big.Int.
func (x *Int) BigInt() *big.Int {
	b := new(big.Int).SetBytes(x.bytes())
	if x.negative() {
		b.Neg(b)
	}

	return b
}

// SetBigInt sets z to b and returns z.
func (z *Int) SetBigInt(b *big.Int) *Int {
	z.setBytes(b.Bytes())
	if b.Sign() < 0 {
		z.Neg(z)
	}

	return z
}
