package integer

import (
	"github.com/calebcase/oops"

	"github.com/calebcase/bigint/digits"
)

// Parse returns the Int represented by the decimal string s.
func Parse(s string) (*Int, error) {
	return new(Int).SetString(s)
}

// SetString sets z to the value of the decimal string s and returns z. s is an
// optional '-' followed by one or more digits '0' through '9'. On error z is
// unchanged.
func (z *Int) SetString(s string) (*Int, error) {
	text, negative := s, false
	if len(text) > 0 && text[0] == '-' {
		text, negative = text[1:], true
	}

	if len(text) == 0 {
		return nil, Error.New("%q has no digits: %w", s, ErrInvalidFormat)
	}

	v := new(Int)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			return nil, Error.New("unexpected %q at offset %d in %q: %w", c, len(s)-len(text)+i, s, ErrInvalidFormat)
		}

		v.mulAddDigit(10, digits.Digit(c-'0'))
	}

	// Negate once at the end so the accumulation stays unsigned.
	if negative {
		v.Neg(v)
	}

	return z.move(v), nil
}

// String returns the decimal representation of x.
func (x *Int) String() string {
	return string(x.Append(nil))
}

// Append appends the decimal representation of x to buf and returns the
// extended buffer.
func (x *Int) Append(buf []byte) []byte {
	if x.IsZero() {
		return append(buf, '0')
	}

	// The clone shares x's digits; divDigit replaces them instead of writing
	// through, so x is left alone.
	m := magnitude(x).Clone()

	var rev []byte
	for !m.IsZero() {
		rev = append(rev, byte('0'+m.divDigit(m, 10)))
	}

	if x.negative() {
		buf = append(buf, '-')
	}

	for i := len(rev) - 1; i >= 0; i-- {
		buf = append(buf, rev[i])
	}

	return buf
}

// MarshalText implements encoding.TextMarshaler.
func (x *Int) MarshalText() (text []byte, err error) {
	return x.Append(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Int) UnmarshalText(text []byte) (err error) {
	_, err = z.SetString(string(text))
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}

// MarshalJSON implements json.Marshaler. The value is written as a JSON
// number.
func (x *Int) MarshalJSON() ([]byte, error) {
	if x == nil {
		return []byte("null"), nil
	}

	return x.Append(nil), nil
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves z unchanged.
func (z *Int) UnmarshalJSON(data []byte) (err error) {
	if string(data) == "null" {
		return nil
	}

	return z.UnmarshalText(data)
}
