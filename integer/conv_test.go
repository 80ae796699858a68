package integer

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	type TC struct {
		in   string
		want string
	}

	tcs := []TC{
		{in: "0", want: "0"},
		{in: "-0", want: "0"},
		{in: "000123", want: "123"},
		{in: "-000", want: "0"},
		{in: "4294967295", want: "4294967295"},
		{in: "4294967296", want: "4294967296"},
		{in: "-4294967296", want: "-4294967296"},
		{in: "-9223372036854775808", want: "-9223372036854775808"},
		{in: "123456789012345678901234567890", want: "123456789012345678901234567890"},
		{in: "-123456789012345678901234567890", want: "-123456789012345678901234567890"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.in), func(t *testing.T) {
			x, err := Parse(tc.in)
			require.NoError(t, err)
			requireCanonical(t, x)
			require.Equal(t, tc.want, x.String())
		})
	}

	t.Run("radix", func(t *testing.T) {
		require.True(t, mustParse(t, "4294967296").Equal(new(Int).Lsh(New(1), 32)))
	})

	t.Run("doubled", func(t *testing.T) {
		x := mustParse(t, "123456789012345678901234567890")
		x.Mul(x, New(2))
		require.Equal(t, "246913578024691357802469135780", x.String())
	})
}

func TestParseInvalid(t *testing.T) {
	tcs := []string{
		"",
		"-",
		"+1",
		" 1",
		"1 ",
		"12a3",
		"--1",
		"1-",
		"0x10",
		"1.5",
		"١",
	}

	for i, in := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, in), func(t *testing.T) {
			x, err := Parse(in)
			require.ErrorIs(t, err, ErrInvalidFormat)
			require.True(t, Error.Has(err), "%+v", err)
			require.Nil(t, x)

			z := New(42)
			_, err = z.SetString(in)
			require.ErrorIs(t, err, ErrInvalidFormat)
			require.True(t, Error.Has(err), "%+v", err)
			require.Equal(t, "42", z.String())

			err = z.UnmarshalText([]byte(in))
			require.Error(t, err)
			require.Equal(t, "42", z.String())
		})
	}

	_, err := Parse("12a3")
	require.Contains(t, err.Error(), "offset 2")
	require.Contains(t, err.Error(), "invalid format")
}

func TestStringRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))

	for i := 0; i < 2000; i++ {
		b := randBig(rnd, 10)
		x := fromBig(b)

		s := x.String()
		require.Equal(t, b.String(), s)

		y, err := Parse(s)
		require.NoError(t, err)
		require.True(t, x.Equal(y), "%s", s)

		require.Equal(t, "x="+s, string(x.Append([]byte("x="))))
	}
}

func TestStringKeepsReceiver(t *testing.T) {
	x := mustParse(t, "-123456789012345678901234567890")
	y := x.Clone()

	_ = x.String()
	_ = y.String()

	require.True(t, x.Equal(y))
	require.Equal(t, "-123456789012345678901234567890", x.String())
}

func TestText(t *testing.T) {
	x := mustParse(t, "-98765432109876543210")

	text, err := x.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "-98765432109876543210", string(text))

	var z Int
	require.NoError(t, z.UnmarshalText(text))
	require.True(t, x.Equal(&z))
}

func TestJSON(t *testing.T) {
	type Doc struct {
		A *Int   `json:"a"`
		B *Int   `json:"b"`
		L []*Int `json:"l"`
	}

	in := Doc{
		A: mustParse(t, "-12345678901234567890123"),
		L: []*Int{New(0), New(-1), NewUint64(1 << 63)},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"a":-12345678901234567890123,"b":null,"l":[0,-1,9223372036854775808]}`, string(data))

	var out Doc
	require.NoError(t, json.Unmarshal(data, &out))
	require.Nil(t, out.B)
	require.True(t, in.A.Equal(out.A))
	require.Len(t, out.L, len(in.L))

	for i := range in.L {
		require.True(t, in.L[i].Equal(out.L[i]), "l[%d]", i)
	}

	t.Run("null", func(t *testing.T) {
		z := New(7)
		require.NoError(t, z.UnmarshalJSON([]byte("null")))
		require.Equal(t, "7", z.String())

		var nilInt *Int
		data, err := nilInt.MarshalJSON()
		require.NoError(t, err)
		require.Equal(t, "null", string(data))
	})

	t.Run("string", func(t *testing.T) {
		var out Doc
		err := json.Unmarshal([]byte(`{"a":"12"}`), &out)
		require.Error(t, err)
	})
}

func BenchmarkString(b *testing.B) {
	x := mustParse(b, "-123456789012345678901234567890123456789012345678901234567890")
	buf := make([]byte, 0, 64)

	for n := 0; n < b.N; n++ {
		buf = x.Append(buf[:0])
	}
}
