package integer

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bigint/digits"
)

// edges are digit values that sit on carry, borrow and normalization
// boundaries.
var edges = []digits.Digit{
	0,
	1,
	2,
	0x7fff_ffff,
	0x8000_0000,
	0x8000_0001,
	0xffff_fffe,
	0xffff_ffff,
}

func mustParse(t testing.TB, s string) *Int {
	t.Helper()

	x, err := Parse(s)
	require.NoError(t, err)

	return x
}

func requireCanonical(t testing.TB, x *Int) {
	t.Helper()

	ds := x.digits.Digits()
	dump := spew.Sdump(ds)

	require.True(t, x.further == 0 || x.further == allOnes, "further=%#x", x.further)
	require.NotEmpty(t, ds, "digits: %s", dump)

	if len(ds) > 1 {
		require.NotEqual(t, x.further, ds[len(ds)-1], "digits: %s", dump)
	}
}

// requireValue checks x against the oracle and its canonical form.
func requireValue(t testing.TB, want *big.Int, x *Int) {
	t.Helper()

	requireCanonical(t, x)
	require.Equal(t, want.String(), x.String())
	require.Zero(t, want.Cmp(x.BigInt()), "want %s got %s", want, x)
}

// randBig returns a random value of up to maxDigits digits, drawn mostly from
// edge digits.
func randBig(rnd *rand.Rand, maxDigits int) *big.Int {
	n := rnd.Intn(maxDigits + 1)

	b := new(big.Int)
	for i := 0; i < n; i++ {
		d := rnd.Uint32()
		if rnd.Intn(2) == 0 {
			d = edges[rnd.Intn(len(edges))]
		}

		b.Lsh(b, 32)
		b.Or(b, new(big.Int).SetUint64(uint64(d)))
	}

	if rnd.Intn(2) == 0 {
		b.Neg(b)
	}

	return b
}

func fromBig(b *big.Int) *Int {
	return new(Int).SetBigInt(b)
}
