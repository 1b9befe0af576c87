package mpreal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mpreal/mpcore/mpreal"
	"github.com/mpreal/mpcore/precision"
	"github.com/mpreal/mpcore/types"
)

func ensurePrecision(t *testing.T) {
	t.Helper()
	_, err := precision.Configure(30, 1)
	require.NoError(t, err)
}

func TestReadStringWriteStringRoundTrip(t *testing.T) {
	ensurePrecision(t)

	cases := []string{"0", "1", "-1", "123.456", "-0.00001", "1e10", "1.5e-7", "999999999"}
	for _, c := range cases {
		r, err := mpreal.ReadString(c)
		require.NoErrorf(t, err, "parsing %q", c)
		out := r.WriteString(types.FormatScientific, 12)
		back, err := mpreal.ReadString(out)
		require.NoErrorf(t, err, "reparsing %q -> %q", c, out)
		require.Truef(t, r.Equal(back), "round trip mismatch for %q: got %q", c, out)
	}
}

func TestAddSubInverse(t *testing.T) {
	ensurePrecision(t)

	a, err := mpreal.ReadString("123.456")
	require.NoError(t, err)
	b, err := mpreal.ReadString("-78.9")
	require.NoError(t, err)

	sum := a.Add(b)
	back := sum.Sub(b)
	require.True(t, a.Equal(back), "a+b-b should recover a")
}

func TestMulDivSmallInverse(t *testing.T) {
	ensurePrecision(t)

	a, err := mpreal.ReadString("3.14159")
	require.NoError(t, err)
	scaled := a.MulSmall(7)
	back, err := scaled.DivSmall(7)
	require.NoError(t, err)
	require.True(t, a.Equal(back), "a*7/7 should recover a")
}

func TestCmpTotality(t *testing.T) {
	ensurePrecision(t)

	values := []string{"-5", "-1", "0", "1", "5"}
	var reals []*mpreal.Real
	for _, v := range values {
		r, err := mpreal.ReadString(v)
		require.NoError(t, err)
		reals = append(reals, r)
	}
	for i := range reals {
		for j := range reals {
			switch {
			case i < j:
				require.Equal(t, types.Less, reals[i].Cmp(reals[j]))
			case i > j:
				require.Equal(t, types.Greater, reals[i].Cmp(reals[j]))
			default:
				require.Equal(t, types.Equal, reals[i].Cmp(reals[j]))
			}
		}
	}
}

func TestZeroIsCanonical(t *testing.T) {
	ensurePrecision(t)

	z, err := mpreal.FromInt64(0)
	require.NoError(t, err)
	require.True(t, z.IsZero())
	require.False(t, z.SignBit())
}
