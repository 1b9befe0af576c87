package cplx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mpreal/mpcore/cplx"
	"github.com/mpreal/mpcore/mpreal"
	"github.com/mpreal/mpcore/precision"
	"github.com/mpreal/mpcore/types"
)

func ensurePrecision(t *testing.T) {
	t.Helper()
	_, err := precision.Configure(30, 1)
	require.NoError(t, err)
}

func mustReal(t *testing.T, s string) *mpreal.Real {
	t.Helper()
	r, err := mpreal.ReadString(s)
	require.NoError(t, err)
	return r
}

func closeEnough(t *testing.T, got *mpreal.Real, want string, digits int) {
	t.Helper()
	wantReal := mustReal(t, want)
	require.Equal(t,
		wantReal.WriteString(types.FormatScientific, digits),
		got.WriteString(types.FormatScientific, digits))
}

func TestComplexMulDivRoundTrip(t *testing.T) {
	ensurePrecision(t)
	z := cplx.New(mustReal(t, "3"), mustReal(t, "4"))
	w := cplx.New(mustReal(t, "1"), mustReal(t, "-2"))

	prod := z.Mul(w)
	back, err := prod.Div(w)
	require.NoError(t, err)

	closeEnough(t, back.Re, "3", 10)
	closeEnough(t, back.Im, "4", 10)
}

func TestComplexDivLargeDenominator(t *testing.T) {
	ensurePrecision(t)
	// The Smith algorithm branch taken depends on |Re(w)| vs |Im(w)|;
	// exercise both by swapping which component dominates.
	z := cplx.New(mustReal(t, "1"), mustReal(t, "1"))

	wReDominant := cplx.New(mustReal(t, "100"), mustReal(t, "1"))
	quotA, err := z.Div(wReDominant)
	require.NoError(t, err)
	roundTripA := quotA.Mul(wReDominant)
	closeEnough(t, roundTripA.Re, "1", 8)
	closeEnough(t, roundTripA.Im, "1", 8)

	wImDominant := cplx.New(mustReal(t, "1"), mustReal(t, "100"))
	quotB, err := z.Div(wImDominant)
	require.NoError(t, err)
	roundTripB := quotB.Mul(wImDominant)
	closeEnough(t, roundTripB.Re, "1", 8)
	closeEnough(t, roundTripB.Im, "1", 8)
}

func TestComplexSqrtSquareRoundTrip(t *testing.T) {
	ensurePrecision(t)
	z := cplx.New(mustReal(t, "-3"), mustReal(t, "4"))
	s, err := cplx.Sqrt(z)
	require.NoError(t, err)
	squared := s.Mul(s)
	closeEnough(t, squared.Re, "-3", 8)
	closeEnough(t, squared.Im, "4", 8)
}

func TestComplexLogExpRoundTrip(t *testing.T) {
	ensurePrecision(t)
	z := cplx.New(mustReal(t, "1.5"), mustReal(t, "0.5"))
	l, err := cplx.Log(z)
	require.NoError(t, err)
	back, err := cplx.Exp(l)
	require.NoError(t, err)
	closeEnough(t, back.Re, "1.5", 6)
	closeEnough(t, back.Im, "0.5", 6)
}

func TestComplexInvIsReciprocal(t *testing.T) {
	ensurePrecision(t)
	z := cplx.New(mustReal(t, "2"), mustReal(t, "1"))
	inv, err := cplx.Inv(z)
	require.NoError(t, err)
	product := z.Mul(inv)
	closeEnough(t, product.Re, "1", 8)
	closeEnough(t, product.Im, "0", 8)
}
