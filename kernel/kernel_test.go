package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mpreal/mpcore/kernel"
	"github.com/mpreal/mpcore/mpreal"
	"github.com/mpreal/mpcore/precision"
	"github.com/mpreal/mpcore/types"
)

func ensurePrecision(t *testing.T) {
	t.Helper()
	_, err := precision.Configure(30, 1)
	require.NoError(t, err)
}

func closeEnough(t *testing.T, got *mpreal.Real, want string, digits int) {
	t.Helper()
	wantReal, err := mpreal.ReadString(want)
	require.NoError(t, err)
	gotStr := got.WriteString(types.FormatScientific, digits)
	wantStr := wantReal.WriteString(types.FormatScientific, digits)
	require.Equal(t, wantStr, gotStr)
}

func TestInvRoundTrip(t *testing.T) {
	ensurePrecision(t)
	x, err := mpreal.ReadString("7")
	require.NoError(t, err)
	inv, err := kernel.Inv(x)
	require.NoError(t, err)
	back, err := kernel.Inv(inv)
	require.NoError(t, err)
	closeEnough(t, back, "7", 10)
}

func TestSqrtSquareRoundTrip(t *testing.T) {
	ensurePrecision(t)
	x, err := mpreal.ReadString("2")
	require.NoError(t, err)
	s, err := kernel.Sqrt(x)
	require.NoError(t, err)
	squared := s.Mul(s)
	closeEnough(t, squared, "2", 10)
}

func TestLogExpRoundTrip(t *testing.T) {
	ensurePrecision(t)
	x, err := mpreal.ReadString("3.5")
	require.NoError(t, err)
	l, err := kernel.Log(x)
	require.NoError(t, err)
	back, err := kernel.Exp(l)
	require.NoError(t, err)
	closeEnough(t, back, "3.5", 8)
}

func TestPiAgreementAcrossAlgorithms(t *testing.T) {
	ensurePrecision(t)
	quad, err := kernel.CalculatePi(kernel.PiBrentQuadratic)
	require.NoError(t, err)
	cubic, err := kernel.CalculatePi(kernel.PiBorweinCubic)
	require.NoError(t, err)
	quartic, err := kernel.CalculatePi(kernel.PiBorweinQuartic)
	require.NoError(t, err)

	digits := 12
	quadStr := quad.WriteString(types.FormatScientific, digits)
	require.Equal(t, quadStr, cubic.WriteString(types.FormatScientific, digits))
	require.Equal(t, quadStr, quartic.WriteString(types.FormatScientific, digits))
}

func TestBernoulliNumbers(t *testing.T) {
	ensurePrecision(t)
	b, err := kernel.Bernoulli(3)
	require.NoError(t, err)
	require.Len(t, b, 3)
	closeEnough(t, b[0], "1", 10)
	closeEnough(t, b[1], "-0.5", 10)
	closeEnough(t, b[2], "0.166666666666666666666666666667", 10) // B_2 = 1/6
}

// TestBernoulliHigherIndices guards the tangent-number recurrence past
// B_2/B_4, where the k=1,2 starting steps happen to coincide with the
// correct multiplier and can mask an off-by-one in later steps.
func TestBernoulliHigherIndices(t *testing.T) {
	ensurePrecision(t)
	b, err := kernel.Bernoulli(7)
	require.NoError(t, err)
	require.Len(t, b, 7)
	closeEnough(t, b[4], "-0.0333333333333333333333333333333", 10) // B_4 = -1/30
	closeEnough(t, b[6], "0.0238095238095238095238095238095", 10)  // B_6 = 1/42
}

func TestSinCosIdentity(t *testing.T) {
	ensurePrecision(t)
	x, err := mpreal.ReadString("0.75")
	require.NoError(t, err)
	sin, cos, err := kernel.SinCos(x)
	require.NoError(t, err)
	sum := sin.Mul(sin).Add(cos.Mul(cos))
	closeEnough(t, sum, "1", 8)
}

func TestGammaHalfIsSqrtPi(t *testing.T) {
	ensurePrecision(t)
	half, err := mpreal.ReadString("0.5")
	require.NoError(t, err)
	gammaHalf, err := kernel.Gamma(half)
	require.NoError(t, err)

	pi, err := kernel.Pi()
	require.NoError(t, err)
	sqrtPi, err := kernel.Sqrt(pi)
	require.NoError(t, err)

	closeEnough(t, gammaHalf, sqrtPi.WriteString(types.FormatScientific, 10), 10)
}

func TestGammaIntegerMatchesFactorial(t *testing.T) {
	ensurePrecision(t)
	five, err := mpreal.FromInt64(5)
	require.NoError(t, err)
	gammaFive, err := kernel.Gamma(five)
	require.NoError(t, err)

	fourFactorial, err := kernel.Factorial(4)
	require.NoError(t, err)

	closeEnough(t, gammaFive, fourFactorial.WriteString(types.FormatScientific, 10), 10)
}

func TestBesselJZeroArgument(t *testing.T) {
	ensurePrecision(t)
	zero, err := mpreal.FromInt64(0)
	require.NoError(t, err)

	j0, err := kernel.Jn(zero, 0)
	require.NoError(t, err)
	closeEnough(t, j0, "1", 10)

	j1, err := kernel.Jn(zero, 1)
	require.NoError(t, err)
	closeEnough(t, j1, "0", 10)
}

func TestAtan2Quadrants(t *testing.T) {
	ensurePrecision(t)
	pi, err := kernel.Pi()
	require.NoError(t, err)

	one, err := mpreal.FromInt64(1)
	require.NoError(t, err)
	zero, err := mpreal.FromInt64(0)
	require.NoError(t, err)
	negOne := one.Neg()

	q1, err := kernel.Atan2(one, one)
	require.NoError(t, err)
	quarterPi := pi.DivSmallOrPanic(4)
	closeEnough(t, q1, quarterPi.WriteString(types.FormatScientific, 10), 10)

	q2, err := kernel.Atan2(one, negOne)
	require.NoError(t, err)
	require.True(t, q2.Greater(zero))
}
