// exp.go implements §4.7's exponential kernel: argument-reduced Taylor
// series at low/medium precision, Newton-on-log at high precision
// (digits10 >= HighDigitRange).
package kernel

import (
	"math"

	"github.com/mpreal/mpcore/detail"
	"github.com/mpreal/mpcore/mpreal"
)

// HighDigitRange is mp_high_digit_range from §4.7: the digits10 threshold
// at or above which Exp switches from Taylor-series evaluation to a
// Newton iteration seeded by the low-precision routine.
const HighDigitRange = 5000

// Exp returns e^x. Overflow against the maximum argument yields
// Inf, per §4.5.6.
func Exp(x *mpreal.Real) (*mpreal.Real, error) {
	if x.IsNaN() {
		return x.Clone(), nil
	}
	if x.IsZero() {
		return mpreal.FromInt64(1)
	}
	if x.IsInf() {
		out, err := mpreal.New()
		if err != nil {
			return nil, err
		}
		out.SetInf(false)
		if x.SignBit() {
			return mpreal.FromInt64(0)
		}
		return out, nil
	}

	maxArg, err := MaxArgumentForExp()
	if err != nil {
		return nil, err
	}
	if !x.SignBit() && x.Greater(maxArg) {
		out, err := mpreal.New()
		if err != nil {
			return nil, err
		}
		out.SetInf(false)
		return out, nil
	}

	cp, err := mpreal.New()
	if err != nil {
		return nil, err
	}
	digits10 := cp.Precision().Characteristics().Digits10
	if digits10 >= HighDigitRange {
		return expHighPrecision(x)
	}
	return expTaylor(x)
}

// MaxArgumentForExp returns log(max representable Real), the argument
// beyond which Exp overflows to Inf. It is recomputed on every call.
func MaxArgumentForExp() (*mpreal.Real, error) {
	cp, err := mpreal.New()
	if err != nil {
		return nil, err
	}
	maxExp := maxExponent(cp.Precision().Characteristics().ElemNumber)
	ten, err := mpreal.FromInt64(10)
	if err != nil {
		return nil, err
	}
	logTen, err := Log(ten)
	if err != nil {
		return nil, err
	}
	scale, err := mpreal.FromInt64(int64(maxExp))
	if err != nil {
		return nil, err
	}
	return scale.Mul(logTen), nil
}

func maxExponent(elemNumber int) int64 {
	return int64(elemNumber-1) * 8
}

// expTaylor implements the low/medium-precision regime: x = n2*ln2 + r
// reduces to a small r, r is reduced again by 2^(loop_q*nq) per a
// precision-tiered table, evaluated by Taylor series, then repowered by
// squaring loop_q*nq times and finally scaled by 2^n2 via Pow2.
func expTaylor(x *mpreal.Real) (*mpreal.Real, error) {
	ln2, err := Ln2()
	if err != nil {
		return nil, err
	}
	xf := float64Estimate(x)
	ln2f := float64Estimate(ln2)
	n2 := int64(math.Round(xf / ln2f))

	n2Real, err := mpreal.FromInt64(n2)
	if err != nil {
		return nil, err
	}
	r := x.Sub(n2Real.Mul(ln2))

	loopQ, nq, err := taylorReductionTier()
	if err != nil {
		return nil, err
	}
	shift := loopQ * nq
	rReduced, err := r.Pow2(-shift)
	if err != nil {
		return nil, err
	}

	series, err := taylorSeriesExp(rReduced)
	if err != nil {
		return nil, err
	}

	result := series
	for i := 0; i < shift; i++ {
		result = result.Mul(result)
	}
	if n2 != 0 {
		result, err = result.Pow2(int(n2))
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// taylorReductionTier picks (loop_q, nq) from the three precision tiers
// §4.7 names: {(2,8), (3,12), (4,16)}, keyed on the working tolerance.
// Larger digits10Tol needs a larger power-of-two reduction so
// taylorSeriesExp's fixed iteration budget (IterationCap*4 terms) still
// reaches the requested number of matching digits before the budget runs
// out; the thresholds are set so each tier's reduced argument converges
// comfortably within that budget up to the next tier's boundary.
func taylorReductionTier() (loopQ, nq int, err error) {
	cp, err := mpreal.New()
	if err != nil {
		return 0, 0, err
	}
	digits10Tol := cp.Precision().Digits10Tol()
	switch {
	case digits10Tol < 1536:
		return 2, 8, nil
	case digits10Tol < 3072:
		return 3, 12, nil
	default:
		return 4, 16, nil
	}
}

func taylorSeriesExp(r *mpreal.Real) (*mpreal.Real, error) {
	one, err := mpreal.FromInt64(1)
	if err != nil {
		return nil, err
	}
	sum := one.Clone()
	term := one.Clone()

	cp, err := mpreal.New()
	if err != nil {
		return nil, err
	}
	digits10Tol := cp.Precision().Digits10Tol()
	tolElems := detail.TolElems(digits10Tol)
	budget := detail.IterationCap

	for k := int64(1); k < int64(budget)*4; k++ {
		term = term.Mul(r)
		term, err = term.DivSmall(uint32(k))
		if err != nil {
			return nil, err
		}
		next := sum.Add(term)
		if converged(sum, next, tolElems) {
			sum = next
			break
		}
		sum = next
	}
	return sum, nil
}

// expHighPrecision implements the Newton-on-log regime: y <- y*(1 + (x -
// log(y))), seeded from the Taylor routine.
func expHighPrecision(x *mpreal.Real) (*mpreal.Real, error) {
	y, err := expTaylor(x)
	if err != nil {
		return nil, err
	}
	one, err := mpreal.FromInt64(1)
	if err != nil {
		return nil, err
	}
	cp, err := mpreal.New()
	if err != nil {
		return nil, err
	}
	digits10Tol := cp.Precision().Digits10Tol()
	budget := iterationBudget(digits10Tol)
	tolElems := detail.TolElems(digits10Tol / 2)

	for i := 0; i < budget; i++ {
		logY, err := Log(y)
		if err != nil {
			return nil, err
		}
		residual := x.Sub(logY)
		next := y.Mul(one.Add(residual))
		done := converged(y, next, tolElems)
		y = next
		if done {
			break
		}
	}
	return y, nil
}
