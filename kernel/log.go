// log.go implements §4.7's logarithm kernel: the AGM iteration
// log(x) = pi / (2*agm(1, 4/(x*2^m))) - m*ln2.
package kernel

import (
	"math"
	"sync"

	"github.com/mpreal/mpcore/detail"
	"github.com/mpreal/mpcore/mpreal"
)

var (
	ln2Once   sync.Once
	ln2Value  *mpreal.Real
	ln2Err    error
	piOnce    sync.Once
	piValue   *mpreal.Real
	piErr     error
)

// Pi returns the process-wide cached value of pi, computed once via the
// Brent-Salamin quadratic algorithm (CalculatePi exposes the other two
// algorithms for direct comparison/testing; this cache always uses the
// Brent-Salamin one, which every other kernel leans on internally).
func Pi() (*mpreal.Real, error) {
	piOnce.Do(func() {
		piValue, piErr = piBrentQuadratic()
	})
	return piValue, piErr
}

// Ln2 returns the process-wide cached value of ln(2), bootstrapped from
// the same AGM machinery as Log by computing log(2^m) = m*ln2 directly
// (m alone, no subtracted correction term, since x=1 there) and dividing
// by m.
func Ln2() (*mpreal.Real, error) {
	ln2Once.Do(func() {
		ln2Value, ln2Err = computeLn2()
	})
	return ln2Value, ln2Err
}

func computeLn2() (*mpreal.Real, error) {
	cp, err := mpreal.New()
	if err != nil {
		return nil, err
	}
	digits10Tol := cp.Precision().Digits10Tol()
	m := int(math.Ceil(1.67*float64(digits10Tol))) + 16
	if m < 16 {
		m = 16
	}

	one, err := mpreal.FromInt64(1)
	if err != nil {
		return nil, err
	}
	four, err := mpreal.FromInt64(4)
	if err != nil {
		return nil, err
	}
	pow2m, err := one.Pow2(m)
	if err != nil {
		return nil, err
	}
	b0, err := Div(four, pow2m)
	if err != nil {
		return nil, err
	}

	limit, err := agm(one, b0, digits10Tol)
	if err != nil {
		return nil, err
	}

	pi, err := Pi()
	if err != nil {
		return nil, err
	}
	two, err := mpreal.FromInt64(2)
	if err != nil {
		return nil, err
	}
	logOf2ToM, err := Div(pi, two.Mul(limit))
	if err != nil {
		return nil, err
	}
	return logOf2ToM.DivSmall(uint32(m))
}

// Log returns log(x). x <= 0 yields NaN; x == 1 yields zero; x == 2 and
// x == 1/2 return the cached ln2 (negated for 1/2) directly.
func Log(x *mpreal.Real) (*mpreal.Real, error) {
	if x.IsNaN() {
		return x.Clone(), nil
	}
	if x.IsZero() || x.SignBit() {
		out, err := mpreal.New()
		if err != nil {
			return nil, err
		}
		out.SetNaN()
		return out, nil
	}
	one, err := mpreal.FromInt64(1)
	if err != nil {
		return nil, err
	}
	if x.Equal(one) {
		return mpreal.FromInt64(0)
	}
	two, err := mpreal.FromInt64(2)
	if err != nil {
		return nil, err
	}
	if x.Equal(two) {
		return Ln2()
	}
	half, err := one.DivSmall(2)
	if err != nil {
		return nil, err
	}
	if x.Equal(half) {
		ln2, err := Ln2()
		if err != nil {
			return nil, err
		}
		return ln2.Neg(), nil
	}
	if x.IsInf() {
		out, err := mpreal.New()
		if err != nil {
			return nil, err
		}
		out.SetInf(false)
		return out, nil
	}
	if x.Less(one) {
		inv, err := Inv(x)
		if err != nil {
			return nil, err
		}
		result, err := Log(inv)
		if err != nil {
			return nil, err
		}
		return result.Neg(), nil
	}

	cp, err := mpreal.New()
	if err != nil {
		return nil, err
	}
	digits10Tol := cp.Precision().Digits10Tol()
	log2X := math.Log2(float64Estimate(x))
	m := detail.AGMInitialM(cp.Precision().Digits10Tol(), log2X)

	pow2m, err := one.Pow2(m)
	if err != nil {
		return nil, err
	}
	xScaled := x.Mul(pow2m)
	four, err := mpreal.FromInt64(4)
	if err != nil {
		return nil, err
	}
	b0, err := Div(four, xScaled)
	if err != nil {
		return nil, err
	}

	limit, err := agm(one, b0, digits10Tol)
	if err != nil {
		return nil, err
	}
	pi, err := Pi()
	if err != nil {
		return nil, err
	}
	piOverTwoA, err := Div(pi, two.Mul(limit))
	if err != nil {
		return nil, err
	}
	mLn2, err := Ln2()
	if err != nil {
		return nil, err
	}
	mReal, err := mpreal.FromInt64(int64(m))
	if err != nil {
		return nil, err
	}
	return piOverTwoA.Sub(mReal.Mul(mLn2)), nil
}
