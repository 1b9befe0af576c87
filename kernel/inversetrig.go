// inversetrig.go implements §4.7's inverse trigonometric kernels as
// Newton iterations against SinCos, seeded from the float64 estimate --
// the same quadratically-convergent pattern Sqrt and Inv use, so there is
// no separate low/medium/high tiering here: one iteration shape serves
// every precision, just more rounds at higher digits10Tol.
package kernel

import (
	"math"

	"github.com/mpreal/mpcore/detail"
	"github.com/mpreal/mpcore/mpreal"
)

// Asin returns asin(x) for x in [-1, 1], via Newton on f(y) = sin(y) - x.
func Asin(x *mpreal.Real) (*mpreal.Real, error) {
	if x.IsNaN() {
		return x.Clone(), nil
	}
	one, err := mpreal.FromInt64(1)
	if err != nil {
		return nil, err
	}
	if x.Abs().Greater(one) {
		out, err := mpreal.New()
		if err != nil {
			return nil, err
		}
		out.SetNaN()
		return out, nil
	}
	if x.IsZero() {
		return mpreal.FromInt64(0)
	}

	xf := float64Estimate(x)
	y, err := seedFromFloat64(math.Asin(xf))
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
		sinY, cosY, err := SinCos(y)
		if err != nil {
			return nil, err
		}
		residual, err := Div(x.Sub(sinY), cosY)
		if err != nil {
			return nil, err
		}
		next := y.Add(residual)
		done := converged(y, next, tolElems)
		y = next
		if done {
			break
		}
	}
	return y, nil
}

// Acos returns acos(x) = pi/2 - asin(x).
func Acos(x *mpreal.Real) (*mpreal.Real, error) {
	asinX, err := Asin(x)
	if err != nil {
		return nil, err
	}
	pi, err := Pi()
	if err != nil {
		return nil, err
	}
	return pi.DivSmallOrPanic(2).Sub(asinX), nil
}

// Atan returns atan(x) via Newton on f(y) = sin(y) - x*cos(y).
func Atan(x *mpreal.Real) (*mpreal.Real, error) {
	if x.IsNaN() {
		return x.Clone(), nil
	}
	if x.IsZero() {
		return mpreal.FromInt64(0)
	}
	if x.IsInf() {
		pi, err := Pi()
		if err != nil {
			return nil, err
		}
		half := pi.DivSmallOrPanic(2)
		if x.SignBit() {
			return half.Neg(), nil
		}
		return half, nil
	}

	xf := float64Estimate(x)
	y, err := seedFromFloat64(math.Atan(xf))
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
		sinY, cosY, err := SinCos(y)
		if err != nil {
			return nil, err
		}
		f := sinY.Sub(x.Mul(cosY))
		fPrime := cosY.Add(x.Mul(sinY))
		residual, err := Div(f, fPrime)
		if err != nil {
			return nil, err
		}
		next := y.Sub(residual)
		done := converged(y, next, tolElems)
		y = next
		if done {
			break
		}
	}
	return y, nil
}

// Atan2 returns the angle of the point (re, im), matching the standard
// library's atan2(im, re) quadrant convention.
func Atan2(im, re *mpreal.Real) (*mpreal.Real, error) {
	if im.IsNaN() || re.IsNaN() {
		out, err := mpreal.New()
		if err != nil {
			return nil, err
		}
		out.SetNaN()
		return out, nil
	}
	pi, err := Pi()
	if err != nil {
		return nil, err
	}

	if re.IsZero() {
		half := pi.DivSmallOrPanic(2)
		if im.IsZero() {
			return mpreal.FromInt64(0)
		}
		if im.SignBit() {
			return half.Neg(), nil
		}
		return half, nil
	}

	ratio, err := Div(im, re)
	if err != nil {
		return nil, err
	}
	atanRatio, err := Atan(ratio)
	if err != nil {
		return nil, err
	}
	if !re.SignBit() {
		return atanRatio, nil
	}
	if im.SignBit() {
		return atanRatio.Sub(pi), nil
	}
	return atanRatio.Add(pi), nil
}
