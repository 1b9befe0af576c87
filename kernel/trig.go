// trig.go implements §4.7's trigonometric kernels. Sin/Cos are evaluated
// together by an argument-reduced Taylor series (reduction to [-pi/4,
// pi/4] via the cached pi and the standard octant folding), which keeps
// this package free of any dependency on the complex layer -- cplx.Exp
// builds on these, not the other way around.
package kernel

import (
	"math"

	"github.com/mpreal/mpcore/detail"
	"github.com/mpreal/mpcore/mpreal"
)

// SinCos returns (sin(x), cos(x)) together, sharing the argument
// reduction between them.
func SinCos(x *mpreal.Real) (*mpreal.Real, *mpreal.Real, error) {
	if x.IsNaN() || x.IsInf() {
		nan, err := mpreal.New()
		if err != nil {
			return nil, nil, err
		}
		nan.SetNaN()
		return nan.Clone(), nan.Clone(), nil
	}
	if x.IsZero() {
		zero, err := mpreal.FromInt64(0)
		if err != nil {
			return nil, nil, err
		}
		one, err := mpreal.FromInt64(1)
		if err != nil {
			return nil, nil, err
		}
		return zero, one, nil
	}

	pi, err := Pi()
	if err != nil {
		return nil, nil, err
	}
	halfPi := pi.DivSmallOrPanic(2)

	// Reduce to r in (-pi/4, pi/4] by subtracting the nearest multiple of
	// pi/2, tracking which quadrant k that multiple landed in.
	xf := float64Estimate(x)
	piF := float64Estimate(pi)
	k := int64(math.Round(xf / (piF / 2)))

	kReal, err := mpreal.FromInt64(k)
	if err != nil {
		return nil, nil, err
	}
	r := x.Sub(kReal.Mul(halfPi))

	sinR, cosR, err := taylorSinCos(r)
	if err != nil {
		return nil, nil, err
	}

	switch ((k % 4) + 4) % 4 {
	case 0:
		return sinR, cosR, nil
	case 1:
		return cosR, sinR.Neg(), nil
	case 2:
		return sinR.Neg(), cosR.Neg(), nil
	default:
		return cosR.Neg(), sinR, nil
	}
}

// Sin returns sin(x).
func Sin(x *mpreal.Real) (*mpreal.Real, error) {
	s, _, err := SinCos(x)
	return s, err
}

// Cos returns cos(x).
func Cos(x *mpreal.Real) (*mpreal.Real, error) {
	_, c, err := SinCos(x)
	return c, err
}

// Tan returns sin(x)/cos(x).
func Tan(x *mpreal.Real) (*mpreal.Real, error) {
	s, c, err := SinCos(x)
	if err != nil {
		return nil, err
	}
	return Div(s, c)
}

// taylorSinCos evaluates the Maclaurin series sin(r) = sum (-1)^n
// r^(2n+1)/(2n+1)!, cos(r) = sum (-1)^n r^(2n)/(2n)!, on an argument
// already reduced to (-pi/2, pi/2], advancing each series' running term
// by r^2/((2n)(2n+1)) per step so both share the same loop.
func taylorSinCos(r *mpreal.Real) (*mpreal.Real, *mpreal.Real, error) {
	one, err := mpreal.FromInt64(1)
	if err != nil {
		return nil, nil, err
	}

	sinSum := r.Clone()
	cosSum := one.Clone()
	sinTerm := r.Clone()
	cosTerm := one.Clone()
	rSquared := r.Mul(r)

	cp, err := mpreal.New()
	if err != nil {
		return nil, nil, err
	}
	digits10Tol := cp.Precision().Digits10Tol()
	tolElems := detail.TolElems(digits10Tol)
	budget := detail.IterationCap * 8

	for n := int64(1); n < int64(budget); n++ {
		// cos term n: divide by (2n-1)(2n), negate.
		cosTerm = cosTerm.Mul(rSquared)
		cosTerm, err = cosTerm.DivSmall(uint32((2*n - 1) * (2 * n)))
		if err != nil {
			return nil, nil, err
		}
		cosTerm = cosTerm.Neg()
		nextCos := cosSum.Add(cosTerm)

		// sin term n: divide by (2n)(2n+1), negate.
		sinTerm = sinTerm.Mul(rSquared)
		sinTerm, err = sinTerm.DivSmall(uint32((2 * n) * (2*n + 1)))
		if err != nil {
			return nil, nil, err
		}
		sinTerm = sinTerm.Neg()
		nextSin := sinSum.Add(sinTerm)

		done := converged(sinSum, nextSin, tolElems) && converged(cosSum, nextCos, tolElems)
		sinSum, cosSum = nextSin, nextCos
		if done {
			break
		}
	}
	return sinSum, cosSum, nil
}
