// pi.go implements §4.7/§6.1's three selectable π algorithms, grounded in
// the original library's pi.cpp sample (see SPEC_FULL.md's supplemented
// features): the Brent-Salamin quadratic AGM iteration, and the Borwein
// cubic and quartic iterations -- three independently-derived series the
// CLI's -m flag selects between and the test suite cross-checks for
// agreement.
package kernel

import (
	"github.com/mpreal/mpcore/detail"
	"github.com/mpreal/mpcore/mpreal"
)

// PiMethod selects which of the three π algorithms CalculatePi runs,
// matching the CLI's -m flag values from §6.1.
type PiMethod int

const (
	PiBrentQuadratic PiMethod = iota
	PiBorweinCubic
	PiBorweinQuartic
)

// CalculatePi computes π via the requested algorithm to the process's
// configured precision.
func CalculatePi(method PiMethod) (*mpreal.Real, error) {
	switch method {
	case PiBorweinCubic:
		return piBorweinCubic()
	case PiBorweinQuartic:
		return piBorweinQuartic()
	default:
		return piBrentQuadratic()
	}
}

// piBrentQuadratic is the Brent-Salamin AGM iteration: quadratic
// convergence, the same structure as the logarithm's AGM but tracking an
// extra "t" term that accumulates the error correction.
func piBrentQuadratic() (*mpreal.Real, error) {
	one, err := mpreal.FromInt64(1)
	if err != nil {
		return nil, err
	}
	two, err := mpreal.FromInt64(2)
	if err != nil {
		return nil, err
	}
	four, err := mpreal.FromInt64(4)
	if err != nil {
		return nil, err
	}

	sqrt2, err := Sqrt(two)
	if err != nil {
		return nil, err
	}
	b, err := Inv(sqrt2)
	if err != nil {
		return nil, err
	}
	a := one.Clone()
	t, err := Inv(four)
	if err != nil {
		return nil, err
	}
	p := one.Clone()

	cp, err := mpreal.New()
	if err != nil {
		return nil, err
	}
	digits10Tol := cp.Precision().Digits10Tol()
	budget := iterationBudget(digits10Tol)
	tolElems := tolElemsFor(digits10Tol)

	for i := 0; i < budget; i++ {
		aNext := a.Add(b).DivSmallOrPanic(2)
		ab := a.Mul(b)
		bNext, err := Sqrt(ab)
		if err != nil {
			return nil, err
		}
		diff := a.Sub(aNext)
		diffSq := diff.Mul(diff)
		tNext := t.Sub(p.Mul(diffSq))
		pNext := p.MulSmall(2)

		done := converged(a, aNext, tolElems)
		a, b, t, p = aNext, bNext, tNext, pNext
		if done {
			break
		}
	}

	apb := a.Add(b)
	numerator := apb.Mul(apb)
	fourT := t.MulSmall(4)
	return Div(numerator, fourT)
}

// piBorweinCubic is the Borwein cubic-convergence iteration:
// a_0 = 1/3, s_0 = (sqrt(3)-1)/2,
// r_{k+1} = 3 / (1 + 2*cbrt(1 - s_k^3)),
// s_{k+1} = (r_{k+1} - 1)/2,
// a_{k+1} = r_{k+1}^2*a_k - 3^k*(r_{k+1}^2 - 1), with 1/pi = lim a_k.
func piBorweinCubic() (*mpreal.Real, error) {
	one, err := mpreal.FromInt64(1)
	if err != nil {
		return nil, err
	}
	three, err := mpreal.FromInt64(3)
	if err != nil {
		return nil, err
	}

	a, err := one.DivSmall(3)
	if err != nil {
		return nil, err
	}
	sqrt3, err := Sqrt(three)
	if err != nil {
		return nil, err
	}
	s := sqrt3.Sub(one).DivSmallOrPanic(2)

	threeN := one.Clone() // 3^k, starting at k=0
	cp, err := mpreal.New()
	if err != nil {
		return nil, err
	}
	digits10Tol := cp.Precision().Digits10Tol()
	budget := iterationBudget(digits10Tol)
	tolElems := tolElemsFor(digits10Tol)

	for i := 0; i < budget; i++ {
		s3 := s.Mul(s).Mul(s)
		oneMinusS3 := one.Sub(s3)
		cbrt, err := RootN(oneMinusS3, 3)
		if err != nil {
			return nil, err
		}
		denom := one.Add(cbrt.MulSmall(2))
		r, err := Div(three, denom)
		if err != nil {
			return nil, err
		}
		sNext := r.Sub(one).DivSmallOrPanic(2)
		rSq := r.Mul(r)
		aNext := rSq.Mul(a).Sub(threeN.Mul(rSq.Sub(one)))

		done := converged(a, aNext, tolElems)
		a, s = aNext, sNext
		threeN = threeN.MulSmall(3)
		if done {
			break
		}
	}
	return Inv(a)
}

// piBorweinQuartic is the Borwein quartic-convergence iteration:
// a_0 = 6 - 4*sqrt(2), y_0 = sqrt(2)-1,
// y_{k+1} = (1 - (1-y_k^4)^(1/4)) / (1 + (1-y_k^4)^(1/4)),
// a_{k+1} = a_k*(1+y_{k+1})^4 - 2^(2k+3)*y_{k+1}*(1+y_{k+1}+y_{k+1}^2),
// with 1/pi = lim a_k.
func piBorweinQuartic() (*mpreal.Real, error) {
	one, err := mpreal.FromInt64(1)
	if err != nil {
		return nil, err
	}
	two, err := mpreal.FromInt64(2)
	if err != nil {
		return nil, err
	}

	sqrt2, err := Sqrt(two)
	if err != nil {
		return nil, err
	}
	y := sqrt2.Sub(one)
	six, err := mpreal.FromInt64(6)
	if err != nil {
		return nil, err
	}
	a := six.Sub(sqrt2.MulSmall(4))

	cp, err := mpreal.New()
	if err != nil {
		return nil, err
	}
	digits10Tol := cp.Precision().Digits10Tol()
	budget := iterationBudget(digits10Tol)
	tolElems := tolElemsFor(digits10Tol)

	powerOfTwo := uint64(8) // 2^(2k+3) at k=0
	for i := 0; i < budget; i++ {
		y4 := powInt(y, 4)
		oneMinusY4 := one.Sub(y4)
		fourthRoot, err := RootN(oneMinusY4, 4)
		if err != nil {
			return nil, err
		}
		num := one.Sub(fourthRoot)
		den := one.Add(fourthRoot)
		yNext, err := Div(num, den)
		if err != nil {
			return nil, err
		}

		onePlusY := one.Add(yNext)
		onePlusY4 := powInt(onePlusY, 4)
		bracket := one.Add(yNext).Add(yNext.Mul(yNext))
		coeff, err := mpreal.FromUint64(powerOfTwo)
		if err != nil {
			return nil, err
		}
		aNext := a.Mul(onePlusY4).Sub(coeff.Mul(yNext).Mul(bracket))

		done := converged(a, aNext, tolElems)
		a, y = aNext, yNext
		powerOfTwo *= 4 // 2^(2(k+1)+3) = 2^(2k+3) * 4
		if done {
			break
		}
	}
	return Inv(a)
}

func tolElemsFor(digits10Tol int) int {
	return detail.TolElems(digits10Tol / 2)
}
