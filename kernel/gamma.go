// gamma.go implements §4.7's gamma/factorial kernel (supplementing the
// distilled spec per SPEC_FULL.md's original_source/bessel/bessel_main.cpp
// note), via Stirling's asymptotic series: shift the argument up by an
// integer N large enough for the series (built from the same Bernoulli
// numbers kernel.Bernoulli already computes) to converge, evaluate
// ln(Gamma) there, then recurse back down through the functional equation
// Gamma(x) = Gamma(x+N) / (x(x+1)...(x+N-1)).
package kernel

import (
	"math"

	"github.com/mpreal/mpcore/detail"
	"github.com/mpreal/mpcore/mpreal"
)

// stirlingTerms is the number of Bernoulli-series correction terms
// Gamma's Stirling expansion sums; chosen generously relative to the
// shift so the series converges well inside the process's working
// precision for any digits10Tol this module supports.
const stirlingTerms = 20

// Factorial returns n! for n >= 0, via direct exact multiplication.
func Factorial(n int) (*mpreal.Real, error) {
	if n < 0 {
		out, err := mpreal.New()
		if err != nil {
			return nil, err
		}
		out.SetNaN()
		return out, nil
	}
	result, err := mpreal.FromInt64(1)
	if err != nil {
		return nil, err
	}
	for k := 2; k <= n; k++ {
		kReal, err := mpreal.FromInt64(int64(k))
		if err != nil {
			return nil, err
		}
		result = result.Mul(kReal)
	}
	return result, nil
}

// Gamma returns Gamma(x) for x not a non-positive integer (those are
// poles, reported as NaN per §7's DomainError convention).
func Gamma(x *mpreal.Real) (*mpreal.Real, error) {
	if x.IsNaN() {
		return x.Clone(), nil
	}
	if (x.IsZero() || x.SignBit()) && isIntegerValued(x) {
		out, err := mpreal.New()
		if err != nil {
			return nil, err
		}
		out.SetNaN()
		return out, nil
	}

	cp, err := mpreal.New()
	if err != nil {
		return nil, err
	}
	digits10Tol := cp.Precision().Digits10Tol()
	shift := shiftForStirling(digits10Tol)

	shiftReal, err := mpreal.FromInt64(int64(shift))
	if err != nil {
		return nil, err
	}
	z := x.Add(shiftReal)

	lnGammaZ, err := stirlingLnGamma(z, digits10Tol)
	if err != nil {
		return nil, err
	}
	gammaZ, err := Exp(lnGammaZ)
	if err != nil {
		return nil, err
	}

	denom, err := mpreal.FromInt64(1)
	if err != nil {
		return nil, err
	}
	for k := 0; k < shift; k++ {
		kReal, err := mpreal.FromInt64(int64(k))
		if err != nil {
			return nil, err
		}
		denom = denom.Mul(x.Add(kReal))
	}
	return Div(gammaZ, denom)
}

func shiftForStirling(digits10Tol int) int {
	shift := int(math.Ceil(float64(digits10Tol)/2)) + 8
	if shift < 16 {
		shift = 16
	}
	return shift
}

func isIntegerValued(x *mpreal.Real) bool {
	return x.Equal(x.Trunc())
}

// stirlingLnGamma evaluates (z-1/2)ln(z) - z + (1/2)ln(2*pi) + sum_{n=1}
// B_{2n}/(2n(2n-1)) * z^-(2n-1), for z already shifted large.
func stirlingLnGamma(z *mpreal.Real, digits10Tol int) (*mpreal.Real, error) {
	half, err := mpreal.FromInt64(1)
	if err != nil {
		return nil, err
	}
	half, err = half.DivSmall(2)
	if err != nil {
		return nil, err
	}

	logZ, err := Log(z)
	if err != nil {
		return nil, err
	}
	zMinusHalf := z.Sub(half)
	result := zMinusHalf.Mul(logZ).Sub(z)

	two, err := mpreal.FromInt64(2)
	if err != nil {
		return nil, err
	}
	pi, err := Pi()
	if err != nil {
		return nil, err
	}
	twoPi := two.Mul(pi)
	logTwoPi, err := Log(twoPi)
	if err != nil {
		return nil, err
	}
	result = result.Add(half.Mul(logTwoPi))

	bernoulli, err := Bernoulli(2*stirlingTerms + 1)
	if err != nil {
		return nil, err
	}

	zInv, err := Inv(z)
	if err != nil {
		return nil, err
	}
	zInvSquared := zInv.Mul(zInv)
	power := zInv.Clone() // z^-1, grows to z^-(2n-1) as n increases

	tolElems := detail.TolElems(digits10Tol)
	for n := 1; n <= stirlingTerms; n++ {
		b2n := bernoulli[2*n]
		denomCoeff, err := mpreal.FromInt64(int64(2*n) * int64(2*n-1))
		if err != nil {
			return nil, err
		}
		coeff, err := Div(b2n, denomCoeff)
		if err != nil {
			return nil, err
		}
		term := coeff.Mul(power)
		next := result.Add(term)
		done := converged(result, next, tolElems)
		result = next
		if done {
			break
		}
		power = power.Mul(zInvSquared)
	}
	return result, nil
}
