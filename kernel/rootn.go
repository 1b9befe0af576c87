// rootn.go implements §4.7's n-th root inverse kernel: Newton's method on
// f(y) = 1/y^p - x, giving y <- y*(1 + (1 - x*y^p)/p).
package kernel

import (
	"math"

	"github.com/mpreal/mpcore/detail"
	"github.com/mpreal/mpcore/mpreal"
)

// RootNInv returns x^(-1/p) for a positive integer root degree p >= 2.
func RootNInv(x *mpreal.Real, p int) (*mpreal.Real, error) {
	if x.IsNaN() || x.IsZero() || x.SignBit() {
		out, err := mpreal.New()
		if err != nil {
			return nil, err
		}
		out.SetNaN()
		return out, nil
	}
	if x.IsInf() {
		return mpreal.FromInt64(0)
	}

	seed := math.Pow(float64Estimate(x), -1.0/float64(p))
	y, err := seedFromFloat64(seed)
	if err != nil {
		return nil, err
	}
	one, err := mpreal.FromInt64(1)
	if err != nil {
		return nil, err
	}

	tolElems := detail.TolElems(x.Precision().Digits10Tol() / 2)
	budget := iterationBudget(x.Precision().Digits10Tol())
	for i := 0; i < budget; i++ {
		yp := powInt(y, p)
		xyp := x.Mul(yp)
		residual := one.Sub(xyp)
		scaled, err := residual.DivSmall(uint32(p))
		if err != nil {
			return nil, err
		}
		next := y.Mul(one.Add(scaled))
		done := converged(y, next, tolElems)
		y = next
		if done {
			break
		}
	}
	return y, nil
}

// RootN returns x^(1/p) as Inv(RootNInv(x, p)).
func RootN(x *mpreal.Real, p int) (*mpreal.Real, error) {
	inv, err := RootNInv(x, p)
	if err != nil {
		return nil, err
	}
	return Inv(inv)
}

// powInt returns x^p for a small non-negative integer p via repeated
// multiplication (p is 3 or 4 for the pi algorithms' root degrees and at
// most a few dozen for Bernoulli's 4^i, so repeated multiplication is
// plenty).
func powInt(x *mpreal.Real, p int) *mpreal.Real {
	if p == 0 {
		one, _ := mpreal.FromInt64(1)
		return one
	}
	result := x.Clone()
	for i := 1; i < p; i++ {
		result = result.Mul(x)
	}
	return result
}
