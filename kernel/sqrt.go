// sqrt.go implements §4.7's square root kernel via the coupled Newton
// iteration (the "Pi Unleashed" §16 analogue referenced in the spec):
// x_{k+1} = x_k + v_k*(a - x_k^2), v_{k+1} = v_k + v_k*(1 - 2*v_k*x_{k+1}),
// converging x_k -> sqrt(a) and v_k -> 1/(2*sqrt(a)) simultaneously so
// every step costs two multiplies instead of a division.
package kernel

import (
	"math"

	"github.com/mpreal/mpcore/detail"
	"github.com/mpreal/mpcore/mpreal"
)

// Sqrt returns sqrt(x). Negative x yields NaN; zero yields zero.
func Sqrt(x *mpreal.Real) (*mpreal.Real, error) {
	if x.IsNaN() {
		return x.Clone(), nil
	}
	if x.IsZero() {
		return mpreal.FromInt64(0)
	}
	if x.SignBit() {
		out, err := mpreal.New()
		if err != nil {
			return nil, err
		}
		out.SetNaN()
		return out, nil
	}
	if x.IsInf() {
		out, err := mpreal.New()
		if err != nil {
			return nil, err
		}
		out.SetInf(false)
		return out, nil
	}

	seed := math.Sqrt(float64Estimate(x))
	xk, err := seedFromFloat64(seed)
	if err != nil {
		return nil, err
	}
	two, err := mpreal.FromInt64(2)
	if err != nil {
		return nil, err
	}
	vk, err := Inv(xk.Mul(two))
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
		xkSq := xk.Mul(xk)
		residual := x.Sub(xkSq)
		xNext := xk.Add(vk.Mul(residual))

		twoVkXNext := two.Mul(vk).Mul(xNext)
		vResidual := one.Sub(twoVkXNext)
		vNext := vk.Add(vk.Mul(vResidual))

		done := converged(xk, xNext, tolElems)
		xk, vk = xNext, vNext
		if done {
			break
		}
	}
	logger().WithField("op", "sqrt").Debug("coupled newton converged")
	return xk, nil
}
