// inv.go implements §4.7's reciprocal kernel (div.go's Div is built on
// it), grounded on the spec's Newton-Raphson recipe
// y <- y + y(1 - x*y).
package kernel

import (
	"math"

	"github.com/mpreal/mpcore/detail"
	"github.com/mpreal/mpcore/mpreal"
)

// Inv returns 1/x. x == 0 yields a signed Inf (sign of x, +0 treated as
// positive); NaN/Inf propagate per §4.5.6.
func Inv(x *mpreal.Real) (*mpreal.Real, error) {
	if x.IsNaN() {
		return x.Clone(), nil
	}
	if x.IsInf() {
		return mpreal.FromInt64(0)
	}
	if x.IsZero() {
		out, err := mpreal.New()
		if err != nil {
			return nil, err
		}
		out.SetInf(x.SignBit())
		return out, nil
	}

	seed := 1.0 / float64Estimate(x)
	y, err := seedFromFloat64(seed)
	if err != nil {
		return nil, err
	}

	tolElems := detail.TolElems(x.Precision().Digits10Tol() / 2)
	budget := iterationBudget(x.Precision().Digits10Tol())
	for i := 0; i < budget; i++ {
		// y <- y + y*(1 - x*y)
		xy := x.Mul(y)
		one, err := mpreal.FromInt64(1)
		if err != nil {
			return nil, err
		}
		residual := one.Sub(xy)
		delta := y.Mul(residual)
		next := y.Add(delta)
		if converged(y, next, tolElems) {
			y = next
			break
		}
		y = next
	}
	logger().WithField("op", "inv").Debug("reciprocal converged")
	return y, nil
}

// seedFromFloat64 builds a Real Newton seed from a double approximation,
// handling the non-finite/zero edge cases float64Estimate's inverse of
// zero or overflowing magnitudes can produce.
func seedFromFloat64(v float64) (*mpreal.Real, error) {
	if math.IsNaN(v) {
		r, err := mpreal.New()
		if err != nil {
			return nil, err
		}
		r.SetNaN()
		return r, nil
	}
	if math.IsInf(v, 0) {
		r, err := mpreal.New()
		if err != nil {
			return nil, err
		}
		r.SetInf(v < 0)
		return r, nil
	}
	return mpreal.FromFloat64(v)
}
