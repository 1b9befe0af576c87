package kernel

import "github.com/mpreal/mpcore/mpreal"

// Div returns a/b. Per §4.5.4, full Real/Real division is defined as
// a * inverse(b); this lives in kernel (not as mpreal.Real.Div) because
// Inv needs Newton iteration built on Real's own Add/Mul, and putting it
// in mpreal would require mpreal to import kernel for the reciprocal
// while kernel already imports mpreal for Real itself.
func Div(a, b *mpreal.Real) (*mpreal.Real, error) {
	inv, err := Inv(b)
	if err != nil {
		return nil, err
	}
	return a.Mul(inv), nil
}
