// Package cplx implements Complex<Real> (component C8): field operations
// via the overflow-avoiding Smith algorithm for division, plus the
// specialized sqrt/log/exp kernels §4.8 describes, all built on
// mpreal.Real and the kernel package's real-valued transcendentals.
package cplx

import (
	"github.com/mpreal/mpcore/kernel"
	"github.com/mpreal/mpcore/mpreal"
)

func divReal(a, b *mpreal.Real) (*mpreal.Real, error) {
	return kernel.Div(a, b)
}

// Complex is a pair of arbitrary-precision reals representing re + im*i.
type Complex struct {
	Re, Im *mpreal.Real
}

// New builds a Complex from its real and imaginary parts.
func New(re, im *mpreal.Real) Complex { return Complex{Re: re, Im: im} }

// FromReal builds a Complex with a zero imaginary part.
func FromReal(re *mpreal.Real) (Complex, error) {
	zero, err := mpreal.FromInt64(0)
	if err != nil {
		return Complex{}, err
	}
	return Complex{Re: re, Im: zero}, nil
}

// Conj returns the complex conjugate.
func (z Complex) Conj() Complex { return Complex{Re: z.Re, Im: z.Im.Neg()} }

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{Re: z.Re.Add(w.Re), Im: z.Im.Add(w.Im)}
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{Re: z.Re.Sub(w.Re), Im: z.Im.Sub(w.Im)}
}

// Mul returns z * w via the standard four-multiply complex product.
func (z Complex) Mul(w Complex) Complex {
	re := z.Re.Mul(w.Re).Sub(z.Im.Mul(w.Im))
	im := z.Re.Mul(w.Im).Add(z.Im.Mul(w.Re))
	return Complex{Re: re, Im: im}
}

// Norm returns |z|^2 = re^2 + im^2.
func (z Complex) Norm() *mpreal.Real {
	return z.Re.Mul(z.Re).Add(z.Im.Mul(z.Im))
}

// Div returns z / w using the Smith algorithm variant from §4.8: split on
// whichever of |Re(w)| or |Im(w)| is smaller and use the ratio that keeps
// the denominator well-scaled, avoiding the naive conj(w)/|w|^2 formula's
// overflow when |w| is large.
func (z Complex) Div(w Complex) (Complex, error) {
	wRe, wIm := w.Re.Abs(), w.Im.Abs()
	if wRe.Greater(wIm) {
		ratio, err := divReal(w.Im, w.Re)
		if err != nil {
			return Complex{}, err
		}
		denom := w.Re.Add(w.Im.Mul(ratio))
		re, err := divReal(z.Re.Add(z.Im.Mul(ratio)), denom)
		if err != nil {
			return Complex{}, err
		}
		im, err := divReal(z.Im.Sub(z.Re.Mul(ratio)), denom)
		if err != nil {
			return Complex{}, err
		}
		return Complex{Re: re, Im: im}, nil
	}
	ratio, err := divReal(w.Re, w.Im)
	if err != nil {
		return Complex{}, err
	}
	denom := w.Im.Add(w.Re.Mul(ratio))
	re, err := divReal(z.Re.Mul(ratio).Add(z.Im), denom)
	if err != nil {
		return Complex{}, err
	}
	im, err := divReal(z.Im.Mul(ratio).Sub(z.Re), denom)
	if err != nil {
		return Complex{}, err
	}
	return Complex{Re: re, Im: im}, nil
}
