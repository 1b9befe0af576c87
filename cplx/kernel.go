// kernel.go implements §4.8's specialized complex kernels: inv, sqrt, log,
// exp on Complex<Real>, built from the real kernel package's reciprocal,
// square root, logarithm and AGM machinery.
package cplx

import (
	"github.com/mpreal/mpcore/kernel"
	"github.com/mpreal/mpcore/mpreal"
)

// Inv returns 1/z as conj(z)/|z|^2, using a single real reciprocal (of
// the norm) instead of two real divisions.
func Inv(z Complex) (Complex, error) {
	normInv, err := kernel.Inv(z.Norm())
	if err != nil {
		return Complex{}, err
	}
	conj := z.Conj()
	return Complex{Re: conj.Re.Mul(normInv), Im: conj.Im.Mul(normInv)}, nil
}

// Abs returns |z| = sqrt(re^2 + im^2).
func Abs(z Complex) (*mpreal.Real, error) {
	return kernel.Sqrt(z.Norm())
}

// Sqrt returns a principal square root of z, branching on the sign of
// Re(z): s = sqrt((|Re(z)| + |z|)/2), with the other component derived
// from Im(z)/(2s) (or, when Re(z) >= 0, symmetric treatment of the
// imaginary part) per §4.8.
func Sqrt(z Complex) (Complex, error) {
	modz, err := Abs(z)
	if err != nil {
		return Complex{}, err
	}
	absRe := z.Re.Abs()
	sumHalf := absRe.Add(modz).DivSmallOrPanic(2)
	s, err := kernel.Sqrt(sumHalf)
	if err != nil {
		return Complex{}, err
	}

	if z.Re.SignBit() {
		// Re(z) < 0: principal root has a small real part, derived from
		// Im(z)/(2s), and |Im(z)| contributes to the imaginary part.
		imAbs := z.Im.Abs()
		reOut, err := kernel.Div(imAbs, s.MulSmall(2))
		if err != nil {
			return Complex{}, err
		}
		imOut := s
		if z.Im.SignBit() {
			imOut = s.Neg()
		}
		return Complex{Re: reOut, Im: imOut}, nil
	}

	imOut, err := kernel.Div(z.Im, s.MulSmall(2))
	if err != nil {
		return Complex{}, err
	}
	return Complex{Re: s, Im: imOut}, nil
}

// Log returns the principal complex logarithm log|z| + i*atan2(Im(z),
// Re(z)): the real magnitude goes through the real kernel's AGM-based
// Log, the argument through its Newton-based Atan2.
func Log(z Complex) (Complex, error) {
	modz, err := Abs(z)
	if err != nil {
		return Complex{}, err
	}
	logMod, err := kernel.Log(modz)
	if err != nil {
		return Complex{}, err
	}
	theta, err := kernel.Atan2(z.Im, z.Re)
	if err != nil {
		return Complex{}, err
	}
	return Complex{Re: logMod, Im: theta}, nil
}

// Exp returns e^z = e^Re(z) * (cos(Im(z)) + i*sin(Im(z))), composed
// directly from the real kernel's Exp and SinCos per §4.8.
func Exp(z Complex) (Complex, error) {
	mag, err := kernel.Exp(z.Re)
	if err != nil {
		return Complex{}, err
	}
	sin, cos, err := kernel.SinCos(z.Im)
	if err != nil {
		return Complex{}, err
	}
	return Complex{Re: mag.Mul(cos), Im: mag.Mul(sin)}, nil
}
