package kernel

import "github.com/mpreal/mpcore/mpreal"

// Pow2 returns x * 2^p. It is a thin forward to mpreal.Real.Pow2, kept in
// kernel as the spec names it among the function kernels even though its
// binary-lifting implementation needs nothing kernel-specific beyond
// Real's own Mul/DivSmall.
func Pow2(x *mpreal.Real, p int) (*mpreal.Real, error) {
	return x.Pow2(p)
}
