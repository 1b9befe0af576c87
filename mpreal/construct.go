package mpreal

import (
	"math"

	"github.com/mpreal/mpcore/limb"
	"github.com/mpreal/mpcore/types"
)

// FromUint64 builds a Real from an unsigned 64-bit integer, factoring it
// into up to three base-B limbs (B^3 > 2^64 > B^2) with exp chosen so the
// most significant nonzero limb lands at data[0], per §4.5.1.
func FromUint64(v uint64) (*Real, error) {
	cp, err := currentPrecision()
	if err != nil {
		return nil, err
	}
	r := newReal(cp)
	setFromUint64(r, v)
	return r, nil
}

func setFromUint64(r *Real, v uint64) {
	r.Sign = false
	r.Class = types.Finite
	r.Data.Zero()
	r.PrecElem = r.Data.Len()
	if v == 0 {
		r.Exp = 0
		return
	}

	var groups [3]uint32 // most-significant-first
	groups[0] = uint32(v / (uint64(limb.Base) * uint64(limb.Base)))
	rem := v % (uint64(limb.Base) * uint64(limb.Base))
	groups[1] = uint32(rem / uint64(limb.Base))
	groups[2] = uint32(rem % uint64(limb.Base))

	start := 0
	for start < 2 && groups[start] == 0 {
		start++
	}
	n := 3 - start
	for i := 0; i < n && i < r.Data.Len(); i++ {
		r.Data.Set(i, groups[start+i])
	}
	r.Exp = int64(n-1) * limb.DigitsPerLimb
}

// FromInt64 builds a Real from a signed 64-bit integer, taking the
// magnitude via absolute value and setting Sign.
func FromInt64(v int64) (*Real, error) {
	cp, err := currentPrecision()
	if err != nil {
		return nil, err
	}
	r := newReal(cp)
	neg := v < 0
	var mag uint64
	if neg {
		mag = uint64(-(v + 1)) + 1 // avoids overflow at math.MinInt64
	} else {
		mag = uint64(v)
	}
	setFromUint64(r, mag)
	if !r.IsZero() {
		r.Sign = neg
	}
	return r, nil
}

// FromFloat64 builds a Real from a float64 by extracting the IEEE binary
// mantissa and exponent (math.Frexp) and reconstructing the value as
// mantissaInt * 2^pow2Exp using exact integer/power-of-two arithmetic, per
// §4.5.1's "shift-by-digits(int) terms multiplied by pow2(exponent)"
// long-double conversion recipe generalized to Go's float64. ±0, ±Inf and
// NaN are special-cased.
func FromFloat64(v float64) (*Real, error) {
	cp, err := currentPrecision()
	if err != nil {
		return nil, err
	}
	r := newReal(cp)

	switch {
	case math.IsNaN(v):
		r.SetNaN()
		return r, nil
	case math.IsInf(v, 1):
		r.SetInf(false)
		return r, nil
	case math.IsInf(v, -1):
		r.SetInf(true)
		return r, nil
	case v == 0:
		return r, nil
	}

	neg := math.Signbit(v)
	mag := math.Abs(v)
	frac, exp := math.Frexp(mag) // mag = frac * 2^exp, 0.5 <= frac < 1
	const mantissaBits = 53
	mantissaInt := uint64(frac * float64(uint64(1)<<mantissaBits))
	pow2Exp := exp - mantissaBits

	mantissa := newReal(cp)
	setFromUint64(mantissa, mantissaInt)

	scaled, err := pow2Scale(mantissa, pow2Exp)
	if err != nil {
		return nil, err
	}
	scaled.Sign = neg && !scaled.IsZero()
	return scaled, nil
}

// Pow2 returns r * 2^p, per §4.7's pow2(p): binary-lifting exponentiation
// of the running power-of-two base, folded into r via Mul.
func (r *Real) Pow2(p int) (*Real, error) {
	return pow2Scale(r, p)
}

// pow2Scale returns x * 2^p using binary-lifting squaring (kernel.Pow2
// forwards to this through Real.Pow2): the running
// base (2, or 1/2 for negative p) is squared each step and folded into the
// accumulator whenever the corresponding bit of |p| is set, giving O(log
// p) multiplies instead of O(p) repeated doublings/halvings. Only Mul and
// DivSmall are needed, both self-contained in mpreal, so FromFloat64 never
// depends on the kernel package's Newton-iteration reciprocal.
func pow2Scale(x *Real, p int) (*Real, error) {
	if p == 0 {
		return x.Clone(), nil
	}
	neg := p < 0
	n := p
	if neg {
		n = -n
	}

	var base *Real
	var err error
	if neg {
		one, ferr := FromUint64(1)
		if ferr != nil {
			return nil, ferr
		}
		base, err = one.DivSmall(2)
	} else {
		base, err = FromUint64(2)
	}
	if err != nil {
		return nil, err
	}

	acc, err := FromUint64(1)
	if err != nil {
		return nil, err
	}
	for n > 0 {
		if n&1 == 1 {
			acc = acc.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return x.Mul(acc), nil
}
