package mpreal

import "github.com/mpreal/mpcore/limb"

// Trunc returns r truncated toward zero to an integer, by zeroing every
// limb digit whose decimal weight is negative. The two trivial cases are
// handled first: NaN, Inf and zero pass through unchanged, and a value
// whose order is below zero (|r| < 1) becomes +0.
func (r *Real) Trunc() *Real {
	if !r.IsFinite() || r.IsZero() {
		return r.Clone()
	}
	if r.order() < 0 {
		out := r.Clone()
		out.Data.Zero()
		out.Sign = false
		return out
	}

	out := r.Clone()
	n := out.Data.Len()
	for i := 0; i < n; i++ {
		lowWeight := out.Exp - int64(i)*limb.DigitsPerLimb
		highWeight := lowWeight + limb.DigitsPerLimb - 1
		switch {
		case lowWeight >= 0:
			// Whole limb is part of the integer portion; keep as-is.
		case highWeight < 0:
			out.Data.Set(i, 0)
		default:
			// Straddles the decimal point: keep only the digits at or
			// above weight 0 by dividing out the fractional digits and
			// scaling back up.
			shift := uint32(-lowWeight)
			divisor := pow10Uint32(shift)
			v := out.Data.Get(i)
			out.Data.Set(i, (v/divisor)*divisor)
		}
	}
	return out
}

func pow10Uint32(n uint32) uint32 {
	v := uint32(1)
	for i := uint32(0); i < n; i++ {
		v *= 10
	}
	return v
}
