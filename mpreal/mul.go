// mul.go implements §4.5.3 multiplication: schoolbook for small operand
// counts, FFT convolution (via precision.CorePrecision.Multiply) once the
// effective limb count crosses the schoolbook/FFT crossover.
package mpreal

import (
	"github.com/mpreal/mpcore/limb"
	"github.com/mpreal/mpcore/types"
)

// SchoolbookLimbThreshold is the operand limb count (prec_mul in §4.5.3)
// below which Mul uses the quadratic schoolbook path; at or above it, Mul
// routes through the FFT multiplier.
const SchoolbookLimbThreshold = 300

// Mul returns r * other.
func (r *Real) Mul(other *Real) *Real {
	if r.Class == types.NaN || other.Class == types.NaN {
		out := newReal(r.cp)
		out.SetNaN()
		return out
	}
	sign := r.Sign != other.Sign
	if r.Class == types.Inf || other.Class == types.Inf {
		if r.IsZero() || other.IsZero() {
			out := newReal(r.cp)
			out.SetNaN()
			return out
		}
		out := newReal(r.cp)
		out.SetInf(sign)
		return out
	}
	if r.IsZero() || other.IsZero() {
		return newReal(r.cp)
	}

	precElem := r.PrecElem
	if other.PrecElem < precElem {
		precElem = other.PrecElem
	}
	nUsed := usedLimbs(r.Data, precElem)
	if usedLimbs(other.Data, precElem) > nUsed {
		nUsed = usedLimbs(other.Data, precElem)
	}

	var raw limb.Array
	if nUsed < SchoolbookLimbThreshold {
		raw = mulSchoolbook(r.Data, other.Data, nUsed)
	} else {
		product, err := r.cp.Multiply(r.Data, other.Data, nUsed)
		if err != nil {
			raw = mulSchoolbook(r.Data, other.Data, nUsed)
		} else {
			raw = product
		}
	}

	shift := leadingZeroLimbs(raw)
	l := raw.Len()
	if shift >= l {
		return newReal(r.cp)
	}
	resultExp := int64(l-1-shift)*limb.DigitsPerLimb + r.Exp + other.Exp - int64(2*(nUsed-1))*limb.DigitsPerLimb

	out := newReal(r.cp)
	out.Sign = sign
	out.Exp = resultExp
	out.PrecElem = precElem
	copyTruncated(out.Data, raw, shift)
	return out
}

// MulSmall returns r * n for a native-sized non-negative multiplier,
// applying the limb.Base carry-propagation loop directly instead of the
// full schoolbook/FFT paths.
func (r *Real) MulSmall(n uint32) *Real {
	if r.Class == types.NaN {
		out := newReal(r.cp)
		out.SetNaN()
		return out
	}
	if r.Class == types.Inf {
		out := newReal(r.cp)
		if n == 0 {
			out.SetNaN()
		} else {
			out.SetInf(r.Sign)
		}
		return out
	}
	if r.IsZero() || n == 0 {
		return newReal(r.cp)
	}

	data := r.Data.Clone()
	carryWide := mulLoopWide(data, n, r.Data.Len())
	resultExp := r.Exp
	for carryWide > 0 {
		shiftLimbsRightByOne(data)
		data.Set(0, uint32(carryWide%uint64(limb.Base)))
		carryWide /= uint64(limb.Base)
		resultExp += limb.DigitsPerLimb
	}
	out := newReal(r.cp)
	out.Sign = r.Sign
	out.Exp = resultExp
	out.PrecElem = r.PrecElem
	out.Data.CopyFrom(data)
	return out
}

// mulLoopWide is MulLoopBySmall's leftover-carry variant: it propagates a
// multi-limb carry out of the top of the array instead of discarding
// overflow beyond a single limb, since MulSmall's multiplier can be large
// enough to overflow the standard single-limb carry basenum.MulLoopBySmall
// assumes its callers don't need.
func mulLoopWide(u limb.Array, n uint32, p int) uint64 {
	var carry uint64
	nn := uint64(n)
	for i := p - 1; i >= 0; i-- {
		prod := uint64(u.Get(i))*nn + carry
		u.Set(i, uint32(prod%uint64(limb.Base)))
		carry = prod / uint64(limb.Base)
	}
	return carry
}

// usedLimbs returns the number of leading limbs of data that matter at
// precElem resolution (min(precElem, data.Len())).
func usedLimbs(data limb.Array, precElem int) int {
	if data.Len() < precElem {
		return data.Len()
	}
	return precElem
}

// mulSchoolbook computes the raw, most-significant-first limb array for
// the integer product of u's and v's leading nUsed limbs, each treated as
// an nUsed-limb base-B integer (i.e. ignoring the operands' actual
// exponents -- the caller derives the result exponent from nUsed and the
// operand exponents per §4.5.3).
func mulSchoolbook(u, v limb.Array, nUsed int) limb.Array {
	acc := make([]uint64, 2*nUsed)
	for i := 0; i < nUsed; i++ {
		ui := uint64(u.Get(nUsed - 1 - i))
		if ui == 0 {
			continue
		}
		for j := 0; j < nUsed; j++ {
			vj := uint64(v.Get(nUsed - 1 - j))
			acc[i+j] += ui * vj
		}
	}

	out := limb.MustNew(2 * nUsed)
	var carry uint64
	for s := 0; s < len(acc); s++ {
		total := acc[s] + carry
		out.Set(2*nUsed-1-s, uint32(total%uint64(limb.Base)))
		carry = total / uint64(limb.Base)
	}
	// carry is guaranteed zero here: the product of two nUsed-limb base-B
	// integers is below B^(2*nUsed), so it fits in out's 2*nUsed limbs (the
	// top coefficient acc[2*nUsed-1] receives no partial product at all and
	// holds only the carry out of s = 2*nUsed-2).
	return out
}

// copyTruncated copies raw[shift:] into dst, left-justified, truncating
// (not rounding) once dst is full -- the PrecElem-limb guard digits
// absorb the truncation error per precision.Characteristics.
func copyTruncated(dst, raw limb.Array, shift int) {
	dst.Zero()
	n := dst.Len()
	for i := 0; i < n; i++ {
		j := shift + i
		if j >= raw.Len() {
			break
		}
		dst.Set(i, raw.Get(j))
	}
}
