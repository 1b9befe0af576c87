// add.go implements §4.5.2 addition and subtraction.
package mpreal

import (
	"github.com/mpreal/mpcore/basenum"
	"github.com/mpreal/mpcore/limb"
	"github.com/mpreal/mpcore/precision"
	"github.com/mpreal/mpcore/types"
)

// Add returns r + other.
func (r *Real) Add(other *Real) *Real {
	if r.Class == types.NaN || other.Class == types.NaN {
		out := newReal(r.cp)
		out.SetNaN()
		return out
	}
	if r.Class == types.Inf || other.Class == types.Inf {
		return addInf(r, other)
	}
	if r.IsZero() {
		return other.Clone()
	}
	if other.IsZero() {
		return r.Clone()
	}
	return addFinite(r, other, false)
}

// Sub returns r - other.
func (r *Real) Sub(other *Real) *Real {
	if r.Class == types.NaN || other.Class == types.NaN {
		out := newReal(r.cp)
		out.SetNaN()
		return out
	}
	if r.Class == types.Inf || other.Class == types.Inf {
		return addInf(r, other.Neg())
	}
	if r.IsZero() {
		return other.Neg()
	}
	if other.IsZero() {
		return r.Clone()
	}
	return addFinite(r, other, true)
}

// addInf handles any operand pair where at least one side is Inf, per the
// §4.5.6 state-machine rules: Inf+Inf of the same sign stays Inf, opposite
// signs produce NaN (the indeterminate form), and Inf absorbs any finite
// value regardless of that value's own sign.
func addInf(r, other *Real) *Real {
	rInf := r.Class == types.Inf
	oInf := other.Class == types.Inf
	switch {
	case rInf && oInf:
		out := newReal(r.cp)
		if r.Sign == other.Sign {
			out.SetInf(r.Sign)
		} else {
			out.SetNaN()
		}
		return out
	case rInf:
		return r.Clone()
	default:
		return other.Clone()
	}
}

// addFinite implements the finite/finite case of §4.5.2. When sub is
// true, other's sign is treated as flipped for the purposes of the
// same-sign/different-sign dispatch (equivalent to r.Add(other.Neg())
// without allocating the intermediate negation).
func addFinite(r, other *Real, sub bool) *Real {
	otherSign := other.Sign
	if sub {
		otherSign = !otherSign
	}

	precElem := r.PrecElem
	if other.PrecElem < precElem {
		precElem = other.PrecElem
	}

	ofsBig := (r.Exp - other.Exp) / limb.DigitsPerLimb
	if abs64(ofsBig) >= int64(precElem) {
		if ofsBig > 0 {
			return r.Clone()
		}
		out := other.Clone()
		out.Sign = otherSign
		return out
	}

	n := r.Data.Len()
	var primary, secondary *Real
	var primarySign, secondarySign bool
	var ofs int64
	if r.Exp >= other.Exp {
		primary, secondary = r, other
		primarySign, secondarySign = r.Sign, otherSign
		ofs = ofsBig
	} else {
		primary, secondary = other, r
		primarySign, secondarySign = otherSign, r.Sign
		ofs = -ofsBig
	}

	shifted := shiftRightLimbs(secondary.Data, int(ofs), n)

	if primarySign == secondarySign {
		sumData := primary.Data.Clone()
		carry := basenum.AddLoop(sumData, shifted, n)
		resultExp := primary.Exp
		if carry > 0 {
			shiftLimbsRightByOne(sumData)
			sumData.Set(0, carry)
			resultExp += limb.DigitsPerLimb
		}
		return finiteResult(r.cp, primarySign, resultExp, sumData, precElem)
	}

	digits10 := r.cp.Digits10Tol()
	cmp := basenum.CompareData(primary.Data, shifted, n, digits10)
	if cmp == types.Equal {
		return newReal(r.cp)
	}

	var largerData, smallerData limb.Array
	var resultSign bool
	if cmp == types.Greater {
		largerData, smallerData, resultSign = primary.Data, shifted, primarySign
	} else {
		largerData, smallerData, resultSign = shifted, primary.Data, secondarySign
	}
	diff := largerData.Clone()
	basenum.SubLoop(diff, smallerData, n)

	resultExp := primary.Exp
	shiftCount := leadingZeroLimbs(diff)
	if shiftCount >= n {
		return newReal(r.cp)
	}
	if shiftCount > 0 {
		shiftLeftLimbs(diff, shiftCount)
		resultExp -= int64(shiftCount) * limb.DigitsPerLimb
	}
	return finiteResult(r.cp, resultSign, resultExp, diff, precElem)
}

func finiteResult(cp *precision.CorePrecision, sign bool, exp int64, data limb.Array, precElem int) *Real {
	out := &Real{cp: cp}
	out.Sign = sign
	out.Exp = exp
	out.Data = data
	out.Class = types.Finite
	out.PrecElem = precElem
	return out
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// shiftRightLimbs returns a new n-limb array where out[i] = src[i-ofs] for
// 0 <= i-ofs < src.Len(), else 0 -- i.e. src's digits moved to less
// significant (higher-index) positions by ofs limb places.
func shiftRightLimbs(src limb.Array, ofs, n int) limb.Array {
	out := limb.MustNew(n)
	for i := ofs; i < n; i++ {
		j := i - ofs
		if j < src.Len() {
			out.Set(i, src.Get(j))
		}
	}
	return out
}

// shiftLimbsRightByOne moves every limb one position toward higher
// indices (less significant), dropping the last limb, to make room for a
// carry digit at index 0.
func shiftLimbsRightByOne(a limb.Array) {
	for i := a.Len() - 1; i > 0; i-- {
		a.Set(i, a.Get(i-1))
	}
}

// leadingZeroLimbs counts zero limbs starting at index 0.
func leadingZeroLimbs(a limb.Array) int {
	count := 0
	for i := 0; i < a.Len() && a.Get(i) == 0; i++ {
		count++
	}
	return count
}

// shiftLeftLimbs moves every limb left by shiftCount positions (toward
// more significant indices), filling the vacated tail with zero.
func shiftLeftLimbs(a limb.Array, shiftCount int) {
	n := a.Len()
	for i := 0; i < n-shiftCount; i++ {
		a.Set(i, a.Get(i+shiftCount))
	}
	for i := n - shiftCount; i < n; i++ {
		a.Set(i, 0)
	}
}
