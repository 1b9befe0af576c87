// cmp.go implements §4.5.5: a total order over Real, including the
// infinities and NaN (NaN compares greater than every other value and
// equal to itself, giving a well-defined -- if not IEEE-754-faithful --
// reflexive total order suited to sorting and map keys).
package mpreal

import (
	"github.com/mpreal/mpcore/basenum"
	"github.com/mpreal/mpcore/limb"
	"github.com/mpreal/mpcore/types"
)

// Cmp returns Less, Equal, or Greater for r compared to other.
func (r *Real) Cmp(other *Real) types.Ordering {
	rNaN := r.Class == types.NaN
	oNaN := other.Class == types.NaN
	switch {
	case rNaN && oNaN:
		return types.Equal
	case rNaN:
		return types.Greater
	case oNaN:
		return types.Less
	}

	rInf := r.Class == types.Inf
	oInf := other.Class == types.Inf
	if rInf || oInf {
		return cmpWithInf(r, other, rInf, oInf)
	}

	rZero := r.IsZero()
	oZero := other.IsZero()
	switch {
	case rZero && oZero:
		return types.Equal
	case rZero:
		return signOrdering(!other.Sign, other.Sign)
	case oZero:
		return signOrdering(r.Sign, !r.Sign)
	}

	if r.Sign != other.Sign {
		return signOrdering(r.Sign, other.Sign)
	}

	mag := compareMagnitude(r, other)
	if r.Sign {
		return invertOrdering(mag)
	}
	return mag
}

// Equal, Less, Greater are the boolean convenience wrappers most call
// sites reach for instead of switching on Cmp directly.
func (r *Real) Equal(other *Real) bool  { return r.Cmp(other) == types.Equal }
func (r *Real) Less(other *Real) bool   { return r.Cmp(other) == types.Less }
func (r *Real) Greater(other *Real) bool { return r.Cmp(other) == types.Greater }

func cmpWithInf(r, other *Real, rInf, oInf bool) types.Ordering {
	switch {
	case rInf && oInf:
		return signOrdering(r.Sign, other.Sign)
	case rInf:
		if r.Sign {
			return types.Less
		}
		return types.Greater
	default:
		if other.Sign {
			return types.Greater
		}
		return types.Less
	}
}

// signOrdering orders by sign alone: a positive (sign=false) value is
// Greater than a negative (sign=true) one, with equal signs comparing
// Equal at this level (the caller is expected to break ties by
// magnitude when both signs agree and magnitude is still informative).
func signOrdering(aSign, bSign bool) types.Ordering {
	switch {
	case aSign == bSign:
		return types.Equal
	case aSign:
		return types.Less
	default:
		return types.Greater
	}
}

func invertOrdering(o types.Ordering) types.Ordering {
	switch o {
	case types.Less:
		return types.Greater
	case types.Greater:
		return types.Less
	default:
		return types.Equal
	}
}

// compareMagnitude compares |a| to |b| for two nonzero finite values,
// aligning exponents the same way addFinite does before delegating to
// basenum.CompareData.
func compareMagnitude(a, b *Real) types.Ordering {
	precElem := a.PrecElem
	if b.PrecElem < precElem {
		precElem = b.PrecElem
	}
	ofsBig := (a.Exp - b.Exp) / limb.DigitsPerLimb
	if abs64(ofsBig) >= int64(precElem) {
		if ofsBig > 0 {
			return types.Greater
		}
		return types.Less
	}

	n := a.Data.Len()
	if b.Data.Len() < n {
		n = b.Data.Len()
	}
	digits10 := a.cp.Digits10Tol()

	if a.Exp >= b.Exp {
		shifted := shiftRightLimbs(b.Data, int(ofsBig), n)
		return basenum.CompareData(a.Data, shifted, n, digits10)
	}
	shifted := shiftRightLimbs(a.Data, int(-ofsBig), n)
	return invertOrdering(basenum.CompareData(b.Data, shifted, n, digits10))
}
