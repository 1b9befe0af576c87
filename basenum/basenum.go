// Package basenum implements BaseNum (component C4): the sign/exponent/
// limb-array/fpclass tuple and the elementary carry- and borrow-
// propagating limb loops that mpreal.Real's arithmetic is built from.
package basenum

import (
	"github.com/pkg/errors"

	"github.com/mpreal/mpcore/limb"
	"github.com/mpreal/mpcore/types"
)

// ErrDivideByZero is returned by DivLoopBySmall when asked to divide by
// zero; per §4.4 this is routed back to the caller (mpreal.Real turns it
// into a signed Inf or a NaN per §4.5.4/§7).
var ErrDivideByZero = errors.New("basenum: divide by zero")

// BaseNum is the sign + exponent + limb array + fpclass tuple from §3.
// mpreal.Real embeds BaseNum and adds arithmetic, comparison, and string
// I/O.
type BaseNum struct {
	Sign     bool // true = negative; canonical zero has Sign = false
	Exp      int64
	Data     limb.Array
	Class    types.FPClass
	PrecElem int // effective precision in limbs, 8 <= PrecElem <= Data.Len()
}

// NewZero returns the canonical zero BaseNum for an N-limb configuration:
// Sign = false, Exp = 0, all limbs zero, Class = Finite.
func NewZero(n int) BaseNum {
	return BaseNum{Data: limb.MustNew(n), Class: types.Finite, PrecElem: n}
}

// SetZero resets b to the canonical zero form in place.
func (b *BaseNum) SetZero() {
	b.Sign = false
	b.Exp = 0
	b.Data.Zero()
	b.Class = types.Finite
}

// IsZero reports whether the first two limbs are zero, the §4.4
// fpclassify rule for Zero within the Finite class. Checking two limbs
// rather than one guards against a transient single nonzero high limb
// during normalization loops that haven't yet shifted it down.
func IsZero(data limb.Array) bool {
	if data.Len() == 0 {
		return true
	}
	if data.Get(0) != 0 {
		return false
	}
	if data.Len() > 1 && data.Get(1) != 0 {
		return false
	}
	return true
}

// Classify derives the refined ValueKind from b's Class and limb
// contents, per §4.4's fpclassify.
func Classify(b *BaseNum) types.ValueKind {
	switch b.Class {
	case types.Inf:
		return types.ValueInf
	case types.NaN:
		return types.ValueNaN
	default:
		if IsZero(b.Data) {
			return types.ValueZero
		}
		return types.ValueNormal
	}
}

// AddLoop adds v into u in place over the first p limbs, least to most
// significant, propagating carry. Returns the final carry (0 or 1).
func AddLoop(u, v limb.Array, p int) uint32 {
	var carry uint32
	for i := p - 1; i >= 0; i-- {
		sum := u.Get(i) + v.Get(i) + carry
		if sum >= limb.Base {
			sum -= limb.Base
			carry = 1
		} else {
			carry = 0
		}
		u.Set(i, sum)
	}
	return carry
}

// SubLoop subtracts v from u in place over the first p limbs, least to
// most significant, propagating borrow. Returns the final borrow (0 or 1);
// the caller is responsible for u >= v (mpreal.Real.add ensures this by
// comparing magnitudes before calling SubLoop).
func SubLoop(u, v limb.Array, p int) uint32 {
	var borrow uint32
	for i := p - 1; i >= 0; i-- {
		uv := u.Get(i)
		vv := v.Get(i) + borrow
		if uv < vv {
			u.Set(i, uv+limb.Base-vv)
			borrow = 1
		} else {
			u.Set(i, uv-vv)
			borrow = 0
		}
	}
	return borrow
}

// MulLoopBySmall multiplies the first p limbs of u in place by n (0 <= n <
// Base), propagating carry upward (from least to most significant limb),
// and returns the final high-limb carry, which is always < Base.
func MulLoopBySmall(u limb.Array, n uint32, p int) uint64 {
	var carry uint64
	nn := uint64(n)
	for i := p - 1; i >= 0; i-- {
		prod := uint64(u.Get(i))*nn + carry
		u.Set(i, uint32(prod%uint64(limb.Base)))
		carry = prod / uint64(limb.Base)
	}
	return carry
}

// DivLoopBySmall divides the first p limbs of u in place by n (1 < n <
// Base), most significant to least significant limb, carrying the
// remainder downward, and returns the final remainder. n == 0 returns
// ErrDivideByZero and leaves u unmodified.
func DivLoopBySmall(u limb.Array, n uint32, p int) (uint32, error) {
	if n == 0 {
		return 0, ErrDivideByZero
	}
	var rem uint64
	nn := uint64(n)
	for i := 0; i < p; i++ {
		cur := rem*uint64(limb.Base) + uint64(u.Get(i))
		u.Set(i, uint32(cur/nn))
		rem = cur % nn
	}
	return uint32(rem), nil
}

// CompareData compares the limb contents of u and v, ignoring sign and
// exponent, disregarding any digits past digits10 by truncating the first
// mismatching limb by the power of ten equal to the overshoot. p bounds
// how many limbs are inspected (min(prec_elem, needed) from the caller).
func CompareData(u, v limb.Array, p, digits10 int) types.Ordering {
	limit := p
	if u.Len() < limit {
		limit = u.Len()
	}
	if v.Len() < limit {
		limit = v.Len()
	}
	remainingDigits := digits10
	for i := 0; i < limit; i++ {
		if remainingDigits <= 0 {
			return types.Equal
		}
		a, b := u.Get(i), v.Get(i)
		if remainingDigits < limb.DigitsPerLimb {
			div := pow10(limb.DigitsPerLimb - remainingDigits)
			a /= div
			b /= div
		}
		switch {
		case a < b:
			return types.Less
		case a > b:
			return types.Greater
		}
		remainingDigits -= limb.DigitsPerLimb
	}
	return types.Equal
}

func pow10(n int) uint32 {
	r := uint32(1)
	for i := 0; i < n; i++ {
		r *= 10
	}
	return r
}
