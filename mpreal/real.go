// Package mpreal implements Real (component C5): the arbitrary-precision
// decimal significand built on basenum.BaseNum, with add/sub/mul/div,
// comparison, string I/O and numeric conversions. This is the type every
// function kernel in the kernel package composes.
package mpreal

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mpreal/mpcore/basenum"
	"github.com/mpreal/mpcore/limb"
	"github.com/mpreal/mpcore/precision"
	"github.com/mpreal/mpcore/types"
)

// ErrParse is returned by ReadString when the input does not match the
// decimal grammar from §4.5.1, or when the parsed exponent is not a
// multiple of 8 (which cannot actually happen given the parser's own
// normalization, but is kept as a defensive invariant check).
var ErrParse = errors.New("mpreal: parse error")

// Real is the arbitrary-precision decimal significand from §3/§4.5: a
// sign, a base-B exponent, a fixed-length limb array, an fpclass, and an
// effective precision in limbs.
type Real struct {
	basenum.BaseNum
	cp *precision.CorePrecision
}

// currentPrecision returns the configured CorePrecision, or an error if Configure has
// not been called. Every exported constructor in this package routes
// through it so a Real can never be built against an unconfigured
// process.
func currentPrecision() (*precision.CorePrecision, error) {
	return precision.Get()
}

func newReal(cp *precision.CorePrecision) *Real {
	return &Real{BaseNum: basenum.NewZero(cp.N()), cp: cp}
}

// New returns the canonical zero value for the process's configured
// precision.
func New() (*Real, error) {
	cp, err := currentPrecision()
	if err != nil {
		return nil, err
	}
	return newReal(cp), nil
}

// N returns the limb-array length this Real is sized to.
func (r *Real) N() int { return r.Data.Len() }

// Precision returns the CorePrecision this Real is bound to.
func (r *Real) Precision() *precision.CorePrecision { return r.cp }

// IsZero, IsNaN, IsInf report the fpclass/value-kind predicates from §7
// that tests and callers use instead of exceptions.
func (r *Real) IsZero() bool { return basenum.Classify(&r.BaseNum) == types.ValueZero }
func (r *Real) IsNaN() bool  { return r.Class == types.NaN }
func (r *Real) IsInf() bool  { return r.Class == types.Inf }
func (r *Real) IsFinite() bool { return r.Class == types.Finite }

// SignBit, ExpValue, LimbAt, LimbLen satisfy detail.RealLike, letting
// detail.CheckCloseRepresentation inspect a Real's raw representation
// without this package's Sign/Exp fields colliding with method names.
func (r *Real) SignBit() bool     { return r.Sign }
func (r *Real) ExpValue() int64   { return r.Exp }
func (r *Real) LimbAt(i int) uint32 { return r.Data.Get(i) }
func (r *Real) LimbLen() int      { return r.Data.Len() }

// Clone returns an independent copy of r, sharing the same CorePrecision.
func (r *Real) Clone() *Real {
	out := newReal(r.cp)
	out.Sign = r.Sign
	out.Exp = r.Exp
	out.Class = r.Class
	out.PrecElem = r.PrecElem
	out.Data.CopyFrom(r.Data)
	return out
}

// SetNaN sets r to NaN in place (sign is meaningless for NaN but cleared
// for determinism).
func (r *Real) SetNaN() {
	r.Sign = false
	r.Class = types.NaN
}

// SetInf sets r to signed infinity in place.
func (r *Real) SetInf(negative bool) {
	r.Sign = negative
	r.Class = types.Inf
	r.Data.Zero()
}

// Neg returns -r (a fresh value); infinities flip sign, NaN is unchanged,
// canonical zero stays +0.
func (r *Real) Neg() *Real {
	out := r.Clone()
	if out.Class == types.NaN {
		return out
	}
	if out.IsZero() {
		out.Sign = false
		return out
	}
	out.Sign = !out.Sign
	return out
}

// Abs returns |r|.
func (r *Real) Abs() *Real {
	out := r.Clone()
	if out.Class != types.NaN {
		out.Sign = false
	}
	return out
}

// log returns the package logger, optionally decorated by the caller's
// CorePrecision-scoped entry.
func (r *Real) log() *logrus.Entry {
	if r.cp != nil {
		return r.cp.Logger()
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

// order returns the leftmost decimal exponent of r (§ GLOSSARY "Order"):
// exp + floor(log10(limb[0])), valid only for nonzero finite values.
func (r *Real) order() int64 {
	if r.Data.Len() == 0 {
		return r.Exp
	}
	top := r.Data.Get(0)
	digits := 0
	for top > 0 {
		digits++
		top /= 10
	}
	if digits == 0 {
		digits = 1
	}
	return r.Exp + int64(digits-1)
}
