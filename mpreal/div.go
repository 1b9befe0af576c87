// div.go implements §4.5.4's small-integer division. Full Real/Real
// division requires a Newton-iteration reciprocal and lives in the kernel
// package (kernel.Div), which imports mpreal; keeping it out of this
// package avoids a kernel<->mpreal import cycle.
package mpreal

import (
	"github.com/mpreal/mpcore/basenum"
	"github.com/mpreal/mpcore/limb"
	"github.com/mpreal/mpcore/types"
)

// DivSmall returns r / n for a native-sized divisor, via
// basenum.DivLoopBySmall. Division by limb.Base is a pure exponent shift
// (the limb radix itself), handled without touching Data at all; division
// by zero produces a signed Inf (nonzero numerator) or NaN (zero
// numerator), per §4.5.6's fpclass state machine, rather than an error.
func (r *Real) DivSmall(n uint32) (*Real, error) {
	if r.Class == types.NaN {
		out := newReal(r.cp)
		out.SetNaN()
		return out, nil
	}
	if n == 0 {
		out := newReal(r.cp)
		if r.IsZero() {
			out.SetNaN()
		} else {
			out.SetInf(r.Sign)
		}
		return out, nil
	}
	if r.Class == types.Inf {
		return r.Clone(), nil
	}
	if r.IsZero() {
		return newReal(r.cp), nil
	}
	if n == 1 {
		return r.Clone(), nil
	}

	if n == limb.Base {
		out := r.Clone()
		out.Exp -= limb.DigitsPerLimb
		return out, nil
	}

	data := r.Data.Clone()
	if _, err := basenum.DivLoopBySmall(data, n, data.Len()); err != nil {
		return nil, err
	}

	resultExp := r.Exp
	shift := leadingZeroLimbs(data)
	if shift >= data.Len() {
		return newReal(r.cp), nil
	}
	if shift > 0 {
		shiftLeftLimbs(data, shift)
		resultExp -= int64(shift) * limb.DigitsPerLimb
	}

	out := newReal(r.cp)
	out.Sign = r.Sign
	out.Exp = resultExp
	out.PrecElem = r.PrecElem
	out.Data.CopyFrom(data)
	return out, nil
}

// DivSmallOrPanic is DivSmall for the handful of call sites (kernel's
// series iterations) dividing by a small compile-time constant that can
// never be zero; panicking on an impossible error beats threading it
// through every AGM step.
func (r *Real) DivSmallOrPanic(n uint32) *Real {
	out, err := r.DivSmall(n)
	if err != nil {
		panic(err)
	}
	return out
}
