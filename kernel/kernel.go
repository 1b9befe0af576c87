// Package kernel implements the transcendental function kernels
// (component C7) and the Bernoulli-number generator (component C9): the
// Newton/AGM iterations built on top of mpreal.Real. It imports mpreal,
// so mpreal itself cannot import kernel -- the one operation that would
// naturally live on Real but needs a reciprocal (full Real/Real division)
// is exported here as Div instead of Real.Div, to keep that dependency
// direction acyclic.
package kernel

import (
	"math"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/mpreal/mpcore/detail"
	"github.com/mpreal/mpcore/mpreal"
	"github.com/mpreal/mpcore/precision"
	"github.com/mpreal/mpcore/types"
)

// CorePrecision's process-wide digits10_tol and iteration caps drive every
// kernel's adaptive-precision schedule; since CorePrecision fixes N for the
// whole process (unlike the original template library, which could widen
// a working value's own limb count per Newton step), "adaptive precision"
// here means "iterate, at the process's fixed precision, for the number of
// doublings detail.DoublingSchedule computes, checking shared-prefix
// convergence each round and stopping early" rather than literally
// reallocating a smaller-then-growing significand. See DESIGN.md.

func logger() *logrus.Entry {
	cp, err := precision.Get()
	if err != nil || cp == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return cp.Logger()
}

// converged reports whether two successive iterates agree to at least
// minMatchingLimbs leading limbs, per §9's shared-prefix convergence
// check.
func converged(prev, cur *mpreal.Real, minMatchingLimbs int) bool {
	return detail.CheckCloseRepresentation(prev, cur, minMatchingLimbs)
}

func iterationBudget(digits10Tol int) int {
	n := detail.DoublingSchedule(digits10Tol)
	if n > detail.IterationCap {
		n = detail.IterationCap
	}
	return n
}

// float64Estimate extracts a crude double-precision approximation of x's
// value for use as a Newton/AGM seed, the same role the original's
// "double(x)" conversion plays: render a handful of significant digits in
// scientific form and let strconv do the binary conversion.
func float64Estimate(x *mpreal.Real) float64 {
	if x.IsNaN() {
		return math.NaN()
	}
	if x.IsInf() {
		if x.SignBit() {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	s := x.WriteString(types.FormatScientific, 17)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
