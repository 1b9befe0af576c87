// Package detail implements the shared convergence and formatting helpers
// (component C10) that the kernel package's adaptive-precision iterations
// and mpreal.Real's string I/O both depend on: shared-prefix convergence
// checking, the AGM iteration's m parameter chooser, the iteration cap and
// doubling schedule, and decimal rendering options.
package detail

import (
	"math"
	"strings"

	"github.com/mpreal/mpcore/limb"
	"github.com/mpreal/mpcore/types"
)

// RealLike is the minimal surface detail needs from mpreal.Real, expressed
// as an interface so this package (which kernel and mpreal both sit above
// in the dependency graph) never has to import mpreal and risk a cycle.
type RealLike interface {
	IsZero() bool
	SignBit() bool
	ExpValue() int64
	LimbAt(i int) uint32
	LimbLen() int
}

// CheckCloseRepresentation reports whether a and b share at least
// minMatchingLimbs leading limbs once aligned by exponent -- the
// "shared-prefix convergence check" from §9's Design Notes, used in place
// of a relative-error computation because it is cheaper and maps directly
// onto the limb storage format.
func CheckCloseRepresentation(a, b RealLike, minMatchingLimbs int) bool {
	if a.IsZero() && b.IsZero() {
		return true
	}
	if a.IsZero() || b.IsZero() {
		return false
	}
	if a.SignBit() != b.SignBit() {
		return false
	}
	ofs := (a.ExpValue() - b.ExpValue()) / limb.DigitsPerLimb
	if ofs != 0 {
		return false
	}
	matched := 0
	n := a.LimbLen()
	if b.LimbLen() < n {
		n = b.LimbLen()
	}
	for i := 0; i < n && matched < minMatchingLimbs; i++ {
		if a.LimbAt(i) != b.LimbAt(i) {
			return false
		}
		matched++
	}
	return matched >= minMatchingLimbs
}

// TolElems converts a digits10Tol/2-style "agreement in N digits"
// requirement into the equivalent leading-limb count CheckCloseRepresentation
// needs, rounding up so a partial limb's worth of required digits still
// demands the whole limb.
func TolElems(digitsRequired int) int {
	if digitsRequired <= 0 {
		return 1
	}
	return (digitsRequired + limb.DigitsPerLimb - 1) / limb.DigitsPerLimb
}

// AGMInitialM picks m for §4.7's logarithm AGM: max(8, ceil(1.67*digits10 -
// log2(x))), where log2X is an already-computed double approximation of
// log2(x).
func AGMInitialM(digits10 int, log2X float64) int {
	m := int(math.Ceil(1.67*float64(digits10) - log2X))
	if m < 8 {
		m = 8
	}
	return m
}

// IterationCap is the hard cap on Newton/AGM iterations from §5: "do not
// cancel; bound by precision schedule" -- exceeding it returns the best
// current estimate rather than failing.
const IterationCap = 64

// DoublingSchedule returns the number of adaptive-precision doubling steps
// needed to grow a double-precision seed (about 15 correct decimal digits)
// up to digits10Tol digits, capped at IterationCap.
func DoublingSchedule(digits10Tol int) int {
	const seedDigits = 15
	if digits10Tol <= seedDigits {
		return 1
	}
	steps := 0
	have := seedDigits
	for have < digits10Tol && steps < IterationCap {
		have *= 2
		steps++
	}
	return steps
}

// FormatOptions mirrors the fixed/scientific/showpoint/showpos iostream
// manipulators of the original library's formatter.
type FormatOptions struct {
	Format    types.FloatFormat
	ShowPoint bool
	ShowPos   bool
	Digits    int // 0 means "use the value's natural precision"
}

// FormatFloatString reformats an already-rendered unsigned decimal digit
// body (as produced by mpreal.Real.WriteString's digit-extraction path,
// stripped of sign) according to opts, adding back ShowPoint/ShowPos
// decoration. rendered must already carry its sign as a leading '-' or be
// unsigned; positive is whether the original value was non-negative.
func FormatFloatString(rendered string, positive bool, opts FormatOptions) string {
	body := strings.TrimPrefix(rendered, "-")
	neg := strings.HasPrefix(rendered, "-") || !positive && rendered != "0"

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	} else if opts.ShowPos {
		b.WriteByte('+')
	}
	if opts.ShowPoint && !strings.ContainsAny(body, ".eE") {
		body += "."
	}
	b.WriteString(body)
	return b.String()
}
