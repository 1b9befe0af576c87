// multiplier.go implements the FFT multiplier (component C6): the driver
// that bridges the base-10^8 limb representation to the base-10^4 FFT
// digit splitting described in §4.6, and runs the half-complex
// convolution that backs mpreal.Real's large-operand multiplication path.
package fft

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mpreal/mpcore/limb"
)

// ParallelThreshold is the transform length (§4.6 step 4) at or above which the
// two forward transforms of a multiply run on separate goroutines instead
// of sequentially.
const ParallelThreshold = 8192

// Multiplier drives FFT-based multiplication of two limb.Array operands.
// It holds no mutable state of its own beyond the shared PlanCache; callers
// are responsible for the "at most one FFT multiply in flight" exclusion
// described in §5 (precision.CorePrecision enforces that with a lock
// around scratch-handle acquisition; Multiplier itself is safe to call
// concurrently only if given distinct scratch, which is why CorePrecision,
// not Multiplier, owns the lock).
type Multiplier struct {
	cache   *PlanCache
	threads int
	log     *logrus.Entry
}

// NewMultiplier returns a Multiplier backed by cache, using threads worker
// goroutines for the forward-transform pair when eligible.
func NewMultiplier(cache *PlanCache, threads int, log *logrus.Entry) *Multiplier {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	if threads < 1 {
		threads = 1
	}
	return &Multiplier{cache: cache, threads: threads, log: log}
}

// Multiply computes the product of u and v, each treated as nUsed limbs
// (most-significant-first, as in mpreal.Real's data field), and returns
// the full product as a most-significant-first limb.Array of length
// (nUsed+... up to 2*nUsed) limbs. The caller (mpreal.Real.mul) copies the
// leading prec_elem limbs into its own fixed-length buffer and derives the
// exponent shift exactly as it would for the schoolbook path.
//
// Multiply returns ErrUnsupportedLength if no usable plan could be built
// at all (including via PlanCache's fallback search), or if the plan it
// gets is shorter than 4*nUsed; the caller degrades
// to schoolbook multiplication in that case, per §4.6's fail-soft clause.
//
// scratch, if non-nil, is reused across calls (precision.CorePrecision
// owns one and serializes access to it per §5); passing nil allocates
// fresh buffers, which is fine for standalone use and tests.
func (m *Multiplier) Multiply(u, v limb.Array, nUsed int, scratch *Scratch) (limb.Array, error) {
	halfLen := 2 * nUsed
	required := 4 * nUsed

	forward, backward, err := m.cache.Select(required)
	if err != nil {
		return limb.Array{}, err
	}
	planLen := forward.Len()
	if planLen < required {
		return limb.Array{}, ErrUnsupportedLength
	}

	if scratch == nil {
		scratch = NewScratch(planLen)
	}
	uReal, vReal, uSpec, vSpec, convReal := scratch.buffers(planLen)
	for i := range uReal {
		uReal[i], vReal[i] = 0, 0
	}
	splitToHalfLimbs(u, nUsed, uReal)
	splitToHalfLimbs(v, nUsed, vReal)
	// Tails from halfLen to planLen-1 are already zero (reset above),
	// satisfying §4.6 step 3.

	provider := m.cache.Provider()
	parallel := planLen >= ParallelThreshold && m.threads > 1
	if parallel {
		g, _ := errgroup.WithContext(context.Background())
		g.Go(func() error {
			provider.Execute(forward, uReal, uSpec)
			return nil
		})
		g.Go(func() error {
			provider.Execute(forward, vReal, vSpec)
			return nil
		})
		_ = g.Wait()
	} else {
		provider.Execute(forward, uReal, uSpec)
		provider.Execute(forward, vReal, vSpec)
	}
	m.log.WithFields(logrus.Fields{"plan_len": planLen, "parallel": parallel}).Debug("fft multiply forward done")

	convolveHalfComplex(uSpec, vSpec, planLen)

	provider.Execute(backward, uSpec, convReal)
	scale := 1.0 / float64(planLen)
	for i := range convReal {
		convReal[i] *= scale
	}

	return recombineHalfLimbs(convReal, halfLen), nil
}

// splitToHalfLimbs writes the least-significant-first base-B2 digit
// sequence of the nUsed-limb, most-significant-first array u into dst
// (dst[2*nUsed:] stays zero). This LSB-first convention is required so the
// half-limb sequences can be treated as polynomial coefficients for
// convolution (coefficient k has weight B2^k); the caller's limb array is
// MSB-first, so the mapping reverses limb order.
func splitToHalfLimbs(u limb.Array, nUsed int, dst []float64) {
	for i := 0; i < nUsed; i++ {
		x := u.Get(i)
		j := 2 * (nUsed - 1 - i)
		dst[j] = float64(x % limb.HalfBase)
		dst[j+1] = float64(x / limb.HalfBase)
	}
}

// convolveHalfComplex implements §4.6 step 5: pointwise multiply of two
// half-complex spectra representing real sequences, producing the
// half-complex spectrum of their circular convolution in place in u.
func convolveHalfComplex(u, v []float64, planLen int) {
	half := planLen / 2
	u[0] *= v[0]
	if half < planLen {
		u[half] *= v[half]
	}
	for i := 1; i < half; i++ {
		j := planLen - i
		ui, uj := u[i], u[j]
		vi, vj := v[i], v[j]
		u[i] = ui*vi - uj*vj
		u[j] = uj*vi + ui*vj
	}
}

// recombineHalfLimbs performs §4.6 step 7: rounds each convolution output
// to the nearest integer, propagates carry in base B2 from least to most
// significant coefficient, then pairs half-limbs back into base-B limbs
// and returns them most-significant-first.
func recombineHalfLimbs(conv []float64, halfLen int) limb.Array {
	maxCoeff := 2*halfLen - 1
	if maxCoeff > len(conv) {
		maxCoeff = len(conv)
	}
	halfLimbs := make([]uint32, maxCoeff+2)

	var carry uint64
	for k := 0; k < maxCoeff; k++ {
		v := uint64(conv[k]+0.5) + carry
		halfLimbs[k] = uint32(v % uint64(limb.HalfBase))
		carry = v / uint64(limb.HalfBase)
	}
	n := maxCoeff
	for carry > 0 {
		halfLimbs[n] = uint32(carry % uint64(limb.HalfBase))
		carry /= uint64(limb.HalfBase)
		n++
	}

	numLimbs := (n + 1) / 2
	out := limb.MustNew(numLimbs)
	for j := 0; j < numLimbs; j++ {
		lo := halfLimbs[2*j]
		var hi uint32
		if 2*j+1 < n {
			hi = halfLimbs[2*j+1]
		}
		val := lo + hi*limb.HalfBase
		out.Set(numLimbs-1-j, val)
	}
	return out
}
