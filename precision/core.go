package precision

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mpreal/mpcore/fft"
	"github.com/mpreal/mpcore/limb"
)

// ErrConfigurationFailed is returned when the FFT plan list could not be
// constructed for the requested precision.
var ErrConfigurationFailed = errors.New("precision: configuration failed")

// ErrNotConfigured is returned by Get when Configure has not yet
// succeeded in this process.
var ErrNotConfigured = errors.New("precision: core not configured")

// CorePrecision is the process-scoped singleton described in §3/§4.3. It
// is created at most once per process (idempotent Configure), holds the
// FFT plan cache and the shared, mutex-guarded scratch buffers that back
// every large multiplication, and is otherwise read-only.
type CorePrecision struct {
	chars      Characteristics
	fftThreads int

	planCache  *fft.PlanCache
	multiplier *fft.Multiplier
	maxFFTLen  int

	scratchMu   sync.Mutex
	scratch     *fft.Scratch
	limbScratch limb.Array

	log *logrus.Entry
}

var (
	once     sync.Once
	instance *CorePrecision
	initErr  error
)

// Configure performs the one-shot, idempotent initialization from §4.3.
// The first successful call fixes the process's precision; subsequent
// calls (with any arguments) return the same instance. Concurrent callers
// observe the same instance, via sync.Once.
func Configure(digits10, fftThreads int) (*CorePrecision, error) {
	once.Do(func() {
		instance, initErr = newCorePrecision(digits10, fftThreads)
	})
	return instance, initErr
}

// Get returns the configured instance, or ErrNotConfigured if Configure
// has not yet been called successfully.
func Get() (*CorePrecision, error) {
	if instance == nil {
		return nil, ErrNotConfigured
	}
	return instance, nil
}

func newCorePrecision(digits10, fftThreads int) (*CorePrecision, error) {
	log := logrus.WithFields(logrus.Fields{"component": "precision"})
	if fftThreads < 1 {
		fftThreads = 1
	}
	chars := Compute(digits10)

	provider := fft.NewKissProvider()
	provider.PlanWithThreads(fftThreads)
	cache := fft.NewPlanCache(provider)

	maxFFTLen := fft.NextFiveSmoothEven(4 * chars.ElemNumber)
	if err := cache.Warm(maxFFTLen); err != nil {
		return nil, errors.Wrapf(ErrConfigurationFailed, "warming plan for length %d: %v", maxFFTLen, err)
	}

	limbScratch, err := limb.New(chars.ElemNumber)
	if err != nil {
		return nil, errors.Wrap(ErrConfigurationFailed, err.Error())
	}

	log.WithFields(logrus.Fields{
		"digits10":     chars.Digits10,
		"digits10_tol": chars.Digits10Tol,
		"elem_number":  chars.ElemNumber,
		"fft_threads":  fftThreads,
		"max_fft_len":  maxFFTLen,
	}).Info("core precision configured")

	cp := &CorePrecision{
		chars:       chars,
		fftThreads:  fftThreads,
		planCache:   cache,
		maxFFTLen:   maxFFTLen,
		scratch:     fft.NewScratch(maxFFTLen),
		limbScratch: limbScratch,
		log:         log,
	}
	cp.multiplier = fft.NewMultiplier(cache, fftThreads, log)
	return cp, nil
}

// Characteristics returns the derived digit characteristics for this
// configuration.
func (cp *CorePrecision) Characteristics() Characteristics { return cp.chars }

// N returns elem_number, the fixed limb-array length every Real shares.
func (cp *CorePrecision) N() int { return cp.chars.ElemNumber }

// Digits10Tol returns the internal working-precision tolerance digit
// count.
func (cp *CorePrecision) Digits10Tol() int { return cp.chars.Digits10Tol }

// FFTThreads returns the configured FFT worker count.
func (cp *CorePrecision) FFTThreads() int { return cp.fftThreads }

// Logger returns the component logger, for kernels/mpreal to attach
// request-scoped fields to.
func (cp *CorePrecision) Logger() *logrus.Entry { return cp.log }

// SelectPlan returns the plan whose transform length is the smallest
// 5-smooth value >= requiredLen, per §4.3's select_plan.
func (cp *CorePrecision) SelectPlan(requiredLen int) (forward, backward *fft.Plan, err error) {
	return cp.planCache.Select(requiredLen)
}

// Multiply runs an FFT-based multiplication of two nUsed-limb arrays,
// serialized by the scratch-buffer lock described in §5: the lock is
// acquired here and held across forward transform, convolution, inverse
// transform and recombination, then released before Multiply returns. The
// internal forward/forward parallelism (§5, when plan length >= 8192 and
// fft_threads > 1) operates on the two distinct scratch halves inside
// fft.Multiplier and needs no additional locking.
func (cp *CorePrecision) Multiply(u, v limb.Array, nUsed int) (limb.Array, error) {
	cp.scratchMu.Lock()
	defer cp.scratchMu.Unlock()
	return cp.multiplier.Multiply(u, v, nUsed, cp.scratch)
}
