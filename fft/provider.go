package fft

// Direction selects which way a plan transforms data, per the Provider
// contract in §6.2.
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

// Provider is the external FFT collaborator contract from §6.2. The core
// is written against this interface rather than a concrete FFT library so
// the mixed-radix implementation here can be swapped for a platform FFT
// without touching fft.Multiplier or precision.CorePrecision.
type Provider interface {
	// CreatePlan builds (or fetches from an implementation-side cache) a
	// plan for the given length and direction.
	CreatePlan(length int, dir Direction) (*Plan, error)
	// Execute runs plan on in, writing to out. For a Forward plan, in is
	// a real sequence of length plan.Len() and out is the half-complex
	// layout described in §6.2 (same length). For a Backward plan, in is
	// half-complex and out is real. Execute never scales; the core
	// divides by plan.Len() itself after an inverse transform.
	Execute(plan *Plan, in, out []float64)
}

// ThreadedProvider is a Provider that additionally accepts a worker-count
// hint before plan creation, per §6.2's optional plan_with_threads.
type ThreadedProvider interface {
	Provider
	PlanWithThreads(n int)
}

// KissProvider is the default Provider, implemented with the mixed-radix
// complex FFT in plan.go. It packs/unpacks the half-complex layout itself
// so callers never see raw complex128 buffers.
type KissProvider struct {
	threads int
}

// NewKissProvider returns a Provider with a default worker-count hint of 1.
func NewKissProvider() *KissProvider {
	return &KissProvider{threads: 1}
}

// PlanWithThreads records a worker-count hint for subsequent plans. The
// mixed-radix butterfly passes here are single-threaded regardless, and
// the hint is only stored (readable via Threads). fft.Multiplier takes its
// own worker count from NewMultiplier to decide whether to run the two
// forward transforms of a convolution concurrently (§5).
func (k *KissProvider) PlanWithThreads(n int) {
	if n < 1 {
		n = 1
	}
	k.threads = n
}

// Threads returns the last worker-count hint set via PlanWithThreads.
func (k *KissProvider) Threads() int { return k.threads }

// CreatePlan builds a plan for length (must be 5-smooth), tagged with dir
// so a later Execute knows which half-complex convention to apply.
func (k *KissProvider) CreatePlan(length int, dir Direction) (*Plan, error) {
	p, err := NewPlan(length)
	if err != nil {
		return nil, err
	}
	p.dir = dir
	return p, nil
}

// Execute dispatches to ExecuteForward or ExecuteBackward based on the
// direction the plan was created with.
func (k *KissProvider) Execute(plan *Plan, in, out []float64) {
	if plan.Direction() == Backward {
		k.ExecuteBackward(plan, in, out)
		return
	}
	k.ExecuteForward(plan, in, out)
}

// ExecuteForward runs a real-to-halfcomplex forward transform: R[0] at
// index 0, R[len/2] at index len/2, real parts of positive-frequency bins
// at [1, len/2), their imaginary parts mirrored at [len-1, len/2].
func (k *KissProvider) ExecuteForward(plan *Plan, in, out []float64) {
	n := plan.Len()
	scratchIn := make([]complex128, n)
	scratchOut := make([]complex128, n)
	for i := 0; i < n; i++ {
		scratchIn[i] = complex(in[i], 0)
	}
	plan.Forward(scratchIn, scratchOut)

	half := n / 2
	out[0] = real(scratchOut[0])
	if half < n {
		out[half] = real(scratchOut[half])
	}
	for i := 1; i < half; i++ {
		out[i] = real(scratchOut[i])
		out[n-i] = imag(scratchOut[i])
	}
}

// ExecuteBackward runs a halfcomplex-to-real backward transform,
// reconstructing the conjugate-symmetric spectrum from the §6.2 layout
// before the inverse butterfly pass.
func (k *KissProvider) ExecuteBackward(plan *Plan, in, out []float64) {
	n := plan.Len()
	half := n / 2
	scratchIn := make([]complex128, n)
	scratchOut := make([]complex128, n)

	scratchIn[0] = complex(in[0], 0)
	if half < n {
		scratchIn[half] = complex(in[half], 0)
	}
	for i := 1; i < half; i++ {
		re, im := in[i], in[n-i]
		scratchIn[i] = complex(re, im)
		scratchIn[n-i] = complex(re, -im)
	}
	plan.Inverse(scratchIn, scratchOut)
	for i := 0; i < n; i++ {
		out[i] = real(scratchOut[i])
	}
}

var _ ThreadedProvider = (*KissProvider)(nil)
