package fft

// Scratch holds the reusable real/complex-as-halfcomplex working buffers
// for one FFT multiplication, per §3's CorePrecision scratch allocation
// ("two real arrays of length max_fft_len, two complex buffers of length
// max_fft_len ... shared across all FFT-driven multiplications"). Complex
// buffers are represented here as half-complex []float64 pairs, since that
// is the layout Provider.Execute actually produces and consumes.
//
// Scratch is not safe for concurrent multiplications; precision.CorePrecision
// serializes access with a mutex held for the whole multiply (§5).
type Scratch struct {
	uReal, vReal []float64
	uSpec, vSpec []float64
	convReal     []float64
}

// NewScratch allocates a Scratch sized for transforms up to maxLen.
func NewScratch(maxLen int) *Scratch {
	s := &Scratch{}
	s.ensureLen(maxLen)
	return s
}

func (s *Scratch) ensureLen(n int) {
	if len(s.uReal) >= n {
		return
	}
	s.uReal = make([]float64, n)
	s.vReal = make([]float64, n)
	s.uSpec = make([]float64, n)
	s.vSpec = make([]float64, n)
	s.convReal = make([]float64, n)
}

func (s *Scratch) buffers(n int) (uReal, vReal, uSpec, vSpec, convReal []float64) {
	s.ensureLen(n)
	return s.uReal[:n], s.vReal[:n], s.uSpec[:n], s.vSpec[:n], s.convReal[:n]
}
