// Package fft implements the mixed-radix (2, 3, 4, 5) complex FFT that
// backs the convolution path in §4.6 of the core, plus the plan cache and
// real/half-complex provider contract of §6.2. The butterfly arithmetic is
// adapted from the teacher's CELT kiss_fft port (factor-and-recurse
// mixed-radix decomposition, precomputed twiddle and digit-reversal
// tables) and generalized from audio-frame sizes to the 5-smooth decimal
// transform lengths this core requires.
package fft

import (
	"math"

	"github.com/pkg/errors"
)

// ErrUnsupportedLength is returned when a requested transform length
// contains a prime factor greater than 5 and cannot be planned.
var ErrUnsupportedLength = errors.New("fft: length is not 5-smooth")

// Plan holds the precomputed factorization, twiddle table and
// digit-reversal permutation for one fixed transform length. Plans are
// immutable once built and safe for concurrent use by multiple
// goroutines (the forward-forward parallelism in §5 relies on this).
type Plan struct {
	length   int
	dir      Direction
	factors  []int // pairs (radix, remaining-m)
	twiddles []complex128
	bitrev   []int
	fstride  []int
}

// Len returns the transform length this plan was built for.
func (p *Plan) Len() int { return p.length }

// Direction returns the direction this plan was created for (§6.2:
// create_plan(len, direction)).
func (p *Plan) Direction() Direction { return p.dir }

// NewPlan builds a mixed-radix plan for the given length. length must
// factor entirely into 2, 3, 4 and 5 (5-smooth); anything else returns
// ErrUnsupportedLength.
func NewPlan(length int) (*Plan, error) {
	if length <= 0 {
		return nil, errors.Wrapf(ErrUnsupportedLength, "non-positive length %d", length)
	}
	p := &Plan{length: length}
	if !p.computeFactors() {
		return nil, errors.Wrapf(ErrUnsupportedLength, "length %d has a prime factor > 5", length)
	}
	p.computeTwiddles()
	p.computeBitrev()
	p.computeFstride()
	return p, nil
}

func (p *Plan) computeFactors() bool {
	n := p.length
	p.factors = nil
	radix := 4
	for n > 1 {
		for n%radix != 0 {
			switch radix {
			case 4:
				radix = 2
			case 2:
				radix = 3
			case 3:
				radix = 5
			default:
				radix += 2
			}
			if radix > 5 && radix*radix > n {
				radix = n
			}
		}
		if radix > 5 {
			return false
		}
		n /= radix
		p.factors = append(p.factors, radix, n)
	}

	numStages := len(p.factors) / 2
	for i := 0; i < numStages/2; i++ {
		j := numStages - 1 - i
		p.factors[2*i], p.factors[2*j] = p.factors[2*j], p.factors[2*i]
		p.factors[2*i+1], p.factors[2*j+1] = p.factors[2*j+1], p.factors[2*i+1]
	}
	if numStages >= 2 && p.factors[0] == 2 {
		for i := 0; i < numStages-1; i++ {
			if p.factors[2*i] == 2 && p.factors[2*(i+1)] == 4 {
				p.factors[2*i], p.factors[2*(i+1)] = p.factors[2*(i+1)], p.factors[2*i]
			}
		}
	}
	n = p.length
	for i := 0; i < numStages; i++ {
		n /= p.factors[2*i]
		p.factors[2*i+1] = n
	}
	return true
}

func (p *Plan) computeTwiddles() {
	p.twiddles = make([]complex128, p.length)
	for k := 0; k < p.length; k++ {
		phase := -2.0 * math.Pi * float64(k) / float64(p.length)
		p.twiddles[k] = complex(math.Cos(phase), math.Sin(phase))
	}
}

func (p *Plan) computeBitrev() {
	p.bitrev = make([]int, p.length)
	p.bitrevRecurse(0, 0, 1, p.factors)
}

func (p *Plan) bitrevRecurse(fout, fIdx, fstride int, factors []int) {
	if len(factors) < 2 {
		return
	}
	radix := factors[0]
	m := factors[1]
	step := fstride

	if m == 1 {
		for j := 0; j < radix; j++ {
			if fIdx >= 0 && fIdx < len(p.bitrev) {
				p.bitrev[fIdx] = fout + j
			}
			fIdx += step
		}
		return
	}
	for j := 0; j < radix; j++ {
		p.bitrevRecurse(fout, fIdx, fstride*radix, factors[2:])
		fIdx += step
		fout += m
	}
}

func (p *Plan) computeFstride() {
	numFactors := len(p.factors) / 2
	p.fstride = make([]int, numFactors+1)
	p.fstride[0] = 1
	for i := 0; i < numFactors; i++ {
		p.fstride[i+1] = p.fstride[i] * p.factors[2*i]
	}
}

// Forward computes the unscaled forward DFT of fin into fout. Both slices
// must have length p.Len(); fout may alias a scratch buffer distinct from
// fin.
func (p *Plan) Forward(fin, fout []complex128) {
	for i := 0; i < p.length; i++ {
		fout[p.bitrev[i]] = fin[i]
	}
	p.butterflyPass(fout)
}

// Inverse computes the unscaled inverse DFT of fin into fout (conjugate
// trick: conjugate, forward transform, conjugate, and the caller scales by
// 1/Len()).
func (p *Plan) Inverse(fin, fout []complex128) {
	for i := 0; i < p.length; i++ {
		fout[p.bitrev[i]] = fin[i]
	}
	for i := range fout[:p.length] {
		fout[i] = complex(real(fout[i]), -imag(fout[i]))
	}
	p.butterflyPass(fout)
	for i := range fout[:p.length] {
		fout[i] = complex(real(fout[i]), -imag(fout[i]))
	}
}

func (p *Plan) butterflyPass(fout []complex128) {
	numFactors := len(p.factors) / 2
	if numFactors == 0 {
		return
	}
	fstride := p.fstride
	m := p.factors[2*numFactors-1]

	for i := numFactors - 1; i >= 0; i-- {
		var m2 int
		if i > 0 {
			m2 = p.factors[2*i-1]
		} else {
			m2 = 1
		}
		switch p.factors[2*i] {
		case 2:
			p.bfly2(fout, fstride[i], m, fstride[i], m2)
		case 3:
			p.bfly3(fout, fstride[i], m, fstride[i], m2)
		case 4:
			p.bfly4(fout, fstride[i], m, fstride[i], m2)
		case 5:
			p.bfly5(fout, fstride[i], m, fstride[i], m2)
		}
		m = m2
	}
}

func (p *Plan) bfly2(fout []complex128, fstride, m, n, mm int) {
	twIdx := 0
	for j := 0; j < m; j++ {
		tw := p.twiddles[twIdx]
		for i := 0; i < n; i++ {
			idx := j + mm*i
			t := fout[idx+m] * tw
			fout[idx+m] = fout[idx] - t
			fout[idx] = fout[idx] + t
		}
		twIdx += fstride
	}
}

func (p *Plan) bfly3(fout []complex128, fstride int, m, n, mm int) {
	m2 := 2 * m
	epi3 := p.twiddles[fstride*m]
	epi3i := imag(epi3)
	tw := p.twiddles
	fstride2 := fstride * 2

	for i := 0; i < n; i++ {
		foutBase := i * mm
		tw1Idx, tw2Idx := 0, 0
		for k := 0; k < m; k++ {
			scratch1 := fout[foutBase+m] * tw[tw1Idx]
			scratch2 := fout[foutBase+m2] * tw[tw2Idx]
			scratch3 := scratch1 + scratch2
			scratch0 := scratch1 - scratch2
			tw1Idx += fstride
			tw2Idx += fstride2

			fout[foutBase+m] = fout[foutBase] - complex(0.5*real(scratch3), 0.5*imag(scratch3))
			scratch0 = complex(real(scratch0)*epi3i, imag(scratch0)*epi3i)
			fout[foutBase] = fout[foutBase] + scratch3
			fout[foutBase+m2] = complex(
				real(fout[foutBase+m])+imag(scratch0),
				imag(fout[foutBase+m])-real(scratch0),
			)
			fout[foutBase+m] = complex(
				real(fout[foutBase+m])-imag(scratch0),
				imag(fout[foutBase+m])+real(scratch0),
			)
			foutBase++
		}
	}
}

func (p *Plan) bfly4(fout []complex128, fstride int, m, n, mm int) {
	m2 := 2 * m
	m3 := 3 * m

	if m == 1 {
		for i := 0; i < n; i++ {
			base := i * 4
			scratch0 := fout[base] - fout[base+2]
			fout[base] = fout[base] + fout[base+2]
			scratch1 := fout[base+1] + fout[base+3]
			fout[base+2] = fout[base] - scratch1
			fout[base] = fout[base] + scratch1
			scratch1 = fout[base+1] - fout[base+3]

			fout[base+1] = complex(real(scratch0)+imag(scratch1), imag(scratch0)-real(scratch1))
			fout[base+3] = complex(real(scratch0)-imag(scratch1), imag(scratch0)+real(scratch1))
		}
		return
	}

	tw := p.twiddles
	fstride2 := fstride * 2
	fstride3 := fstride * 3
	for i := 0; i < n; i++ {
		foutBase := i * mm
		tw1Idx, tw2Idx, tw3Idx := 0, 0, 0
		for j := 0; j < m; j++ {
			scratch0 := fout[foutBase+m] * tw[tw1Idx]
			scratch1 := fout[foutBase+m2] * tw[tw2Idx]
			scratch2 := fout[foutBase+m3] * tw[tw3Idx]

			scratch5 := fout[foutBase] - scratch1
			fout[foutBase] = fout[foutBase] + scratch1
			scratch3 := scratch0 + scratch2
			scratch4 := scratch0 - scratch2
			fout[foutBase+m2] = fout[foutBase] - scratch3

			tw1Idx += fstride
			tw2Idx += fstride2
			tw3Idx += fstride3

			fout[foutBase] = fout[foutBase] + scratch3
			fout[foutBase+m] = complex(real(scratch5)+imag(scratch4), imag(scratch5)-real(scratch4))
			fout[foutBase+m3] = complex(real(scratch5)-imag(scratch4), imag(scratch5)+real(scratch4))
			foutBase++
		}
	}
}

func (p *Plan) bfly5(fout []complex128, fstride int, m, n, mm int) {
	const (
		yaR = 0.30901699437494742
		yaI = -0.95105651629515353
		ybR = -0.80901699437494742
		ybI = -0.58778525229247313
	)
	tw := p.twiddles
	fstride2 := fstride * 2
	fstride3 := fstride * 3
	fstride4 := fstride * 4

	for i := 0; i < n; i++ {
		foutBase := i * mm
		fout0 := foutBase
		fout1 := fout0 + m
		fout2 := fout0 + 2*m
		fout3 := fout0 + 3*m
		fout4 := fout0 + 4*m
		tw1, tw2, tw3, tw4 := 0, 0, 0, 0

		for u := 0; u < m; u++ {
			scratch0 := fout[fout0]
			scratch1 := fout[fout1] * tw[tw1]
			scratch2 := fout[fout2] * tw[tw2]
			scratch3 := fout[fout3] * tw[tw3]
			scratch4 := fout[fout4] * tw[tw4]

			scratch7 := scratch1 + scratch4
			scratch10 := scratch1 - scratch4
			scratch8 := scratch2 + scratch3
			scratch9 := scratch2 - scratch3

			fout[fout0] = scratch0 + scratch7 + scratch8

			s0r, s0i := real(scratch0), imag(scratch0)
			s7r, s7i := real(scratch7), imag(scratch7)
			s8r, s8i := real(scratch8), imag(scratch8)
			s10r, s10i := real(scratch10), imag(scratch10)
			s9r, s9i := real(scratch9), imag(scratch9)

			s5r := s0r + yaR*s7r + ybR*s8r
			s5i := s0i + yaR*s7i + ybR*s8i
			s6r := yaI*s10i + ybI*s9i
			s6i := -(yaI*s10r + ybI*s9r)

			fout[fout1] = complex(s5r-s6r, s5i-s6i)
			fout[fout4] = complex(s5r+s6r, s5i+s6i)

			s11r := s0r + ybR*s7r + yaR*s8r
			s11i := s0i + ybR*s7i + yaR*s8i
			s12r := -ybI*s10i + yaI*s9i
			s12i := ybI*s10r - yaI*s9r

			fout[fout2] = complex(s11r+s12r, s11i+s12i)
			fout[fout3] = complex(s11r-s12r, s11i-s12i)

			fout0++
			fout1++
			fout2++
			fout3++
			fout4++
			tw1 += fstride
			tw2 += fstride2
			tw3 += fstride3
			tw4 += fstride4
		}
	}
}

// IsFiveSmooth reports whether n has no prime factor greater than 5.
func IsFiveSmooth(n int) bool {
	for _, r := range [...]int{2, 3, 5} {
		for n%r == 0 {
			n /= r
		}
	}
	return n == 1
}

// NextFiveSmoothEven returns the smallest even 5-smooth integer >= n.
func NextFiveSmoothEven(n int) int {
	if n < 2 {
		return 2
	}
	if n%2 == 1 {
		n++
	}
	for !IsFiveSmooth(n) {
		n += 2
	}
	return n
}
