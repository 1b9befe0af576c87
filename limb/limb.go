// Package limb provides the fixed-length owned buffer of base-10^8 digit
// groups ("limbs") that backs every mpreal.Real value. A limb.Array's
// length is fixed at construction and never resized; all mutation targets
// individual limbs or ranges.
package limb

import "github.com/pkg/errors"

// Base is B, the limb radix (10^8). A limb holds a value in [0, Base).
const Base uint32 = 100000000

// HalfBase is B2, the secondary radix (10^4) used only by the FFT
// multiplier's digit-splitting step (fft package).
const HalfBase uint32 = 10000

// DigitsPerLimb is log10(Base).
const DigitsPerLimb = 8

// ErrAllocationFailed is returned when backing storage for an Array cannot
// be obtained.
var ErrAllocationFailed = errors.New("limb: allocation failed")

// Array is an owned, fixed-length sequence of limbs. The zero value is not
// usable; construct with New.
type Array struct {
	data []uint32
}

// New allocates an Array of length n, all limbs zero. n must be >= 1.
func New(n int) (Array, error) {
	if n <= 0 {
		return Array{}, errors.Wrapf(ErrAllocationFailed, "invalid length %d", n)
	}
	return Array{data: make([]uint32, n)}, nil
}

// MustNew is New, panicking on failure. Used at call sites where n is a
// compile-time or configuration-derived constant known to be positive
// (precision.N()).
func MustNew(n int) Array {
	a, err := New(n)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the fixed length of the array.
func (a Array) Len() int { return len(a.data) }

// Get returns the limb at index i.
func (a Array) Get(i int) uint32 { return a.data[i] }

// Set stores v at index i. v must be < Base; callers within basenum/mpreal
// maintain that invariant, this is a raw storage primitive.
func (a Array) Set(i int, v uint32) { a.data[i] = v }

// Fill sets every limb to v.
func (a Array) Fill(v uint32) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Zero clears every limb. Equivalent to Fill(0) but named for call-site
// clarity at normalization points.
func (a Array) Zero() { a.Fill(0) }

// Clone returns an independent copy with the same length and contents,
// giving Array value semantics at call sites that need to mutate a working
// copy (mpreal arithmetic scratch).
func (a Array) Clone() Array {
	out := Array{data: make([]uint32, len(a.data))}
	copy(out.data, a.data)
	return out
}

// CopyFrom copies min(a.Len(), src.Len()) limbs from src into a, starting
// at index 0 in both.
func (a Array) CopyFrom(src Array) {
	copy(a.data, src.data)
}

// CopyRange copies src[srcOff:srcOff+n] into a[dstOff:dstOff+n].
func (a Array) CopyRange(dstOff int, src Array, srcOff, n int) {
	copy(a.data[dstOff:dstOff+n], src.data[srcOff:srcOff+n])
}

// SwapRange exchanges a[off:off+n] with b[off:off+n] in place.
func SwapRange(a, b Array, off, n int) {
	for i := 0; i < n; i++ {
		a.data[off+i], b.data[off+i] = b.data[off+i], a.data[off+i]
	}
}

// Equal reports whether a and b have identical length and contents.
func Equal(a, b Array) bool {
	if len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// Slice exposes the backing limbs as a []uint32 for the handful of
// hot-path loops (basenum, fft) that need direct indexing without the
// method-call overhead. Mutations through the returned slice are visible
// through a.
func (a Array) Slice() []uint32 { return a.data }

// ForEach calls f(i, limb) for i from 0 to Len()-1.
func (a Array) ForEach(f func(i int, v uint32)) {
	for i, v := range a.data {
		f(i, v)
	}
}

// ForEachReverse calls f(i, limb) for i from Len()-1 down to 0.
func (a Array) ForEachReverse(f func(i int, v uint32)) {
	for i := len(a.data) - 1; i >= 0; i-- {
		f(i, a.data[i])
	}
}
