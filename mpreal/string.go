// string.go implements §4.5.1's decimal string grammar: ReadString parses
// "± digits [. digits] [eE ± digits]" into a Real, WriteString renders a
// Real back to decimal, honoring the FloatFormat fixed/scientific choice.
package mpreal

import (
	"strconv"
	"strings"

	"github.com/mpreal/mpcore/limb"
	"github.com/mpreal/mpcore/types"
)

// ReadString parses s into a Real, per §4.5.1. Whitespace around the
// value is ignored. ErrParse is returned for any input that does not
// match the grammar, or whose normalized exponent is not a multiple of 8
// (an invariant the normalization logic below guarantees it cannot
// actually violate, kept as a defensive check).
func ReadString(s string) (*Real, error) {
	cp, err := currentPrecision()
	if err != nil {
		return nil, err
	}
	r := newReal(cp)
	if err := r.readString(s); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Real) readString(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return ErrParse
	}

	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}
	if s == "" {
		return ErrParse
	}

	mantissa := s
	expPart := 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissa = s[:i]
		expStr := s[i+1:]
		if expStr == "" {
			return ErrParse
		}
		v, err := strconv.Atoi(expStr)
		if err != nil {
			return ErrParse
		}
		expPart = v
	}

	intPart := mantissa
	fracPart := ""
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		intPart = mantissa[:i]
		fracPart = mantissa[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return ErrParse
	}
	for _, c := range intPart {
		if c < '0' || c > '9' {
			return ErrParse
		}
	}
	for _, c := range fracPart {
		if c < '0' || c > '9' {
			return ErrParse
		}
	}

	digits := intPart + fracPart
	// decimalExp is the power-of-ten weight of the first digit of `digits`.
	decimalExp := int64(len(intPart) - 1 + expPart)

	digits = strings.TrimLeft(digits, "0")
	trimmedLeading := len(intPart) + len(fracPart) - len(digits)
	decimalExp -= int64(trimmedLeading)
	digits = strings.TrimRight(digits, "0")

	if digits == "" {
		r.SetZero()
		return nil
	}

	// The leading limb's window is the 8-digit-wide span of weights that is
	// a multiple of limb.DigitsPerLimb and contains decimalExp; firstChunkLen
	// is how many of digits' leading characters fall within that window
	// (the rest of the window, if any, is implicitly leading zeros that need
	// no explicit padding since they don't change the parsed limb value).
	windowPos := floorMod(decimalExp, limb.DigitsPerLimb)
	firstChunkLen := int(windowPos) + 1
	windowStart := decimalExp - windowPos

	capacity := firstChunkLen + (r.Data.Len()-1)*limb.DigitsPerLimb
	if len(digits) > capacity {
		digits = digits[:capacity]
	}

	r.SetZero()
	r.Sign = neg

	pos := 0
	chunkLen := firstChunkLen
	for limbIdx := 0; limbIdx < r.Data.Len() && pos < len(digits); limbIdx++ {
		end := pos + chunkLen
		var chunkStr string
		if end <= len(digits) {
			chunkStr = digits[pos:end]
		} else {
			chunkStr = digits[pos:] + strings.Repeat("0", end-len(digits))
		}
		v, err := strconv.ParseUint(chunkStr, 10, 32)
		if err != nil {
			return ErrParse
		}
		r.Data.Set(limbIdx, uint32(v))
		pos = end
		chunkLen = limb.DigitsPerLimb
	}

	r.Exp = windowStart
	if r.Exp%limb.DigitsPerLimb != 0 {
		return ErrParse
	}
	r.PrecElem = r.Data.Len()
	return nil
}

// floorMod returns a mod m with the result always in [0, m), matching
// Euclidean (floor) division rather than Go's truncating %.
func floorMod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// WriteString renders r in the given format to requestedDigits significant
// decimal digits (0 meaning "use the configured digits10"), rounding the
// trailing digit with round-half-to-even.
func (r *Real) WriteString(format types.FloatFormat, requestedDigits int) string {
	switch r.Class {
	case types.NaN:
		return "nan"
	case types.Inf:
		if r.Sign {
			return "-inf"
		}
		return "inf"
	}
	if r.IsZero() {
		if format == types.FormatScientific {
			return "0e+00"
		}
		return "0"
	}
	if requestedDigits <= 0 {
		requestedDigits = r.cp.Characteristics().Digits10
	}

	digits, decExp := r.digitString(requestedDigits)

	var b strings.Builder
	if r.Sign {
		b.WriteByte('-')
	}

	switch format {
	case types.FormatScientific:
		b.WriteByte(digits[0])
		if len(digits) > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}
		b.WriteByte('e')
		if decExp >= 0 {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
			decExp = -decExp
		}
		expStr := strconv.FormatInt(decExp, 10)
		if len(expStr) < 2 {
			expStr = "0" + expStr
		}
		b.WriteString(expStr)
	default:
		writeFixed(&b, digits, decExp)
	}
	return b.String()
}

func writeFixed(b *strings.Builder, digits string, decExp int64) {
	if decExp < 0 {
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", int(-decExp-1)))
		b.WriteString(digits)
		return
	}
	intLen := int(decExp) + 1
	if intLen >= len(digits) {
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", intLen-len(digits)))
		return
	}
	b.WriteString(digits[:intLen])
	b.WriteByte('.')
	b.WriteString(digits[intLen:])
}

// digitString extracts up to n significant decimal digits from r's limb
// data (the raw concatenation of limb[0] then each subsequent limb
// zero-padded to 8 digits, per §4.5.1), rounding the final kept digit to
// nearest with ties resolved to even, and returns the digit string
// alongside the decimal exponent of its first digit.
func (r *Real) digitString(n int) (string, int64) {
	var raw strings.Builder
	top := strconv.FormatUint(uint64(r.Data.Get(0)), 10)
	raw.WriteString(top)
	decExp := r.Exp + int64(len(top)-1)
	for i := 1; i < r.Data.Len(); i++ {
		raw.WriteString(padLimb(r.Data.Get(i)))
	}
	s := raw.String()

	if n >= len(s) {
		return strings.TrimRight(s, "0"), decExp
	}

	kept := []byte(s[:n])
	roundUp := false
	if s[n] > '5' {
		roundUp = true
	} else if s[n] == '5' {
		if strings.IndexFunc(s[n+1:], func(c rune) bool { return c != '0' }) >= 0 {
			roundUp = true
		} else {
			roundUp = (kept[n-1]-'0')%2 == 1
		}
	}
	if roundUp {
		carry := 1
		for i := n - 1; i >= 0 && carry > 0; i-- {
			d := int(kept[i]-'0') + carry
			kept[i] = byte('0' + d%10)
			carry = d / 10
		}
		if carry > 0 {
			kept = append([]byte{'1'}, kept...)
			kept = kept[:n]
			decExp++
		}
	}
	out := strings.TrimRight(string(kept), "0")
	if out == "" {
		out = "0"
	}
	return out, decExp
}

func padLimb(v uint32) string {
	s := strconv.FormatUint(uint64(v), 10)
	if len(s) < limb.DigitsPerLimb {
		s = strings.Repeat("0", limb.DigitsPerLimb-len(s)) + s
	}
	return s
}
