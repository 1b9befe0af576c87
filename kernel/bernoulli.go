// bernoulli.go implements §4.7's Bernoulli-number generator (component
// C9): the Brent/Zimmermann tangent-number recurrence, converted to
// signed Bernoulli numbers.
package kernel

import "github.com/mpreal/mpcore/mpreal"

// Bernoulli returns the first n Bernoulli numbers B_0, B_1, ..., B_{n-1}
// (every odd index beyond B_1 is identically zero), computed together via
// the tangent-number recurrence since it naturally produces the even ones
// as a batch rather than one at a time.
func Bernoulli(n int) ([]*mpreal.Real, error) {
	if n <= 0 {
		return nil, nil
	}
	m := n/2 + 1
	if m < 1 {
		m = 1
	}

	t := make([]*mpreal.Real, m+1)
	zero, err := mpreal.FromInt64(0)
	if err != nil {
		return nil, err
	}
	one, err := mpreal.FromInt64(1)
	if err != nil {
		return nil, err
	}
	for i := range t {
		t[i] = zero.Clone()
	}
	t[0] = zero.Clone()
	if len(t) > 1 {
		t[1] = one.Clone()
	}

	two, err := mpreal.FromInt64(2)
	if err != nil {
		return nil, err
	}
	// T_{k+1} = k*T_k seeds the table before the nested recurrence.
	for k := 1; k < m; k++ {
		kReal, err := mpreal.FromInt64(int64(k))
		if err != nil {
			return nil, err
		}
		t[k+1] = t[k].Mul(kReal)
	}
	for k := 2; k <= m; k++ {
		t[k] = t[k].Mul(two)
		for j := k + 1; j <= m; j++ {
			a, err := mpreal.FromInt64(int64(j - k))
			if err != nil {
				return nil, err
			}
			b, err := mpreal.FromInt64(int64(j - k + 2))
			if err != nil {
				return nil, err
			}
			t[j] = t[j-1].Mul(a).Add(t[j].Mul(b))
		}
	}

	results := make([]*mpreal.Real, n)
	b0, err := mpreal.FromInt64(1)
	if err != nil {
		return nil, err
	}
	results[0] = b0
	if n > 1 {
		negHalf, err := one.Neg().DivSmall(2)
		if err != nil {
			return nil, err
		}
		results[1] = negHalf
	}

	four, err := mpreal.FromInt64(4)
	if err != nil {
		return nil, err
	}
	for i := 1; i < m && 2*i < n; i++ {
		four2i := powInt(four, i)
		denom := four2i.Mul(four2i.Sub(one))
		twoI, err := mpreal.FromInt64(int64(2 * i))
		if err != nil {
			return nil, err
		}
		numerator := t[i].Mul(twoI)
		b2i, err := Div(numerator, denom)
		if err != nil {
			return nil, err
		}
		if i%2 == 0 {
			b2i = b2i.Neg()
		}
		idx := 2 * i
		if idx < len(results) {
			results[idx] = b2i
		}
	}
	for i := range results {
		if results[i] == nil {
			results[i], err = mpreal.FromInt64(0)
			if err != nil {
				return nil, err
			}
		}
	}
	return results, nil
}
