// fmod.go implements §9's fmod Open Question. original_source/boost/
// multiprecision/mp_cpp_backend.hpp's eval_fmod resolves it: the result
// takes the sign of the dividend x (standard C fmod semantics, not a
// divisor-sign convention), via integer_part := floor(x/y), result :=
// x - integer_part*y, then one extra subtraction of y when x and y have
// opposite signs (floor-division already rounds toward the sign of y, so
// this corrects it back to truncation-toward-zero's sign convention).
package kernel

import "github.com/mpreal/mpcore/mpreal"

// Fmod returns the remainder of x/y with the sign of x, or NaN if y is
// zero.
func Fmod(x, y *mpreal.Real) (*mpreal.Real, error) {
	if x.IsNaN() || y.IsNaN() {
		out, err := mpreal.New()
		if err != nil {
			return nil, err
		}
		out.SetNaN()
		return out, nil
	}
	if y.IsZero() {
		out, err := mpreal.New()
		if err != nil {
			return nil, err
		}
		out.SetNaN()
		return out, nil
	}
	if x.IsZero() {
		return mpreal.FromInt64(0)
	}

	q, err := Div(x, y)
	if err != nil {
		return nil, err
	}
	integerPart := floorReal(q)
	result := x.Sub(integerPart.Mul(y))
	if x.SignBit() != y.SignBit() && !result.IsZero() {
		result = result.Sub(y)
	}
	return result, nil
}

// floorReal returns the greatest integer <= r, via Trunc adjusted down by
// one when truncation rounded toward zero past a negative fraction.
func floorReal(r *mpreal.Real) *mpreal.Real {
	t := r.Trunc()
	if r.SignBit() && !r.Equal(t) {
		one, err := mpreal.FromInt64(1)
		if err != nil {
			return t
		}
		return t.Sub(one)
	}
	return t
}
