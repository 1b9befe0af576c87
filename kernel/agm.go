// agm.go hosts the arithmetic-geometric-mean iteration shared by the
// logarithm kernel and its ln2 bootstrap: (a, b) -> ((a+b)/2, sqrt(a*b)),
// converging quadratically to a common limit agm(a,b).
package kernel

import "github.com/mpreal/mpcore/mpreal"

// agm runs the arithmetic-geometric-mean iteration to digits10Tol/2-digit
// agreement (per §4.7's logarithm recipe) and returns the common limit.
func agm(a, b *mpreal.Real, digits10Tol int) (*mpreal.Real, error) {
	budget := iterationBudget(digits10Tol)
	tolElems := tolElemsFor(digits10Tol)
	for i := 0; i < budget; i++ {
		aNext := a.Add(b).DivSmallOrPanic(2)
		geo, err := Sqrt(a.Mul(b))
		if err != nil {
			return nil, err
		}
		done := converged(a, aNext, tolElems)
		a, b = aNext, geo
		if done {
			break
		}
	}
	return a, nil
}
