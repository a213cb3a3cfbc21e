package stat

import (
	"fmt"
	"math"
)

// PValues collects the p-values produced by repeated normality trials on one
// batch.  An empty set means no verdict is available; it is not an error.
type PValues []float64

// Combine aggregates the set into a single p-value using Fisher's method:
// chi-squared statistic -2*sum(ln p_i) with 2n degrees of freedom, evaluated
// through the upper-tail series for even degrees of freedom.
func (p PValues) Combine() (float64, error) {
	if len(p) == 0 {
		return 0, fmt.Errorf("no p-values to combine")
	}

	chi2 := 0.0
	for _, pv := range p {
		if pv <= 0 {
			return 0, InvalidPValueError{P: pv}
		}
		chi2 += math.Log(pv)
	}
	chi2 *= -2

	df := 2 * len(p)
	term := math.Exp(-0.5 * chi2)
	sum := term
	for k := 2; k < df; k += 2 {
		term *= chi2 / float64(k)
		sum += term
	}
	return sum, nil
}
