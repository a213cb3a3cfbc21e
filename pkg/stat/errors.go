package stat

import "fmt"

// InsufficientSamplesError is returned when a batch is too small to estimate
// a variance
type InsufficientSamplesError struct {
	N int
}

func (e InsufficientSamplesError) Error() string {
	return fmt.Sprintf("batch of %d sample(s) cannot estimate variance, need at least 2", e.N)
}

// DegenerateDistributionError is returned when every sample in a batch is
// identical.  A zero-scale Gaussian has no defined CDF, so this is caught
// before any distribution-dependent computation runs.
type DegenerateDistributionError struct {
	Mean float64
}

func (e DegenerateDistributionError) Error() string {
	return fmt.Sprintf("all samples identical (value %g), zero-variance batch has no usable distribution", e.Mean)
}

// InvalidPValueError is returned by Fisher's method when a p-value has no
// defined logarithm
type InvalidPValueError struct {
	P float64
}

func (e InvalidPValueError) Error() string {
	return fmt.Sprintf("p-value %g is not in (0,1], cannot combine", e.P)
}
