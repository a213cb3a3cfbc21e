// Package stat implements the core inference pipeline: per-batch Gaussian
// fitting, dequantization of rounded samples, repeated normality trials with
// Fisher aggregation, per-bin probability models, and the train/validate
// goodness-of-fit comparison.
package stat

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Distribution is the Gaussian fitted to one measurement batch
type Distribution struct {
	Mean   float64
	Stddev float64
}

// CDF is the probability that a value drawn from the distribution is <= t
func (d Distribution) CDF(t float64) float64 {
	return distuv.Normal{Mu: d.Mean, Sigma: d.Stddev}.CDF(t)
}

// Fit estimates the Gaussian underlying one batch using the arithmetic mean
// and the Bessel-corrected (n-1) sample variance.
func Fit(samples []float64) (Distribution, error) {
	if len(samples) < 2 {
		return Distribution{}, InsufficientSamplesError{N: len(samples)}
	}
	mean, err := stats.Mean(samples)
	if err != nil {
		return Distribution{}, err
	}
	variance, err := stats.SampleVariance(samples)
	if err != nil {
		return Distribution{}, err
	}
	stddev := math.Sqrt(variance)
	if stddev == 0 {
		return Distribution{}, DegenerateDistributionError{Mean: mean}
	}
	return Distribution{Mean: mean, Stddev: stddev}, nil
}
