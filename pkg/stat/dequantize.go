package stat

import (
	"math"

	"freqbin/pkg/rng"
)

// bisectTolerance is the convergence tolerance in units of the measured
// quantity
const bisectTolerance = 0.001

// Dequantizer reconstructs a plausible continuous value for a sample that was
// observed at a fixed rounding granularity, consistent with the fitted
// Gaussian.  It holds only its configuration; every call is a pure function
// of the sample, the distribution, and one random draw.
type Dequantizer struct {
	interval float64
	source   rng.RNG
}

func NewDequantizer(interval int, source rng.RNG) *Dequantizer {
	return &Dequantizer{interval: float64(interval), source: source}
}

// Dequantize draws a value from the fitted Gaussian restricted to the bin
// containing x.  The target CDF value is picked uniformly between the CDF at
// the bin bounds, then located by bisection; strict monotonicity of the CDF
// for stddev > 0 guarantees convergence.  The result lies in [lo, hi).
func (d *Dequantizer) Dequantize(x float64, dist Distribution) float64 {
	lo := math.Floor(x/d.interval) * d.interval
	hi := lo + d.interval

	cdfLo := dist.CDF(lo)
	cdfHi := dist.CDF(hi)
	target := cdfLo + d.source.Rand()*(cdfHi-cdfLo)

	for hi-lo > bisectTolerance {
		mid := (lo + hi) / 2
		if dist.CDF(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// DequantizeAll produces one fully dequantized copy of a batch, with a fresh
// random draw per sample
func (d *Dequantizer) DequantizeAll(samples []float64, dist Distribution) []float64 {
	out := make([]float64, len(samples))
	for i, x := range samples {
		out[i] = d.Dequantize(x, dist)
	}
	return out
}
