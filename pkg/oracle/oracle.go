// Package oracle wraps the external statistical tools the analysis consults.
// Each oracle is an out-of-process collaborator with a narrow input/output
// contract: it either produces a usable result or it does not.  Flakiness is
// reported through the result types, not by crashing the pipeline.
package oracle

import "context"

// Result is the outcome of one normality-test invocation.  OK is false when
// the tool ran but produced no parseable p-value.
type Result struct {
	OK     bool
	PValue float64
}

// Verdict is the raw goodness-of-fit report from the exact multinomial test.
// The text is human-readable and is not parsed downstream.
type Verdict struct {
	OK   bool
	Text string
}

// ChartPoint is one sample of the failure-probability curve.
type ChartPoint struct {
	Frequency float64
	Percent   float64
}

// NormalityTester judges whether a sequence of continuous samples is
// plausibly drawn from a Gaussian.
type NormalityTester interface {
	TestNormality(ctx context.Context, samples []float64) (Result, error)
}

// FitTester judges whether observed bin counts are a plausible draw from the
// expected multinomial probabilities.  The two slices are aligned and ordered
// by frequency; the probabilities may sum to less than one over the supplied
// bins.
type FitTester interface {
	TestFit(ctx context.Context, observed []int, expected []float64) (Verdict, error)
}

// ChartRenderer draws the failure-probability curve to an image file.
type ChartRenderer interface {
	Render(ctx context.Context, points []ChartPoint, outPath string) error
}
