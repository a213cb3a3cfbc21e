package stat

import (
	"context"

	"freqbin/pkg/oracle"
)

// DefaultTrials is the number of dequantization trials run per batch
const DefaultTrials = 5

// NormalityEvaluator produces diagnostic evidence that a batch is plausibly
// Gaussian.  Each trial dequantizes the whole batch with fresh random draws
// and submits the continuous copy to the normality oracle.  Trials whose
// oracle run yields no usable p-value are discarded silently; thin oracle
// coverage is expected and tolerated.
type NormalityEvaluator struct {
	trials int
	deq    *Dequantizer
	tester oracle.NormalityTester
}

func NewNormalityEvaluator(trials int, deq *Dequantizer, tester oracle.NormalityTester) *NormalityEvaluator {
	if trials <= 0 {
		trials = DefaultTrials
	}
	return &NormalityEvaluator{trials: trials, deq: deq, tester: tester}
}

// Evaluate runs the configured number of trials and returns the p-values of
// the usable ones.  The result may be empty.
func (e *NormalityEvaluator) Evaluate(ctx context.Context, samples []float64, dist Distribution) PValues {
	var out PValues
	for i := 0; i < e.trials; i++ {
		continuous := e.deq.DequantizeAll(samples, dist)
		res, err := e.tester.TestNormality(ctx, continuous)
		if err != nil || !res.OK {
			continue
		}
		out = append(out, res.PValue)
	}
	return out
}
