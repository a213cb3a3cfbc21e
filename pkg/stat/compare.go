package stat

import (
	"context"
	"sort"

	"freqbin/pkg/oracle"
)

// Comparator tests whether a validation batch's observed bin counts are
// consistent with a training batch's probability model.  It realizes the
// train/validate generalization check across independently measured board
// populations.
type Comparator struct {
	tester oracle.FitTester
}

func NewComparator(tester oracle.FitTester) *Comparator {
	return &Comparator{tester: tester}
}

// Align builds the combined frequency-sorted bin set: every training bin with
// probability at or above the cutoff enters with an observed count of zero,
// then each validation bin overwrites or inserts its observed count with the
// training probability (or zero where the training model has none).
// Validation bins with no observations and sub-cutoff probability carry no
// information and are skipped.  The returned slices are aligned and ordered
// by bin-start frequency.
func (c *Comparator) Align(training, validation *Model) (expected []float64, observed []int) {
	type entry struct {
		prob  float64
		count int
	}

	trainProb := make(map[float64]float64, len(training.Bins))
	combined := make(map[float64]entry)
	for _, b := range training.Bins {
		trainProb[b.Start] = b.Probability
		if b.Probability >= cdfCutoff {
			combined[b.Start] = entry{prob: b.Probability}
		}
	}
	for _, b := range validation.Bins {
		p := trainProb[b.Start]
		if b.Observed == 0 && p < cdfCutoff {
			continue
		}
		combined[b.Start] = entry{prob: p, count: b.Observed}
	}

	starts := make([]float64, 0, len(combined))
	for s := range combined {
		starts = append(starts, s)
	}
	sort.Float64s(starts)

	expected = make([]float64, len(starts))
	observed = make([]int, len(starts))
	for i, s := range starts {
		expected[i] = combined[s].prob
		observed[i] = combined[s].count
	}
	return expected, observed
}

// Compare submits the aligned vectors to the external exact multinomial
// oracle.  An unusable oracle result surfaces as a non-OK verdict or an
// error; neither aborts the run.
func (c *Comparator) Compare(ctx context.Context, training, validation *Model) (oracle.Verdict, error) {
	expected, observed := c.Align(training, validation)
	return c.tester.TestFit(ctx, observed, expected)
}
