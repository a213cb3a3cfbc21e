package stat

import "math"

// cdfCutoff is the probability mass below which a bin carries no usable
// information.  It bounds both the comparator's bin selection and the lower
// edge of the cumulative report table.
const cdfCutoff = 0.0001

// reportCeiling ends the cumulative table once failure probability is
// effectively total
const reportCeiling = 0.99

// Bin is one half-open frequency interval [Start, Start+interval) with the
// probability mass the fitted Gaussian assigns to it and the number of batch
// samples observed in it.
type Bin struct {
	Start       float64
	Probability float64
	Observed    int
}

// Model is the per-bin probability table for one batch, covering the range
// mean +/- 6 stddev snapped to interval boundaries.  It is built once per
// batch and read-only afterwards.
type Model struct {
	Interval int
	Dist     Distribution
	Bins     []Bin
}

// TablePoint is one row of the truncated cumulative failure table
type TablePoint struct {
	Frequency float64
	Percent   float64
}

// BuildModel derives the probability model for a batch.  Tails beyond six
// standard deviations are assumed negligible and are not represented.
func BuildModel(samples []float64, dist Distribution, interval int) *Model {
	step := float64(interval)
	mid := math.Floor(dist.Mean/step) * step
	span := math.Floor(6*dist.Stddev/step) * step
	min := mid - span
	max := mid + span

	var bins []Bin
	for f := min; f <= max; f += step {
		count := 0
		for _, x := range samples {
			if x >= f && x < f+step {
				count++
			}
		}
		bins = append(bins, Bin{
			Start:       f,
			Probability: dist.CDF(f+step) - dist.CDF(f),
			Observed:    count,
		})
	}
	return &Model{Interval: interval, Dist: dist, Bins: bins}
}

// CumulativeTable derives the presentation table of (frequency, failure %)
// rows.  It walks down from the top of the analyzed range to find the lower
// edge of the transition region, then emits rows upward until the cumulative
// probability reaches the ceiling.  The far tails, where failure is
// effectively 0% or 100%, are intentionally omitted.
func (m *Model) CumulativeTable() []TablePoint {
	step := float64(m.Interval)
	f := m.Bins[len(m.Bins)-1].Start
	for m.Dist.CDF(f) >= cdfCutoff {
		f -= step
	}

	var out []TablePoint
	for {
		f += step
		c := m.Dist.CDF(f)
		out = append(out, TablePoint{Frequency: f, Percent: c * 100})
		if c >= reportCeiling {
			return out
		}
	}
}

// ChartPoints samples the failure curve at a fixed frequency step across the
// full analyzed range, for the external charting tool.
func (m *Model) ChartPoints(step float64) []TablePoint {
	min := m.Bins[0].Start
	max := m.Bins[len(m.Bins)-1].Start + float64(m.Interval)

	var out []TablePoint
	for f := min; f <= max; f += step {
		out = append(out, TablePoint{Frequency: f, Percent: m.Dist.CDF(f) * 100})
	}
	return out
}
