package stat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	dist, err := Fit([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist.Mean)
	assert.Equal(t, 1.0, dist.Stddev)
}

func TestFitTwoPointBatch(t *testing.T) {
	dist, err := Fit([]float64{684, 708})
	require.NoError(t, err)
	assert.Equal(t, 696.0, dist.Mean)
	assert.InDelta(t, 16.9706, dist.Stddev, 0.0001)
}

func TestFitInsufficientSamples(t *testing.T) {
	tt := []struct {
		Name    string
		Samples []float64
	}{
		{Name: "single sample", Samples: []float64{672}},
		{Name: "empty batch", Samples: nil},
	}
	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := Fit(tc.Samples)
			require.Error(t, err)
			assert.IsType(t, InsufficientSamplesError{}, err)
		})
	}
}

func TestFitDegenerateDistribution(t *testing.T) {
	_, err := Fit([]float64{648, 648, 648})
	require.Error(t, err)
	assert.IsType(t, DegenerateDistributionError{}, err)
}

func TestCDFProperties(t *testing.T) {
	dist := Distribution{Mean: 696, Stddev: 16.97}

	prev := 0.0
	for f := dist.Mean - 8*dist.Stddev; f <= dist.Mean+8*dist.Stddev; f += 0.5 {
		c := dist.CDF(f)
		assert.GreaterOrEqual(t, c, prev, "CDF must be non-decreasing at %f", f)
		prev = c
	}
	assert.InDelta(t, 0.0, dist.CDF(dist.Mean-8*dist.Stddev), 1e-9)
	assert.InDelta(t, 1.0, dist.CDF(dist.Mean+8*dist.Stddev), 1e-9)
	assert.InDelta(t, 0.5, dist.CDF(dist.Mean), 1e-12)
}
