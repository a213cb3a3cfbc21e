package stat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freqbin/pkg/oracle"
	"freqbin/pkg/rng"
)

type mockNormalityTester struct {
	mock.Mock
}

func (m *mockNormalityTester) TestNormality(ctx context.Context, samples []float64) (oracle.Result, error) {
	args := m.Called(ctx, samples)
	return args.Get(0).(oracle.Result), args.Error(1)
}

func TestEvaluateCollectsUsableTrials(t *testing.T) {
	dist := Distribution{Mean: 696, Stddev: 16.97}
	samples := []float64{684, 708}

	m := new(mockNormalityTester)
	m.On("TestNormality", mock.Anything, mock.Anything).Return(oracle.Result{OK: true, PValue: 0.5}, nil).Once()
	m.On("TestNormality", mock.Anything, mock.Anything).Return(oracle.Result{OK: true, PValue: 0.7}, nil).Once()
	// oracle produced no parseable result; trial discarded
	m.On("TestNormality", mock.Anything, mock.Anything).Return(oracle.Result{}, nil).Once()
	// oracle unavailable; trial discarded, pipeline unaffected
	m.On("TestNormality", mock.Anything, mock.Anything).Return(oracle.Result{}, errors.New("oracle gone")).Once()
	m.On("TestNormality", mock.Anything, mock.Anything).Return(oracle.Result{OK: true, PValue: 0.9}, nil).Once()

	e := NewNormalityEvaluator(5, NewDequantizer(24, rng.NewUniformRNG(3)), m)
	got := e.Evaluate(context.Background(), samples, dist)

	assert.Equal(t, PValues{0.5, 0.7, 0.9}, got)
	m.AssertNumberOfCalls(t, "TestNormality", 5)
}

func TestEvaluateAllTrialsDiscarded(t *testing.T) {
	dist := Distribution{Mean: 696, Stddev: 16.97}

	m := new(mockNormalityTester)
	m.On("TestNormality", mock.Anything, mock.Anything).Return(oracle.Result{}, nil)

	e := NewNormalityEvaluator(3, NewDequantizer(24, rng.NewUniformRNG(3)), m)
	got := e.Evaluate(context.Background(), []float64{684, 708}, dist)

	assert.Empty(t, got)
}

func TestEvaluateSubmitsDequantizedCopies(t *testing.T) {
	dist := Distribution{Mean: 696, Stddev: 16.97}
	samples := []float64{684, 708}

	var submitted [][]float64
	m := new(mockNormalityTester)
	m.On("TestNormality", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		submitted = append(submitted, args.Get(1).([]float64))
	}).Return(oracle.Result{OK: true, PValue: 0.5}, nil)

	e := NewNormalityEvaluator(2, NewDequantizer(24, rng.NewUniformRNG(3)), m)
	e.Evaluate(context.Background(), samples, dist)

	require.Len(t, submitted, 2)
	for _, trial := range submitted {
		require.Len(t, trial, len(samples))
		assert.GreaterOrEqual(t, trial[0], 672.0)
		assert.Less(t, trial[0], 696.0)
		assert.GreaterOrEqual(t, trial[1], 696.0)
		assert.Less(t, trial[1], 720.0)
	}
	// fresh draws per trial give distinct continuous copies
	assert.NotEqual(t, submitted[0], submitted[1])
}

func TestNewNormalityEvaluatorDefaultTrials(t *testing.T) {
	m := new(mockNormalityTester)
	m.On("TestNormality", mock.Anything, mock.Anything).Return(oracle.Result{}, nil)

	e := NewNormalityEvaluator(0, NewDequantizer(24, rng.NewUniformRNG(1)), m)
	e.Evaluate(context.Background(), []float64{684, 708}, Distribution{Mean: 696, Stddev: 16.97})

	m.AssertNumberOfCalls(t, "TestNormality", DefaultTrials)
}
