package stat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine(t *testing.T) {
	tt := []struct {
		Name     string
		PValues  PValues
		Expected float64
	}{
		// chi2 = 0 degenerates the series to its first term
		{Name: "identity at 1.0", PValues: PValues{1.0, 1.0}, Expected: 1.0},
		// reference value for Fisher's method on two p-values of 0.05
		{Name: "two at 0.05", PValues: PValues{0.05, 0.05}, Expected: 0.017479},
		{Name: "single p-value is preserved", PValues: PValues{0.3}, Expected: 0.3},
		{Name: "mixed evidence", PValues: PValues{0.01, 0.8}, Expected: 0.046626},
	}
	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			combined, err := tc.PValues.Combine()
			require.NoError(t, err)
			assert.InDelta(t, tc.Expected, combined, 1e-5)
		})
	}
}

func TestCombineInvalidPValue(t *testing.T) {
	for _, p := range []PValues{{0.5, 0}, {-0.1}} {
		_, err := p.Combine()
		require.Error(t, err)
		assert.IsType(t, InvalidPValueError{}, err)
	}
}

func TestCombineEmpty(t *testing.T) {
	_, err := PValues{}.Combine()
	assert.Error(t, err)
}
