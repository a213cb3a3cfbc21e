package freqbin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	c, errs := newConfig(Shift("12"))
	require.Empty(t, errs)

	assert.Equal(t, 12.0, c.Shift)
	assert.Equal(t, 24, c.Interval)
	assert.Equal(t, 5, c.Trials)
	assert.Equal(t, "gnuplot", c.ChartCmd)
	assert.Equal(t, "Rscript", c.Rscript)
	assert.Equal(t, 30*time.Second, c.OracleTimeout)
	assert.False(t, c.ShowCombined)
}

func TestNewConfigIntervalDerivation(t *testing.T) {
	tt := []struct {
		Name     string
		Shift    string
		Interval int
	}{
		{Name: "positive shift", Shift: "12", Interval: 24},
		{Name: "negative shift", Shift: "-12", Interval: 24},
		{Name: "fractional shift rounds", Shift: "12.4", Interval: 25},
		{Name: "half unit shift", Shift: "0.5", Interval: 1},
	}
	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			c, errs := newConfig(Shift(tc.Shift))
			require.Empty(t, errs)
			assert.Equal(t, tc.Interval, c.Interval)
		})
	}
}

func TestNewConfigErrors(t *testing.T) {
	tt := []struct {
		Name    string
		Options []ConfigOption
	}{
		{Name: "missing shift", Options: nil},
		{Name: "shift too small", Options: []ConfigOption{Shift("0.2")}},
		{Name: "shift not a number", Options: []ConfigOption{Shift("abc")}},
		{Name: "zero trials", Options: []ConfigOption{Shift("12"), Trials("0")}},
		{Name: "trials not a number", Options: []ConfigOption{Shift("12"), Trials("five")}},
		{Name: "bad seed", Options: []ConfigOption{Shift("12"), Seed("1.5")}},
		{Name: "bad timeout", Options: []ConfigOption{Shift("12"), OracleTimeout("never")}},
		{Name: "bad chart step", Options: []ConfigOption{Shift("12"), ChartStep("-1")}},
	}
	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			_, errs := newConfig(tc.Options...)
			assert.NotEmpty(t, errs)
		})
	}
}
