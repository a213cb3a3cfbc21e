package freqbin

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"freqbin/pkg/stat"
)

// Config holds the analysis parameters for one run
type Config struct {
	Shift         float64
	Interval      int
	Trials        int
	Seed          int64
	ShowCombined  bool
	ChartPath     string
	ChartCmd      string
	ChartStep     float64
	Rscript       string
	OracleTimeout time.Duration

	shiftSet bool
}

type ConfigOption func(c *Config) error

func newConfig(options ...ConfigOption) (Config, []error) {
	c := Config{
		Trials:        stat.DefaultTrials,
		Seed:          time.Now().UnixNano(),
		ChartCmd:      "gnuplot",
		ChartStep:     1,
		Rscript:       "Rscript",
		OracleTimeout: 30 * time.Second,
	}

	var errors []error
	for _, option := range options {
		if err := option(&c); err != nil {
			errors = append(errors, err)
		}
	}

	switch {
	case !c.shiftSet:
		errors = append(errors, fmt.Errorf("shift is required, use freqbin -s <shift>"))
	default:
		// readings were rounded by up to |shift| in either direction, so the
		// quantization granularity is twice the shift magnitude
		c.Interval = int(math.Round(2 * math.Abs(c.Shift)))
		if c.Interval < 1 {
			errors = append(errors, fmt.Errorf("shift magnitude %g is too small, the derived binning interval must be a positive integer", c.Shift))
		}
	}
	if c.Trials < 1 {
		errors = append(errors, fmt.Errorf("trials must be at least 1"))
	}
	if c.ChartStep <= 0 {
		errors = append(errors, fmt.Errorf("chart-step must be positive"))
	}

	if len(errors) > 0 {
		return Config{}, errors
	}
	return c, nil
}

func Shift(value string) ConfigOption {
	return func(c *Config) error {
		s, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("could not convert shift to a number: %s", value)
		}
		c.Shift = s
		c.shiftSet = true
		return nil
	}
}

func Trials(value string) ConfigOption {
	return func(c *Config) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("could not convert trials to integer")
		}
		c.Trials = n
		return nil
	}
}

func Seed(value string) ConfigOption {
	return func(c *Config) error {
		s, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("could not convert seed to integer")
		}
		c.Seed = s
		return nil
	}
}

func ShowCombined() ConfigOption {
	return func(c *Config) error {
		c.ShowCombined = true
		return nil
	}
}

func Chart(path string) ConfigOption {
	return func(c *Config) error {
		c.ChartPath = path
		return nil
	}
}

func ChartCmd(path string) ConfigOption {
	return func(c *Config) error {
		c.ChartCmd = path
		return nil
	}
}

func ChartStep(value string) ConfigOption {
	return func(c *Config) error {
		s, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("could not convert chart-step to a number: %s", value)
		}
		c.ChartStep = s
		return nil
	}
}

func Rscript(path string) ConfigOption {
	return func(c *Config) error {
		c.Rscript = path
		return nil
	}
}

func OracleTimeout(value string) ConfigOption {
	return func(c *Config) error {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("unrecognized oracle timeout duration: %s", value)
		}
		c.OracleTimeout = d
		return nil
	}
}
