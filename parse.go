package freqbin

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-yaml/yaml"
	"github.com/spf13/pflag"
)

type options struct {
	options []ConfigOption
	err     error
}

// ParseCommandLine configures the run from command-line options or from a
// YAML configuration file passed with the -c flag.  Returns the measurement
// payload arguments and a slice of functional options that can be applied to
// the configuration.
func ParseCommandLine() ([]string, []ConfigOption, error) {
	pf := createFlagSet()
	return parse(os.Args[1:], pf)
}

func parse(args []string, pf *pflag.FlagSet) ([]string, []ConfigOption, error) {
	options := options{}
	if err := pf.ParseAll(args, parseFlag(&options)); err != nil {
		return pf.Args(), options.options, err
	}
	return pf.Args(), options.options, options.err
}

func createFlagSet() *pflag.FlagSet {
	pf := pflag.NewFlagSet("freqbin", pflag.ContinueOnError)
	pf.Usage = func() {
		fmt.Printf("Usage of freqbin:\nfreqbin -s <shift> <options> \"<freq> <freq> ...\"\nfreqbin -s <shift> <options> \"<group1 freqs>, <group2 freqs>, ...\"\n")
		fmt.Printf("\nEach group is a whitespace-separated list of measured frequency values from one board population; groups are separated by commas.  The first group trains the probability model and every later group is validated against it.\n")
		fmt.Printf("\n%s", pf.FlagUsagesWrapped(10))
	}

	pf.StringP("shift", "s", "", "Frequency shift applied to every reading; the binning interval is twice its magnitude (required)")
	pf.StringP("config", "c", "", "Use yaml configuration file")
	pf.Int("trials", 5, "Number of dequantized normality trials per measurement group.")
	pf.Int64("seed", 0, "Seed for the dequantization random source.  Defaults to the wall clock; set it to make runs reproducible.")
	pf.Bool("combine", false, "Also report the Fisher-combined p-value of the normality trials.")
	pf.String("chart", "", "Write a failure-probability chart to this PNG path.  Requires the charting tool.")
	pf.String("chart-cmd", "gnuplot", "Charting tool to invoke.")
	pf.String("chart-step", "1", "Frequency step between chart samples.")
	pf.String("rscript", "Rscript", "Interpreter used to run the statistical oracles.")
	pf.Duration("oracle-timeout", 30*time.Second, "Bounded wait for each oracle invocation (e.g., 10s, 1m).")

	return pf
}

func parseFlag(o *options) func(*pflag.Flag, string) error {
	return func(flag *pflag.Flag, value string) error {
		switch flag.Name {
		case "config":
			opts, err := parseFromFile(value)
			if err != nil {
				o.err = err
				return err
			}
			o.options = append(o.options, opts...)
		default:
			option, err := handleOption(flag.Name, value)
			if err != nil {
				o.err = err
				return err
			}
			o.options = append(o.options, option)
		}
		return nil
	}
}

func handleOption(name string, value string) (ConfigOption, error) {
	switch name {
	case "shift":
		return Shift(value), nil
	case "trials":
		return Trials(value), nil
	case "seed":
		return Seed(value), nil
	case "combine":
		return ShowCombined(), nil
	case "chart":
		return Chart(value), nil
	case "chart-cmd":
		return ChartCmd(value), nil
	case "chart-step":
		return ChartStep(value), nil
	case "rscript":
		return Rscript(value), nil
	case "oracle-timeout":
		return OracleTimeout(value), nil
	default:
		return nil, fmt.Errorf("Unknown option: %s", name)
	}
}

func parseFromFile(fpath string) ([]ConfigOption, error) {
	var options []ConfigOption
	data, err := os.ReadFile(fpath)
	if err != nil {
		return options, err
	}

	cfg := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return options, err
	}
	for k, v := range cfg {
		var value string
		switch v := v.(type) {
		case string:
			value = v
		case int:
			value = strconv.Itoa(v)
		case float64:
			value = strconv.FormatFloat(v, 'g', -1, 64)
		case bool:
			if !v {
				continue
			}
		default:
			return options, fmt.Errorf("Could not process config key %s, unknown type", k)
		}
		opt, err := handleOption(k, value)
		if err != nil {
			return options, err
		}
		options = append(options, opt)
	}
	return options, nil
}

// ParseGroups splits the measurement payload into per-batch sample slices
// with the configured shift applied.  The payload is one or more
// comma-separated groups, each group a whitespace-separated list of real
// numbers.
func ParseGroups(args []string, shift float64) ([][]float64, error) {
	payload := strings.Join(args, " ")
	if strings.TrimSpace(payload) == "" {
		return nil, fmt.Errorf("no measurement values given")
	}

	var groups [][]float64
	for _, part := range strings.Split(payload, ",") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			return nil, fmt.Errorf("empty measurement group in %q", payload)
		}
		group := make([]float64, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("could not parse frequency value %q", f)
			}
			group = append(group, v+shift)
		}
		groups = append(groups, group)
	}
	return groups, nil
}
