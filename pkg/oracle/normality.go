package oracle

import (
	"context"
	"regexp"
	"strconv"
	"time"
)

// shapiroScript reads samples from stdin and prints the Shapiro-Wilk p-value
// on a single line
const shapiroScript = `x <- scan("stdin", quiet=TRUE); r <- shapiro.test(x); cat(sprintf("p-value %.10f\n", r$p.value))`

var pValueRe = regexp.MustCompile(`p-value\s+([0-9eE.+-]+)`)

var _ NormalityTester = &ShapiroWilk{}

// ShapiroWilk tests samples for normality by shelling out to Rscript.  A run
// that produces no parseable p-value is reported as Result{OK: false}, not as
// an error.
type ShapiroWilk struct {
	run runner
}

func NewShapiroWilk(rscript string, timeout time.Duration) *ShapiroWilk {
	return &ShapiroWilk{
		run: runner{path: rscript, args: []string{"-e", shapiroScript}, timeout: timeout},
	}
}

func (s *ShapiroWilk) TestNormality(ctx context.Context, samples []float64) (Result, error) {
	out, err := s.run.run(ctx, formatSamples(samples))
	if err != nil {
		return Result{}, err
	}
	p, ok := parsePValue(out)
	if !ok {
		return Result{}, nil
	}
	return Result{OK: true, PValue: p}, nil
}

// parsePValue scrapes the first p-value from tool output.  Values outside
// (0,1] are treated as unparseable rather than propagated into Fisher's
// method where a zero would be undefined.
func parsePValue(out string) (float64, bool) {
	m := pValueRe.FindStringSubmatch(out)
	if m == nil {
		return 0, false
	}
	p, err := strconv.ParseFloat(m[1], 64)
	if err != nil || p <= 0 || p > 1 {
		return 0, false
	}
	return p, true
}
