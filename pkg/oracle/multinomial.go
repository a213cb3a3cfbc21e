package oracle

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// multinomialScript reads a count followed by the observed counts and the
// expected probabilities from stdin.  The leftover probability mass outside
// the supplied bins is folded into one extra zero-count category so the
// probabilities form a full multinomial.  The goodness-of-fit p-value is
// simulated rather than taken from the asymptotic chi-squared distribution
// because bin counts here are tiny.
const multinomialScript = `d <- scan("stdin", quiet=TRUE)
n <- d[1]
obs <- d[2:(n+1)]
p <- d[(n+2):(2*n+1)]
obs <- c(obs, 0)
p <- c(p, max(0, 1 - sum(p)))
r <- chisq.test(obs, p=p, rescale.p=TRUE, simulate.p.value=TRUE, B=10000)
cat(sprintf("X-squared %.6f p-value %.10f\n", r$statistic, r$p.value))`

var _ FitTester = &MultinomialExact{}

// MultinomialExact judges goodness of fit of observed bin counts against
// expected probabilities by shelling out to Rscript.  The raw report line is
// returned verbatim for the human-readable report.
type MultinomialExact struct {
	run runner
}

func NewMultinomialExact(rscript string, timeout time.Duration) *MultinomialExact {
	return &MultinomialExact{
		run: runner{path: rscript, args: []string{"-e", multinomialScript}, timeout: timeout},
	}
}

func (m *MultinomialExact) TestFit(ctx context.Context, observed []int, expected []float64) (Verdict, error) {
	out, err := m.run.run(ctx, formatFitInput(observed, expected))
	if err != nil {
		return Verdict{}, err
	}
	if _, ok := parsePValue(out); !ok {
		return Verdict{}, nil
	}
	return Verdict{OK: true, Text: strings.TrimSpace(out)}, nil
}

func formatFitInput(observed []int, expected []float64) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(observed)))
	b.WriteByte('\n')
	for _, o := range observed {
		b.WriteString(strconv.Itoa(o))
		b.WriteByte('\n')
	}
	for _, e := range expected {
		b.WriteString(strconv.FormatFloat(e, 'g', -1, 64))
		b.WriteByte('\n')
	}
	return b.String()
}
