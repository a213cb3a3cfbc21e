package oracle

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

var _ ChartRenderer = &Gnuplot{}

// Gnuplot renders the failure-probability curve for one batch to a PNG.
// Unlike the statistical oracles, a missing gnuplot is not absorbed: the
// caller asked for a chart explicitly, so the error propagates.
type Gnuplot struct {
	path    string
	timeout time.Duration
}

func NewGnuplot(path string, timeout time.Duration) *Gnuplot {
	return &Gnuplot{path: path, timeout: timeout}
}

func (g *Gnuplot) Render(ctx context.Context, points []ChartPoint, outPath string) error {
	if _, err := exec.LookPath(g.path); err != nil {
		return UnavailableError{Tool: g.path, Err: err}
	}

	data, err := os.CreateTemp("", "freqbin-chart")
	if err != nil {
		return err
	}
	defer os.Remove(data.Name())
	for _, p := range points {
		fmt.Fprintf(data, "%g %g\n", p.Frequency, p.Percent)
	}
	if err := data.Close(); err != nil {
		return err
	}

	script := fmt.Sprintf(`set terminal png
set output %q
set xlabel "frequency"
set ylabel "failure %%"
set yrange [0:100]
plot %q using 1:2 with lines notitle
`, outPath, data.Name())

	cctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	cmd := exec.CommandContext(cctx, g.path)
	cmd.Stdin = strings.NewReader(script)
	if out, err := cmd.CombinedOutput(); err != nil {
		return UnavailableError{Tool: g.path, Err: fmt.Errorf("%v: %s", err, strings.TrimSpace(string(out)))}
	}
	return nil
}
