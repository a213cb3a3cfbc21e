package oracle

import (
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff"
)

// maxLaunchRetries bounds how many times a failed tool invocation is retried
// before the trial is abandoned
const maxLaunchRetries = 2

// runner executes an external statistical tool, feeding its input on stdin
// and capturing combined output.  Every invocation runs under the configured
// timeout; transient launch failures are retried with exponential backoff.
type runner struct {
	path    string
	args    []string
	timeout time.Duration
}

func (r runner) run(ctx context.Context, stdin string) (string, error) {
	if _, err := exec.LookPath(r.path); err != nil {
		return "", UnavailableError{Tool: r.path, Err: err}
	}

	var out []byte
	op := func() error {
		cctx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()

		cmd := exec.CommandContext(cctx, r.path, r.args...)
		cmd.Stdin = strings.NewReader(stdin)
		b, err := cmd.CombinedOutput()
		if err != nil {
			if cctx.Err() != nil {
				return backoff.Permanent(UnavailableError{Tool: r.path, Err: cctx.Err()})
			}
			return err
		}
		out = b
		return nil
	}

	if err := backoff.Retry(op, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxLaunchRetries)); err != nil {
		var unavailable UnavailableError
		if errors.As(err, &unavailable) {
			return "", unavailable
		}
		return "", UnavailableError{Tool: r.path, Err: err}
	}
	return string(out), nil
}

// formatSamples renders one value per line, the format scan("stdin") expects
func formatSamples(samples []float64) string {
	var b strings.Builder
	for _, s := range samples {
		b.WriteString(strconv.FormatFloat(s, 'g', -1, 64))
		b.WriteByte('\n')
	}
	return b.String()
}
