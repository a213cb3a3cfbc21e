package freqbin

import (
	"fmt"
	"io"

	"freqbin/pkg/oracle"
	"freqbin/pkg/stat"
)

// reporter writes the human-readable analysis report.  Nothing downstream
// parses this output.
type reporter struct {
	w            io.Writer
	showCombined bool
}

func (r reporter) batch(n int, res *batchResult) {
	fmt.Fprintf(r.w, "Group %d: %d samples, mean %.2f, stddev %.2f\n", n, len(res.samples), res.dist.Mean, res.dist.Stddev)

	switch {
	case len(res.pvalues) == 0:
		fmt.Fprintf(r.w, "  normality: no verdict available\n")
	default:
		fmt.Fprintf(r.w, "  normality trial p-values:")
		for _, p := range res.pvalues {
			fmt.Fprintf(r.w, " %.4f", p)
		}
		fmt.Fprintln(r.w)
		if r.showCombined {
			r.combined(res.pvalues)
		}
	}

	fmt.Fprintf(r.w, "  %10s  %10s\n", "frequency", "failure")
	for _, pt := range res.model.CumulativeTable() {
		fmt.Fprintf(r.w, "  %10.0f  %9.2f%%\n", pt.Frequency, pt.Percent)
	}
}

func (r reporter) combined(p stat.PValues) {
	c, err := p.Combine()
	if err != nil {
		fmt.Fprintf(r.w, "  combined p-value: unavailable (%v)\n", err)
		return
	}
	fmt.Fprintf(r.w, "  combined p-value (Fisher): %.4f\n", c)
}

func (r reporter) verdict(train, validate int, v oracle.Verdict, err error) {
	if err != nil || !v.OK {
		fmt.Fprintf(r.w, "Goodness of fit (group %d model vs group %d counts): no verdict available\n", train, validate)
		return
	}
	fmt.Fprintf(r.w, "Goodness of fit (group %d model vs group %d counts): %s\n", train, validate, v.Text)
}
