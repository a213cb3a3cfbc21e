// Package freqbin models repeated, quantized pass/fail frequency measurements
// across boards of one design.  Each measurement group is fitted with a
// Gaussian, expanded into a per-bin failure-probability model, and checked
// for normality through repeated dequantization trials; with two or more
// groups the first group's model is validated against the others through an
// exact multinomial goodness-of-fit test.
package freqbin

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"freqbin/pkg/oracle"
	"freqbin/pkg/rng"
	"freqbin/pkg/stat"
)

// Run executes the full analysis pipeline for one invocation
type Run struct {
	cfg       Config
	groups    [][]float64
	normality oracle.NormalityTester
	fit       oracle.FitTester
	chart     oracle.ChartRenderer
	out       io.Writer
}

// batchResult collects the per-batch outputs that must be complete before
// the comparator join point
type batchResult struct {
	samples []float64
	dist    stat.Distribution
	model   *stat.Model
	pvalues stat.PValues
}

// NewRun parses the measurement payload and prepares the pipeline with the
// real oracle backends
func NewRun(payload []string, opts ...ConfigOption) (*Run, []error) {
	cfg, errs := newConfig(opts...)
	if len(errs) > 0 {
		return nil, errs
	}
	groups, err := ParseGroups(payload, cfg.Shift)
	if err != nil {
		return nil, []error{err}
	}
	return &Run{
		cfg:       cfg,
		groups:    groups,
		normality: oracle.NewShapiroWilk(cfg.Rscript, cfg.OracleTimeout),
		fit:       oracle.NewMultinomialExact(cfg.Rscript, cfg.OracleTimeout),
		chart:     oracle.NewGnuplot(cfg.ChartCmd, cfg.OracleTimeout),
		out:       os.Stdout,
	}, nil
}

// Execute runs every batch through fitting, model building, and normality
// trials, then writes the report, optional charts, and the goodness-of-fit
// verdicts.  Batches are independent up to the comparator and run
// concurrently; a statistical degeneracy in any batch aborts the whole run.
func (r *Run) Execute(ctx context.Context) error {
	results := make([]*batchResult, len(r.groups))

	g, gctx := errgroup.WithContext(ctx)
	for i, samples := range r.groups {
		i, samples := i, samples
		g.Go(func() error {
			dist, err := stat.Fit(samples)
			if err != nil {
				return fmt.Errorf("group %d: %w", i+1, err)
			}
			model := stat.BuildModel(samples, dist, r.cfg.Interval)

			// each batch draws from its own source so concurrent trials
			// stay reproducible under a fixed seed
			deq := stat.NewDequantizer(r.cfg.Interval, rng.NewUniformRNG(r.cfg.Seed+int64(i)))
			eval := stat.NewNormalityEvaluator(r.cfg.Trials, deq, r.normality)

			results[i] = &batchResult{
				samples: samples,
				dist:    dist,
				model:   model,
				pvalues: eval.Evaluate(gctx, samples, dist),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	rep := reporter{w: r.out, showCombined: r.cfg.ShowCombined}
	for i, res := range results {
		rep.batch(i+1, res)
	}

	if r.cfg.ChartPath != "" {
		for i, res := range results {
			points := chartPoints(res.model, r.cfg.ChartStep)
			if err := r.chart.Render(ctx, points, chartFile(r.cfg.ChartPath, i+1, len(results))); err != nil {
				return fmt.Errorf("chart for group %d: %w", i+1, err)
			}
		}
	}

	comparator := stat.NewComparator(r.fit)
	training := results[0].model
	if len(results) == 1 {
		v, err := comparator.Compare(ctx, training, training)
		rep.verdict(1, 1, v, err)
		return nil
	}
	for i := 1; i < len(results); i++ {
		v, err := comparator.Compare(ctx, training, results[i].model)
		rep.verdict(1, i+1, v, err)
	}
	return nil
}

func chartPoints(m *stat.Model, step float64) []oracle.ChartPoint {
	table := m.ChartPoints(step)
	out := make([]oracle.ChartPoint, len(table))
	for i, pt := range table {
		out[i] = oracle.ChartPoint{Frequency: pt.Frequency, Percent: pt.Percent}
	}
	return out
}

// chartFile derives a per-batch chart path, e.g. chart.png -> chart-2.png
func chartFile(path string, batch, total int) string {
	if total == 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), batch, ext)
}
