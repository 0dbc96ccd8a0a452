package experiment

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/tumorsim/internal/dynamo"
	"github.com/san-kum/tumorsim/internal/growth"
)

var (
	ErrEmptySweep    = errors.New("experiment: sweep needs at least one growth rate")
	ErrDuplicateRate = errors.New("experiment: duplicate growth rate in sweep")
)

// Run is one integrated parameter set.
type Run struct {
	Rate       float64
	Trajectory dynamo.Trajectory
	Metrics    map[string]float64
}

func (r Run) Final() float64 { return r.Trajectory.Final() }

// RunFunc integrates a single parameter set.
type RunFunc func(ctx context.Context, p growth.Params, grid dynamo.TimeGrid) (Run, error)

// SweepResult maps each swept growth rate to its run, in input order.
type SweepResult struct {
	Runs []Run
}

func (s *SweepResult) Len() int { return len(s.Runs) }

func (s *SweepResult) Rates() []float64 {
	rates := make([]float64, len(s.Runs))
	for i, r := range s.Runs {
		rates[i] = r.Rate
	}
	return rates
}

func (s *SweepResult) Finals() []float64 {
	finals := make([]float64, len(s.Runs))
	for i, r := range s.Runs {
		finals[i] = r.Final()
	}
	return finals
}

func (s *SweepResult) Lookup(rate float64) (Run, bool) {
	for _, r := range s.Runs {
		if r.Rate == rate {
			return r, true
		}
	}
	return Run{}, false
}

type sweepOptions struct {
	parallelism int
	runner      RunFunc
}

type SweepOption func(*sweepOptions)

// WithParallelism bounds the number of concurrent integrations. Values below
// one mean sequential.
func WithParallelism(n int) SweepOption {
	return func(o *sweepOptions) {
		if n < 1 {
			n = 1
		}
		o.parallelism = n
	}
}

func WithRunner(fn RunFunc) SweepOption {
	return func(o *sweepOptions) { o.runner = fn }
}

// Sweep integrates base once per rate, replacing only the growth rate.
func Sweep(ctx context.Context, base growth.Params, rates []float64, grid dynamo.TimeGrid, opts ...SweepOption) (*SweepResult, error) {
	if len(rates) == 0 {
		return nil, ErrEmptySweep
	}
	seen := make(map[float64]bool, len(rates))
	for _, r := range rates {
		if seen[r] {
			return nil, fmt.Errorf("%w: %g", ErrDuplicateRate, r)
		}
		seen[r] = true
	}

	o := sweepOptions{parallelism: 1, runner: logisticRunner}
	for _, opt := range opts {
		opt(&o)
	}

	runs := make([]Run, len(rates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)

	for i, rate := range rates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("%w: %v", dynamo.ErrContextCanceled, err)
			}
			run, err := o.runner(gctx, base.WithRate(rate), grid)
			if err != nil {
				return fmt.Errorf("sweep r=%g: %w", rate, err)
			}
			runs[i] = run
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &SweepResult{Runs: runs}, nil
}

func logisticRunner(ctx context.Context, p growth.Params, grid dynamo.TimeGrid) (Run, error) {
	tr, m, err := growth.Run(ctx, p, grid, growth.Options{})
	if err != nil {
		return Run{}, err
	}
	return Run{Rate: p.R, Trajectory: tr, Metrics: m}, nil
}
