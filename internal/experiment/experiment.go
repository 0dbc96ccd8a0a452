package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/san-kum/tumorsim/internal/dynamo"
	"github.com/san-kum/tumorsim/internal/growth"
)

type Config struct {
	Model         string
	Integrator    string
	Params        growth.Params // Params.R is the baseline growth rate
	Grid          dynamo.TimeGrid
	SweepRates    []float64
	Parallelism   int
	ValidateState bool
}

// Outcome holds the three data products handed to reporting: the baseline
// trajectory on its grid, the sweep, and the (rate, final) pairs derived
// from the sweep.
type Outcome struct {
	Grid     dynamo.TimeGrid
	Params   growth.Params
	Baseline Run
	Sweep    *SweepResult
}

// Answer is the baseline's final value.
func (o *Outcome) Answer() float64 {
	return o.Baseline.Final()
}

type Experiment struct {
	cfg      Config
	registry *Registry
	logger   *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Experiment {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Model == "" {
		cfg.Model = "logistic"
	}
	if cfg.Integrator == "" {
		cfg.Integrator = "euler"
	}
	return &Experiment{
		cfg:      cfg,
		registry: NewRegistry(),
		logger:   logger,
	}
}

func (e *Experiment) Run(ctx context.Context) (*Outcome, error) {
	runner, err := e.registry.Runner(e.cfg.Model, e.cfg.Integrator, e.cfg.ValidateState)
	if err != nil {
		return nil, err
	}
	logged := e.logRuns(runner)

	baseline, err := logged(ctx, e.cfg.Params, e.cfg.Grid)
	if err != nil {
		return nil, fmt.Errorf("baseline: %w", err)
	}

	sweep, err := Sweep(ctx, e.cfg.Params, e.cfg.SweepRates, e.cfg.Grid,
		WithParallelism(e.cfg.Parallelism),
		WithRunner(logged),
	)
	if err != nil {
		return nil, err
	}

	return &Outcome{
		Grid:     e.cfg.Grid,
		Params:   e.cfg.Params,
		Baseline: baseline,
		Sweep:    sweep,
	}, nil
}

func (e *Experiment) logRuns(next RunFunc) RunFunc {
	return func(ctx context.Context, p growth.Params, grid dynamo.TimeGrid) (Run, error) {
		start := time.Now()
		run, err := next(ctx, p, grid)
		if err != nil {
			e.logger.Debug("run failed", "params", p.String(), "err", err)
			return run, err
		}
		e.logger.Debug("run complete",
			"model", e.cfg.Model,
			"r", p.R,
			"steps", run.Trajectory.Len()-1,
			"final", run.Final(),
			"elapsed", time.Since(start),
		)
		return run, nil
	}
}
