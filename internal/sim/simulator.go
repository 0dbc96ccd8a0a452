package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/tumorsim/internal/dynamo"
)

type Simulator struct {
	dyn        dynamo.System
	integrator dynamo.Integrator
	metrics    []dynamo.Metric
	observers  []dynamo.Observer
}

func New(dyn dynamo.System, integrator dynamo.Integrator) *Simulator {
	return &Simulator{
		dyn:        dyn,
		integrator: integrator,
		metrics:    make([]dynamo.Metric, 0),
		observers:  make([]dynamo.Observer, 0),
	}
}

func (s *Simulator) AddMetric(m dynamo.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

// Run records x0 at grid.At(0) and then takes one step per remaining grid
// point. The step size is recomputed from the grid at every step, so
// non-uniform grids are integrated correctly.
func (s *Simulator) Run(ctx context.Context, x0 dynamo.State, grid dynamo.TimeGrid, cfg Config) (*Result, error) {
	if err := s.validate(x0, grid); err != nil {
		return nil, err
	}

	n := grid.Len()
	result := &Result{
		States:  make([]dynamo.State, 0, n),
		Times:   make([]float64, 0, n),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	// The systems driven here take no control input.
	var u dynamo.Control

	x := x0.Clone()
	s.record(result, x, u, grid.At(0))

	for i := 1; i < n; i++ {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("%w: %v", dynamo.ErrContextCanceled, ctx.Err())
		default:
		}

		t := grid.At(i - 1)
		newX := s.integrator.Step(s.dyn, x, u, t, grid.Step(i))

		if cfg.ValidateState && !newX.IsValid() {
			return result, &dynamo.SimulationError{
				Step:    i,
				Time:    grid.At(i),
				State:   newX,
				Wrapped: dynamo.ErrUnstable,
			}
		}

		x = newX
		result.StepsTaken++
		s.record(result, x, u, grid.At(i))
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) record(result *Result, x dynamo.State, u dynamo.Control, t float64) {
	for _, m := range s.metrics {
		m.Observe(x, u, t)
	}
	for _, obs := range s.observers {
		obs.OnStep(x, u, t)
	}
	result.States = append(result.States, x.Clone())
	result.Times = append(result.Times, t)
}

func (s *Simulator) validate(x0 dynamo.State, grid dynamo.TimeGrid) error {
	if !grid.Valid() {
		return fmt.Errorf("%w: got %d points", dynamo.ErrDegenerateGrid, grid.Len())
	}
	if len(x0) != s.dyn.StateDim() {
		return fmt.Errorf("%w: state has %d components, system expects %d", dynamo.ErrDimensionMismatch, len(x0), s.dyn.StateDim())
	}
	return nil
}
