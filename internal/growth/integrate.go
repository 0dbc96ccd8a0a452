package growth

import (
	"context"

	"github.com/san-kum/tumorsim/internal/dynamo"
	"github.com/san-kum/tumorsim/internal/integrators"
	"github.com/san-kum/tumorsim/internal/models"
	"github.com/san-kum/tumorsim/internal/sim"
)

// Options tune a run beyond the bare integration.
type Options struct {
	// Metrics are observed at every grid point, initial value included.
	Metrics []dynamo.Metric
	// ValidateState turns NaN/Inf values into a *dynamo.SimulationError.
	ValidateState bool
}

// Integrate returns V at every point of grid, with V[0] = p.V0 and
//
//	V[i] = V[i-1] + dt_i · r·V[i-1]·(1 - V[i-1]/K),  dt_i = t_i - t_{i-1}
func Integrate(p Params, grid dynamo.TimeGrid) (dynamo.Trajectory, error) {
	tr, _, err := Run(context.Background(), p, grid, Options{})
	return tr, err
}

// Run is Integrate with cancellation, metrics and state validation.
func Run(ctx context.Context, p Params, grid dynamo.TimeGrid, opts Options) (dynamo.Trajectory, map[string]float64, error) {
	if err := p.Validate(); err != nil {
		return dynamo.Trajectory{}, nil, err
	}

	s := sim.New(models.NewLogistic(p.R, p.K), integrators.NewEuler())
	for _, m := range opts.Metrics {
		s.AddMetric(m)
	}

	result, err := s.Run(ctx, dynamo.State{p.V0}, grid, sim.Config{ValidateState: opts.ValidateState})
	if err != nil {
		return dynamo.Trajectory{}, nil, err
	}
	return result.Component(0), result.Metrics, nil
}
