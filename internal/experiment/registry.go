package experiment

import (
	"context"
	"fmt"
	"sort"

	"github.com/san-kum/tumorsim/internal/dynamo"
	"github.com/san-kum/tumorsim/internal/growth"
	"github.com/san-kum/tumorsim/internal/integrators"
	"github.com/san-kum/tumorsim/internal/metrics"
	"github.com/san-kum/tumorsim/internal/models"
	"github.com/san-kum/tumorsim/internal/sim"
)

// SaturationFraction is the share of K at which saturation_time is recorded.
const SaturationFraction = 0.95

type Registry struct {
	models      map[string]func(map[string]float64) dynamo.System
	integrators map[string]func() dynamo.Integrator
}

func NewRegistry() *Registry {
	r := &Registry{
		models:      make(map[string]func(map[string]float64) dynamo.System),
		integrators: make(map[string]func() dynamo.Integrator),
	}

	r.models["logistic"] = func(p map[string]float64) dynamo.System { return models.NewLogistic(p["r"], p["k"]) }
	r.models["exponential"] = func(p map[string]float64) dynamo.System { return models.NewExponential(p["r"]) }

	r.integrators["euler"] = func() dynamo.Integrator { return integrators.NewEuler() }

	return r
}

func (r *Registry) GetModel(name string, params map[string]float64) (dynamo.System, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s (available: %v)", name, r.ListModels())
	}
	return fn(params), nil
}

func (r *Registry) GetIntegrator(name string) (dynamo.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s (available: %v)", name, r.ListIntegrators())
	}
	return fn(), nil
}

func (r *Registry) ListModels() []string {
	return sortedKeys(r.models)
}

func (r *Registry) ListIntegrators() []string {
	return sortedKeys(r.integrators)
}

// DefaultMetrics returns fresh metric instances; they must not be shared
// between concurrent runs.
func (r *Registry) DefaultMetrics(capacity float64) []dynamo.Metric {
	return []dynamo.Metric{
		metrics.NewFinal(),
		metrics.NewPeak(),
		metrics.NewSaturationTime(capacity, SaturationFraction),
		metrics.NewWithinCapacity(capacity, 1e-9),
	}
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Runner returns a RunFunc for the named model and integrator. Every call of
// the returned function builds its own system, integrator and metrics.
func (r *Registry) Runner(model, integrator string, validate bool) (RunFunc, error) {
	if _, ok := r.models[model]; !ok {
		return nil, fmt.Errorf("unknown model: %s (available: %v)", model, r.ListModels())
	}
	if _, ok := r.integrators[integrator]; !ok {
		return nil, fmt.Errorf("unknown integrator: %s (available: %v)", integrator, r.ListIntegrators())
	}

	if model == "logistic" && integrator == "euler" {
		return func(ctx context.Context, p growth.Params, grid dynamo.TimeGrid) (Run, error) {
			tr, m, err := growth.Run(ctx, p, grid, growth.Options{
				Metrics:       r.DefaultMetrics(p.K),
				ValidateState: validate,
			})
			if err != nil {
				return Run{}, err
			}
			return Run{Rate: p.R, Trajectory: tr, Metrics: m}, nil
		}, nil
	}

	return func(ctx context.Context, p growth.Params, grid dynamo.TimeGrid) (Run, error) {
		if err := p.Validate(); err != nil {
			return Run{}, err
		}
		dyn, err := r.GetModel(model, map[string]float64{"r": p.R, "k": p.K})
		if err != nil {
			return Run{}, err
		}
		integ, err := r.GetIntegrator(integrator)
		if err != nil {
			return Run{}, err
		}

		s := sim.New(dyn, integ)
		for _, m := range r.DefaultMetrics(p.K) {
			s.AddMetric(m)
		}
		result, err := s.Run(ctx, dynamo.State{p.V0}, grid, sim.Config{ValidateState: validate})
		if err != nil {
			return Run{}, err
		}
		return Run{Rate: p.R, Trajectory: result.Component(0), Metrics: result.Metrics}, nil
	}, nil
}
