package experiment

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/tumorsim/internal/growth"
)

func TestRegistryLookups(t *testing.T) {
	r := NewRegistry()

	if _, err := r.GetModel("logistic", map[string]float64{"r": 0.2, "k": 1000}); err != nil {
		t.Errorf("logistic: %v", err)
	}
	if _, err := r.GetModel("pendulum", nil); err == nil {
		t.Error("expected error for unknown model")
	}
	if _, err := r.GetIntegrator("euler"); err != nil {
		t.Errorf("euler: %v", err)
	}
	if _, err := r.GetIntegrator("rk4"); err == nil {
		t.Error("expected error for unknown integrator")
	}

	models := r.ListModels()
	if len(models) != 2 || models[0] != "exponential" || models[1] != "logistic" {
		t.Errorf("ListModels() = %v", models)
	}
}

func TestRegistryDefaultMetrics(t *testing.T) {
	ms := NewRegistry().DefaultMetrics(1000)
	names := map[string]bool{}
	for _, m := range ms {
		names[m.Name()] = true
	}
	for _, want := range []string{"final", "peak", "saturation_time", "within_capacity"} {
		if !names[want] {
			t.Errorf("missing default metric %q", want)
		}
	}
}

func TestRegistryRunner(t *testing.T) {
	r := NewRegistry()
	grid := referenceGrid(t)

	logistic, err := r.Runner("logistic", "euler", true)
	if err != nil {
		t.Fatal(err)
	}
	run, err := logistic(context.Background(), referenceParams, grid)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := growth.Integrate(referenceParams, grid)
	if !run.Trajectory.Equal(want) {
		t.Error("logistic runner disagrees with growth.Integrate")
	}
	if run.Metrics["final"] != run.Final() {
		t.Errorf("final metric %v != trajectory final %v", run.Metrics["final"], run.Final())
	}
	if run.Metrics["within_capacity"] != 1 {
		t.Errorf("within_capacity = %v, want 1", run.Metrics["within_capacity"])
	}
	if st := run.Metrics["saturation_time"]; math.IsNaN(st) || st <= 0 || st >= 100 {
		t.Errorf("saturation_time = %v, want a time inside the horizon", st)
	}

	exponential, err := r.Runner("exponential", "euler", false)
	if err != nil {
		t.Fatal(err)
	}
	run, err = exponential(context.Background(), growth.Params{R: 0.2, K: 1000, V0: 10}, grid)
	if err != nil {
		t.Fatal(err)
	}
	// 10 * 1.02^1000 is far above K.
	if run.Final() < 1e6 {
		t.Errorf("exponential final = %v, expected unbounded growth", run.Final())
	}
	if run.Metrics["within_capacity"] >= 1 {
		t.Error("exponential run should leave capacity")
	}

	if _, err := r.Runner("logistic", "verlet", false); err == nil {
		t.Error("expected error for unknown integrator")
	}
}
