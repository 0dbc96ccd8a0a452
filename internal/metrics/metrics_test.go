package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/tumorsim/internal/dynamo"
)

func observeAll(m dynamo.Metric, values, times []float64) {
	for i, v := range values {
		m.Observe(dynamo.State{v}, nil, times[i])
	}
}

func TestFinalAndPeak(t *testing.T) {
	values := []float64{10, 40, 35}
	times := []float64{0, 1, 2}

	f := NewFinal()
	if !math.IsNaN(f.Value()) {
		t.Error("expected NaN before any observation")
	}
	observeAll(f, values, times)
	if f.Value() != 35 {
		t.Errorf("final = %v, want 35", f.Value())
	}

	p := NewPeak()
	observeAll(p, values, times)
	if p.Value() != 40 {
		t.Errorf("peak = %v, want 40", p.Value())
	}

	f.Reset()
	p.Reset()
	if !math.IsNaN(f.Value()) || !math.IsInf(p.Value(), -1) {
		t.Error("Reset did not clear state")
	}
}

func TestSaturationTime(t *testing.T) {
	s := NewSaturationTime(1000, 0.95)
	if s.Name() != "saturation_time" {
		t.Errorf("unexpected name %q", s.Name())
	}

	observeAll(s, []float64{10, 500, 949, 951, 990}, []float64{0, 1, 2, 3, 4})
	if s.Value() != 3 {
		t.Errorf("saturation time = %v, want 3", s.Value())
	}

	s.Reset()
	observeAll(s, []float64{10, 20}, []float64{0, 1})
	if !math.IsNaN(s.Value()) {
		t.Errorf("expected NaN when threshold never reached, got %v", s.Value())
	}
}

func TestWithinCapacity(t *testing.T) {
	w := NewWithinCapacity(100, 1e-9)
	if w.Value() != 1.0 {
		t.Error("expected 1.0 with no samples")
	}

	observeAll(w, []float64{10, 100, 150, -1, math.NaN()}, []float64{0, 1, 2, 3, 4})
	if got := w.Value(); math.Abs(got-0.4) > 1e-12 {
		t.Errorf("within_capacity = %v, want 0.4", got)
	}

	w.Reset()
	if w.Value() != 1.0 {
		t.Error("expected 1.0 after reset")
	}
}
