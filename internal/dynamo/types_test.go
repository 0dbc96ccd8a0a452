package dynamo

import (
	"errors"
	"math"
	"testing"
)

func TestState_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		state State
		valid bool
	}{
		{"empty", State{}, true},
		{"normal", State{1.0, 2.0, 3.0}, true},
		{"with NaN", State{1.0, math.NaN()}, false},
		{"with +Inf", State{math.Inf(1)}, false},
		{"with -Inf", State{1.0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestState_Clone(t *testing.T) {
	s := State{1, 2}
	c := s.Clone()
	c[0] = 99
	if s[0] != 1 {
		t.Error("Clone did not create independent copy")
	}
}

func TestTrajectory(t *testing.T) {
	backing := []float64{10, 11, 12.5}
	tr := NewTrajectory(backing)

	if tr.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tr.Len())
	}
	if tr.Initial() != 10 || tr.Final() != 12.5 {
		t.Errorf("Initial/Final = %v/%v, want 10/12.5", tr.Initial(), tr.Final())
	}

	vals := tr.Values()
	vals[0] = -1
	if tr.At(0) != 10 {
		t.Error("Values() leaked the backing slice")
	}

	var empty Trajectory
	if empty.Final() != 0 || empty.Initial() != 0 {
		t.Error("empty trajectory should report zero Initial/Final")
	}
}

func TestTrajectory_Equal(t *testing.T) {
	a := NewTrajectory([]float64{1, math.NaN()})
	b := NewTrajectory([]float64{1, math.NaN()})
	if !a.Equal(b) {
		t.Error("identical NaN payloads should compare equal bitwise")
	}
	if a.Equal(NewTrajectory([]float64{1})) {
		t.Error("different lengths compared equal")
	}
	if NewTrajectory([]float64{0}).Equal(NewTrajectory([]float64{math.Copysign(0, -1)})) {
		t.Error("+0 and -0 differ bitwise")
	}
}

func TestSimulationError(t *testing.T) {
	err := &SimulationError{Step: 150, Time: 1.5, Wrapped: ErrUnstable}
	want := "step 150 (t=1.5000): " + ErrUnstable.Error()
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrUnstable) {
		t.Error("SimulationError should unwrap to ErrUnstable")
	}
}
