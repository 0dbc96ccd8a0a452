package sim

import "github.com/san-kum/tumorsim/internal/dynamo"

type Config struct {
	// ValidateState stops the run with ErrUnstable once a state turns NaN/Inf.
	ValidateState bool
}

type Result struct {
	States     []dynamo.State
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
}

// Component extracts state component i of every recorded state.
func (r *Result) Component(i int) dynamo.Trajectory {
	values := make([]float64, len(r.States))
	for j, s := range r.States {
		values[j] = s[i]
	}
	return dynamo.NewTrajectory(values)
}
