package dynamo

import "math"

// Trajectory holds one value per time-grid point. It is written once while
// stepping and is read-only afterwards.
type Trajectory struct {
	values []float64
}

// NewTrajectory takes ownership of values; callers must not keep writing to it.
func NewTrajectory(values []float64) Trajectory {
	return Trajectory{values: values}
}

func (tr Trajectory) Len() int { return len(tr.values) }

func (tr Trajectory) At(i int) float64 { return tr.values[i] }

// Initial returns the first value, or 0 for an empty trajectory.
func (tr Trajectory) Initial() float64 {
	if len(tr.values) == 0 {
		return 0
	}
	return tr.values[0]
}

// Final returns the last value, or 0 for an empty trajectory.
func (tr Trajectory) Final() float64 {
	if len(tr.values) == 0 {
		return 0
	}
	return tr.values[len(tr.values)-1]
}

// Values returns a copy of the trajectory's values.
func (tr Trajectory) Values() []float64 {
	c := make([]float64, len(tr.values))
	copy(c, tr.values)
	return c
}

// Equal reports bit-for-bit equality of two trajectories.
func (tr Trajectory) Equal(other Trajectory) bool {
	if len(tr.values) != len(other.values) {
		return false
	}
	for i := range tr.values {
		if math.Float64bits(tr.values[i]) != math.Float64bits(other.values[i]) {
			return false
		}
	}
	return true
}
