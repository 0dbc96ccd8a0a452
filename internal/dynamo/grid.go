package dynamo

import (
	"fmt"
	"math"
)

// TimeGrid is an ordered, strictly increasing sequence of time points.
// The zero value holds no points and is rejected by consumers.
type TimeGrid struct {
	points []float64
}

// NewTimeGrid builds a grid from explicit points. The slice is copied.
func NewTimeGrid(points []float64) (TimeGrid, error) {
	if len(points) < 2 {
		return TimeGrid{}, fmt.Errorf("%w: got %d", ErrDegenerateGrid, len(points))
	}
	for i, p := range points {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return TimeGrid{}, fmt.Errorf("%w: point %d is %v", ErrInvalidGrid, i, p)
		}
		if i > 0 && p <= points[i-1] {
			return TimeGrid{}, fmt.Errorf("%w: t[%d]=%v <= t[%d]=%v", ErrInvalidGrid, i, p, i-1, points[i-1])
		}
	}
	c := make([]float64, len(points))
	copy(c, points)
	return TimeGrid{points: c}, nil
}

// UniformGrid returns start, start+step, ... up to and including end.
// Points are computed as start + i*step rather than by accumulation.
func UniformGrid(start, end, step float64) (TimeGrid, error) {
	for _, v := range []float64{start, end, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return TimeGrid{}, fmt.Errorf("%w: start=%v end=%v step=%v", ErrInvalidGrid, start, end, step)
		}
	}
	if step <= 0 {
		return TimeGrid{}, fmt.Errorf("%w: step must be positive, got %v", ErrInvalidGrid, step)
	}
	if end <= start {
		return TimeGrid{}, fmt.Errorf("%w: end %v must exceed start %v", ErrDegenerateGrid, end, start)
	}

	n := int(math.Round((end-start)/step)) + 1
	if n < 2 {
		return TimeGrid{}, fmt.Errorf("%w: step %v spans [%v, %v] in fewer than two points", ErrDegenerateGrid, step, start, end)
	}

	points := make([]float64, n)
	for i := range points {
		points[i] = start + float64(i)*step
	}
	return TimeGrid{points: points}, nil
}

func (g TimeGrid) Len() int { return len(g.points) }

func (g TimeGrid) At(i int) float64 { return g.points[i] }

// Step returns t[i] - t[i-1] for i >= 1.
func (g TimeGrid) Step(i int) float64 { return g.points[i] - g.points[i-1] }

func (g TimeGrid) Start() float64 { return g.points[0] }

func (g TimeGrid) End() float64 { return g.points[len(g.points)-1] }

// Points returns a copy of the grid's time points.
func (g TimeGrid) Points() []float64 {
	c := make([]float64, len(g.points))
	copy(c, g.points)
	return c
}

// Valid reports whether g was produced by one of the constructors.
func (g TimeGrid) Valid() bool { return len(g.points) >= 2 }
