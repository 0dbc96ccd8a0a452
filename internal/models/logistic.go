package models

import (
	"fmt"

	"github.com/san-kum/tumorsim/internal/dynamo"
)

// Logistic implements bounded growth.
// State: [V]
// Equation:
//
//	dV/dt = r·V·(1 - V/K)
type Logistic struct {
	R float64 // growth rate
	K float64 // carrying capacity
}

func NewLogistic(r, k float64) *Logistic {
	return &Logistic{R: r, K: k}
}

func (l *Logistic) StateDim() int   { return 1 }
func (l *Logistic) ControlDim() int { return 0 }

// Derive evaluates (r·V)·(1 - V/K). The grouping is fixed so results match
// the reference run bit for bit.
func (l *Logistic) Derive(x dynamo.State, _ dynamo.Control, _ float64) dynamo.State {
	v := x[0]
	return dynamo.State{l.R * v * (1 - v/l.K)}
}

// GetParams implements dynamo.Configurable
func (l *Logistic) GetParams() map[string]float64 {
	return map[string]float64{"r": l.R, "k": l.K}
}

// SetParam implements dynamo.Configurable
func (l *Logistic) SetParam(name string, value float64) error {
	switch name {
	case "r":
		l.R = value
	case "k":
		if value == 0 {
			return fmt.Errorf("%w: k must be non-zero", dynamo.ErrParameterBounds)
		}
		l.K = value
	default:
		return fmt.Errorf("%w: unknown logistic parameter %q", dynamo.ErrParameterBounds, name)
	}
	return nil
}
