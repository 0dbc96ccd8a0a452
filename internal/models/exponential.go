package models

import (
	"fmt"
	"math"

	"github.com/san-kum/tumorsim/internal/dynamo"
)

// Exponential is unbounded growth, dV/dt = r·V. It is the K→∞ limit of
// Logistic and has a closed form, which makes it a useful reference.
type Exponential struct {
	R float64
}

func NewExponential(r float64) *Exponential { return &Exponential{R: r} }

func (e *Exponential) StateDim() int   { return 1 }
func (e *Exponential) ControlDim() int { return 0 }

func (e *Exponential) Derive(x dynamo.State, _ dynamo.Control, _ float64) dynamo.State {
	return dynamo.State{e.R * x[0]}
}

// Solution returns the exact value v0·e^(r·t).
func (e *Exponential) Solution(v0, t float64) float64 {
	return v0 * math.Exp(e.R*t)
}

func (e *Exponential) GetParams() map[string]float64 {
	return map[string]float64{"r": e.R}
}

func (e *Exponential) SetParam(name string, value float64) error {
	if name != "r" {
		return fmt.Errorf("%w: unknown exponential parameter %q", dynamo.ErrParameterBounds, name)
	}
	e.R = value
	return nil
}
