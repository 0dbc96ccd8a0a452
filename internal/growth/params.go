package growth

import (
	"fmt"
	"math"

	"github.com/san-kum/tumorsim/internal/dynamo"
)

// Params are the inputs of a single logistic run.
type Params struct {
	R  float64 // growth rate
	K  float64 // carrying capacity
	V0 float64 // initial volume
}

// WithRate returns a copy of p with the growth rate replaced.
func (p Params) WithRate(r float64) Params {
	p.R = r
	return p
}

// Validate checks the preconditions of Integrate.
func (p Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"r", p.R}, {"K", p.K}, {"V0", p.V0}} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is %v", dynamo.ErrParameterBounds, f.name, f.v)
		}
	}
	if p.K == 0 {
		return fmt.Errorf("%w: carrying capacity K must be non-zero", dynamo.ErrParameterBounds)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("r=%g K=%g V0=%g", p.R, p.K, p.V0)
}
