package metrics

import (
	"math"

	"github.com/san-kum/tumorsim/internal/dynamo"
)

// Final keeps the last observed value of component 0.
type Final struct {
	name  string
	value float64
	seen  bool
}

func NewFinal() *Final {
	return &Final{name: "final"}
}

func (f *Final) Name() string { return f.name }

func (f *Final) Observe(x dynamo.State, u dynamo.Control, t float64) {
	f.value = x[0]
	f.seen = true
}

func (f *Final) Value() float64 {
	if !f.seen {
		return math.NaN()
	}
	return f.value
}

func (f *Final) Reset() {
	f.value = 0
	f.seen = false
}

// Peak keeps the largest observed value of component 0.
type Peak struct {
	name string
	max  float64
}

func NewPeak() *Peak {
	return &Peak{name: "peak", max: math.Inf(-1)}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(x dynamo.State, u dynamo.Control, t float64) {
	if x[0] > p.max {
		p.max = x[0]
	}
}

func (p *Peak) Value() float64 { return p.max }

func (p *Peak) Reset() { p.max = math.Inf(-1) }
