package metrics

import (
	"math"

	"github.com/san-kum/tumorsim/internal/dynamo"
)

// SaturationTime records the first time the volume reaches fraction·K.
// It reports NaN if the threshold is never reached.
type SaturationTime struct {
	name      string
	threshold float64
	hit       float64
}

func NewSaturationTime(capacity, fraction float64) *SaturationTime {
	return &SaturationTime{
		name:      "saturation_time",
		threshold: capacity * fraction,
		hit:       math.NaN(),
	}
}

func (s *SaturationTime) Name() string { return s.name }

func (s *SaturationTime) Observe(x dynamo.State, u dynamo.Control, t float64) {
	if math.IsNaN(s.hit) && x[0] >= s.threshold {
		s.hit = t
	}
}

func (s *SaturationTime) Value() float64 { return s.hit }

func (s *SaturationTime) Reset() { s.hit = math.NaN() }
