package metrics

import (
	"github.com/san-kum/tumorsim/internal/dynamo"
)

// WithinCapacity is the fraction of samples with 0 <= V <= K·(1+tolerance).
type WithinCapacity struct {
	name       string
	upper      float64
	violations int
	samples    int
}

func NewWithinCapacity(capacity, tolerance float64) *WithinCapacity {
	return &WithinCapacity{
		name:  "within_capacity",
		upper: capacity * (1 + tolerance),
	}
}

func (w *WithinCapacity) Name() string {
	return w.name
}

func (w *WithinCapacity) Observe(x dynamo.State, u dynamo.Control, t float64) {
	w.samples++
	// Written so NaN counts as a violation.
	if !(x[0] >= 0 && x[0] <= w.upper) {
		w.violations++
	}
}

func (w *WithinCapacity) Value() float64 {
	if w.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(w.violations)/float64(w.samples)
}

func (w *WithinCapacity) Reset() {
	w.violations = 0
	w.samples = 0
}
