// Package growth integrates the logistic tumor-growth model
//
//	dV/dt = r·V·(1 - V/K)
//
// with the fixed-step explicit Euler method over a [dynamo.TimeGrid].
//
// [Integrate] is a pure function: every call allocates its own trajectory
// and reads only its arguments, so calls may run concurrently without
// synchronisation.
//
// # Invalid parameters
//
// Integrate fails fast. A zero or non-finite carrying capacity, or a
// non-finite growth rate or initial value, returns an error wrapping
// [dynamo.ErrParameterBounds] before any stepping happens. A grid with fewer
// than two points cannot be constructed and is rejected with
// [dynamo.ErrDegenerateGrid]. Values that overflow during stepping are left
// to IEEE arithmetic (see [Options] to turn them into errors).
package growth
