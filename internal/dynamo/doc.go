// Package dynamo provides core simulation primitives for one-dimensional
// growth models.
//
// The package defines the interfaces and value types shared by the
// integrator, the simulator and the reporting layer:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Integrator]: fixed-step numerical integrator interface
//   - [TimeGrid]: immutable, strictly increasing sequence of time points
//   - [Trajectory]: immutable sequence of values, one per grid point
//
// # Example
//
//	grid, _ := dynamo.UniformGrid(0, 100, 0.1)
//	traj, _ := growth.Integrate(growth.Params{R: 0.2, K: 1000, V0: 10}, grid)
//	fmt.Println(traj.Final())
//
// # Immutability
//
// TimeGrid and Trajectory keep their backing slices unexported; accessors
// that hand out slices always return copies. Both are safe to share between
// goroutines once built.
package dynamo
