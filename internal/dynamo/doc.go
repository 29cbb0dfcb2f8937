// Package dynamo provides core primitives for dynamical systems.
//
// The package defines the fundamental interfaces and types for numerical
// exploration of ordinary differential equations (ODEs):
//
//   - [State]: vector representing system state
//   - [Params]: opaque parameter vector threaded through to the field
//   - [System]: interface for ODE systems (dX/dt = f(X, p, t))
//   - [VectorField]/[FieldSystem]: adapter for bare field functions
//   - [Integrator]: numerical integrator interface
//
// # Example
//
//	sys := physics.NewDuffing()
//	integ := integrators.NewRK4()
//	x := sys.DefaultState()
//	for t := 0.0; t < 10; t += 0.01 {
//	    x = integ.Step(sys, x, nil, t, 0.01)
//	}
//
// # Thread Safety
//
// Systems and integrators with scratch buffers are NOT thread-safe. Code
// that fans trajectories across [ParallelFor] must give each worker its
// own integrator instance.
package dynamo
