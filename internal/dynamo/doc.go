// Package dynamo provides core primitives shared by the attractor renderer.
//
// The package defines the fundamental types used across the pipeline:
//
//   - [Params]: coefficients of the base two-dimensional map
//   - [Point]: a raw attractor-space coordinate
//   - [State]: vector state for the auxiliary three-dimensional systems
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Map]: interface for discrete two-dimensional maps
//   - [Integrator]: numerical integrator interface
//
// # Example
//
//	dyn := physics.NewLorenz()
//	integ := integrators.NewEuler()
//	x := dynamo.State{0.1, 0.1, 0.1}
//	for i := 0; i < 10; i++ {
//	    x = integ.Step(dyn, x, 0, 0.005)
//	}
//
// # Thread Safety
//
// Every function in this package is pure. [ParallelFor] is used only by
// offline analysis; the frame loop itself is single-threaded.
package dynamo
