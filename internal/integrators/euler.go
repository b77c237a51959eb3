package integrators

import "github.com/san-kum/attractor/internal/dynamo"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamo.System, x dynamo.State, t float64, dt float64) dynamo.State {
	dx := dyn.Derive(x, t)
	result := make(dynamo.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}

// Integrate advances x by n fixed steps of size dt.
func Integrate(integ dynamo.Integrator, dyn dynamo.System, x dynamo.State, dt float64, n int) dynamo.State {
	t := 0.0
	for i := 0; i < n; i++ {
		x = integ.Step(dyn, x, t, dt)
		t += dt
	}
	return x
}
