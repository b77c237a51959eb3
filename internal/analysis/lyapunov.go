package analysis

import (
	"math"

	"github.com/san-kum/attractor/internal/dynamo"
)

// MapLyapunov estimates the largest Lyapunov exponent of a discrete map
// by following two orbits d0 apart and renormalising their separation
// after every iteration. The result is in nats per iteration; a positive
// value indicates chaos.
func MapLyapunov(m dynamo.Map, x0 dynamo.Point, transient, n int, d0 float64) float64 {
	if n <= 0 || d0 <= 0 {
		return 0
	}

	x := x0
	for i := 0; i < transient; i++ {
		x = m.Next(x)
	}
	xp := dynamo.Point{X: x.X + d0, Y: x.Y}

	sumLog := 0.0
	count := 0
	for i := 0; i < n; i++ {
		x = m.Next(x)
		xp = m.Next(xp)
		if !x.IsFinite() || !xp.IsFinite() {
			return math.NaN()
		}

		dx, dy := xp.X-x.X, xp.Y-x.Y
		sep := math.Hypot(dx, dy)
		if sep == 0 {
			// Orbits merged; re-seed the perturbation along x.
			xp = dynamo.Point{X: x.X + d0, Y: x.Y}
			continue
		}

		sumLog += math.Log(sep / d0)
		count++

		scale := d0 / sep
		xp = dynamo.Point{X: x.X + dx*scale, Y: x.Y + dy*scale}
	}

	if count == 0 {
		return 0
	}
	return sumLog / float64(count)
}

// LyapunovExponent estimates the largest Lyapunov exponent of a flow
// using the trajectory separation method, in nats per unit time.
//
// Algorithm:
// 1. Run two nearby trajectories
// 2. Measure their divergence over time
// 3. λ ≈ (1/t) * ln(|δx(t)/δx(0)|)
func LyapunovExponent(
	dyn dynamo.System,
	integ dynamo.Integrator,
	x0 dynamo.State,
	dt, duration float64,
	perturbation float64,
) float64 {
	if len(x0) == 0 || dt <= 0 || perturbation <= 0 {
		return 0
	}

	x := x0.Clone()
	xp := x0.Clone()
	xp[0] += perturbation
	d0 := perturbation

	t := 0.0
	sumLog := 0.0
	count := 0

	for t < duration {
		x = integ.Step(dyn, x, t, dt)
		xp = integ.Step(dyn, xp, t, dt)
		t += dt

		diff := make(dynamo.State, len(x))
		for i := range x {
			diff[i] = xp[i] - x[i]
		}
		sep := diff.Norm()

		if sep > 0 {
			sumLog += math.Log(sep / d0)
			count++

			// Renormalize every step so the log terms add up.
			scale := d0 / sep
			for i := range xp {
				xp[i] = x[i] + diff[i]*scale
			}
		}
	}

	if count == 0 {
		return 0
	}
	return sumLog / (float64(count) * dt)
}
