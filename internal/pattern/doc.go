// Package pattern implements the geometric distortions and point coloring
// that give each preset its visual signature.
//
// A [Kind] selects one [Pattern], which pairs a coordinate transform with
// an appearance function:
//
//   - standard, star: closed-form polar distortions
//   - aurora: flowing horizontal waves
//   - fractal: Mandelbrot escape-driven displacement
//   - quantum: interference waves with rare tunneling jumps
//   - lorenz, rossler: short Euler runs of the 3-D flows, projected back
//   - henon, ikeda: a few iterations of the classical 2-D maps
//
// Embedded simulations are re-seeded from the incoming point on every
// call, so patterns carry no state between frames. Randomness is drawn
// only from the [Rand] passed in.
package pattern
