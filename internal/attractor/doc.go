// Package attractor implements the base chaotic map and its time-varying
// parameter modulation.
//
// The base map is
//
//	x' = sin(a·y) + c·cos(a·x)
//	y' = sin(b·x) + d·cos(b·y)
//
// [Modulate] derives the effective coefficients for a frame from the
// preset's base coefficients and the animation phase, so the attractor
// drifts continuously without ever settling on a static shape.
package attractor
