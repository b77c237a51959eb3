// Package physics provides the classical dynamical systems that pattern
// transforms simulate on top of the base attractor.
//
// Continuous systems implement [dynamo.System] and are advanced with an
// [dynamo.Integrator]; discrete maps implement [dynamo.Map]:
//
//   - [Lorenz]: butterfly attractor (σ=10, ρ=28, β=8/3)
//   - [Rossler]: spiral attractor (a=b=0.2, c=5.7)
//   - [Henon]: quadratic horseshoe map (a=1.4, b=0.3)
//   - [Ikeda]: optical-cavity map (u=0.918, t=0.4)
//
// All models implement [dynamo.Configurable] for runtime parameter
// adjustment.
package physics
