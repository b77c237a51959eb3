// Package analysis characterises the attractors behind the presets.
//
//   - [MapLyapunov]: largest Lyapunov exponent of a discrete map
//   - [LyapunovExponent]: the same for a continuous flow
//   - [Survey]: exponent, extent and screen coverage of every preset,
//     computed in parallel
//   - [BifurcationDiagram]: coefficient sweep of a map
//
// # Chaos Detection
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := analysis.MapLyapunov(attractor.NewClifford(p), dynamo.Point{}, 1000, 20000, 1e-8)
//	if lambda > 0 {
//	    // orbit is chaotic
//	}
package analysis
