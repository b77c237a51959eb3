// Package render composites attractor points onto a persistent, fading
// raster.
//
// A [Compositor] owns all per-process animation state (phase, base and
// effective parameters, preset cursor, name timer, color mode) and draws
// through the [Surface] interface. [Canvas] is the gg-backed raster used
// by every host.
//
// Each [Compositor.Frame] call:
//
//  1. advances the animation phase and the name timer, then re-derives
//     the effective map parameters
//  2. fades the previous frame toward black (and applies the vignette)
//  3. warms up the map and draws the point budget through the active
//     pattern's transform and appearance
//
// # Thread Safety
//
// A Compositor is NOT safe for concurrent use. Hosts drive it from a
// single goroutine; frame N's raster is the only input carried into
// frame N+1.
package render
