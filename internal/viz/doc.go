// Package viz is the live terminal host for the attractor.
//
// A Bubble Tea [Model] ticks a render.Compositor once per frame and
// rasterises its canvas into terminal cells, either as truecolor
// half-blocks or as a monochrome braille [Canvas]. A sidebar shows the
// modulated coefficients and an asciigraph drift plot.
//
// # Key Bindings
//
//	Click/Space/Enter/N - Next pattern
//	C                   - Toggle color / greyscale
//	B                   - Toggle braille view
//	T                   - Cycle color themes
//	?                   - Show help overlay
//	Q/Esc               - Quit
package viz
