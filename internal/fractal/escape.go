// Package fractal computes Mandelbrot escape iterations with smooth coloring.
package fractal

import "math"

// Bailout is the squared magnitude beyond which an orbit has escaped.
const Bailout = 4.0

// Result is the outcome of an escape iteration. Value is the smooth
// iteration count normalized by the iteration bound; zero when the orbit
// stayed bounded.
type Result struct {
	Escaped bool
	Value   float64
}

// Escape iterates z ← z² + c from z = 0 for at most maxIter steps.
func Escape(cx, cy float64, maxIter int) Result {
	if maxIter <= 0 {
		return Result{}
	}

	var x, y, x2, y2 float64
	n := 0
	for x2+y2 <= Bailout && n < maxIter {
		y = 2*x*y + cy
		x = x2 - y2 + cx
		x2 = x * x
		y2 = y * y
		n++
	}

	if n == maxIter {
		return Result{}
	}

	smooth := float64(n) + 1 - math.Log(math.Log(math.Sqrt(x2+y2)))/math.Ln2
	return Result{Escaped: true, Value: smooth / float64(maxIter)}
}
