package physics

import "github.com/san-kum/attractor/internal/dynamo"

// Henon is the quadratic map x' = 1 - a x² + y, y' = b x.
type Henon struct{ a, b float64 }

func NewHenon() *Henon { return &Henon{1.4, 0.3} }

func (h *Henon) Next(p dynamo.Point) dynamo.Point {
	return dynamo.Point{X: 1 - h.a*p.X*p.X + p.Y, Y: h.b * p.X}
}
func (h *Henon) GetParams() map[string]float64 {
	return map[string]float64{"a": h.a, "b": h.b}
}
func (h *Henon) SetParam(n string, v float64) {
	switch n {
	case "a":
		h.a = v
	case "b":
		h.b = v
	}
}
