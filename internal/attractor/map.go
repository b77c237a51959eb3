package attractor

import (
	"math"

	"github.com/san-kum/attractor/internal/dynamo"
)

// WarmUpIterations is the number of discarded steps before a trajectory
// is considered to lie on the attractor.
const WarmUpIterations = 1000

// Step advances the base map by one iteration.
func Step(p dynamo.Params, pt dynamo.Point) dynamo.Point {
	return dynamo.Point{
		X: math.Sin(p.A*pt.Y) + p.C*math.Cos(p.A*pt.X),
		Y: math.Sin(p.B*pt.X) + p.D*math.Cos(p.B*pt.Y),
	}
}

// WarmUp iterates from the origin and returns the last point.
func WarmUp(p dynamo.Params, iterations int) dynamo.Point {
	var pt dynamo.Point
	for i := 0; i < iterations; i++ {
		pt = Step(p, pt)
	}
	return pt
}

// Clifford adapts the base map to [dynamo.Map] with fixed coefficients.
type Clifford struct {
	Params dynamo.Params
}

func NewClifford(p dynamo.Params) *Clifford { return &Clifford{Params: p} }

func (c *Clifford) Next(pt dynamo.Point) dynamo.Point { return Step(c.Params, pt) }

func (c *Clifford) GetParams() map[string]float64 {
	return map[string]float64{"a": c.Params.A, "b": c.Params.B, "c": c.Params.C, "d": c.Params.D}
}

func (c *Clifford) SetParam(n string, v float64) {
	switch n {
	case "a":
		c.Params.A = v
	case "b":
		c.Params.B = v
	case "c":
		c.Params.C = v
	case "d":
		c.Params.D = v
	}
}
