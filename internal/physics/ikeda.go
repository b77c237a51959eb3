package physics

import (
	"math"

	"github.com/san-kum/attractor/internal/dynamo"
)

// Ikeda is the optical-cavity map with rotation t - 6/(1 + sqrt(1 + x² + y²)).
type Ikeda struct{ u, t float64 }

func NewIkeda() *Ikeda { return &Ikeda{0.918, 0.4} }

func (k *Ikeda) Next(p dynamo.Point) dynamo.Point {
	r := math.Sqrt(1 + p.X*p.X + p.Y*p.Y)
	theta := k.t - 6/(1+r)
	sin, cos := math.Sincos(theta)
	return dynamo.Point{
		X: 1 + k.u*(p.X*cos-p.Y*sin),
		Y: k.u * (p.X*sin + p.Y*cos),
	}
}
func (k *Ikeda) GetParams() map[string]float64 {
	return map[string]float64{"u": k.u, "t": k.t}
}
func (k *Ikeda) SetParam(n string, v float64) {
	switch n {
	case "u":
		k.u = v
	case "t":
		k.t = v
	}
}
