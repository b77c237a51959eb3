package dynamo

import (
	"fmt"
	"math"
)

// Params holds the coefficients of the base map.
type Params struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
}

func (p Params) String() string {
	return fmt.Sprintf("a=%.3f b=%.3f c=%.3f d=%.3f", p.A, p.B, p.C, p.D)
}

// IsFinite reports whether every coefficient is a finite number.
func (p Params) IsFinite() bool {
	return finite(p.A) && finite(p.B) && finite(p.C) && finite(p.D)
}

// Point is a raw attractor-space coordinate.
type Point struct {
	X, Y float64
}

func (p Point) IsFinite() bool {
	return finite(p.X) && finite(p.Y)
}

// Polar returns the distance from the origin and the angle in (-π, π].
func (p Point) Polar() (dist, angle float64) {
	return math.Hypot(p.X, p.Y), math.Atan2(p.Y, p.X)
}

func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Lerp blends p toward q: w*p + (1-w)*q.
func (p Point) Lerp(q Point, w float64) Point {
	return Point{X: p.X*w + q.X*(1-w), Y: p.Y*w + q.Y*(1-w)}
}

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if !finite(v) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// System is a continuous-time system dX/dt = f(X, t).
type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

// Map is a discrete two-dimensional map.
type Map interface {
	Next(p Point) Point
}

type Integrator interface {
	Step(dyn System, x State, t float64, dt float64) State
}

type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
