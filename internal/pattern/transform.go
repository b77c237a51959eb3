package pattern

import (
	"math"

	"github.com/san-kum/attractor/internal/dynamo"
	mandel "github.com/san-kum/attractor/internal/fractal"
	"github.com/san-kum/attractor/internal/integrators"
	"github.com/san-kum/attractor/internal/physics"
)

const (
	// FractalIterations bounds the escape iteration of the fractal pattern.
	FractalIterations = 15

	tunnelChance = 0.002
	flashChance  = 0.003
)

type standard struct{}

func (standard) Kind() Kind { return Standard }

func (standard) Transform(pt dynamo.Point, _ float64, _ Rand) dynamo.Point { return pt }

type star struct{}

func (star) Kind() Kind { return Star }

func (star) Transform(pt dynamo.Point, phase float64, _ Rand) dynamo.Point {
	dist, angle := pt.Polar()
	spike := 0.2 * math.Sin(angle*5+phase*0.3)
	r := dist * (1 + spike)
	return dynamo.Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
}

type aurora struct{}

func (aurora) Kind() Kind { return Aurora }

func (aurora) Transform(pt dynamo.Point, phase float64, _ Rand) dynamo.Point {
	wave := 0.2 * math.Sin(pt.Y*3+phase*0.5)
	stretch := 1.1 + math.Sin(pt.X*2+phase*0.3)*0.1
	return dynamo.Point{X: pt.X + wave, Y: pt.Y * stretch}
}

type fractal struct{}

func (fractal) Kind() Kind { return Fractal }

func (fractal) Transform(pt dynamo.Point, phase float64, _ Rand) dynamo.Point {
	_, angle := pt.Polar()

	zoom := 0.9 + math.Sin(phase*0.08)*0.1
	offX := math.Sin(phase*0.04) * 0.3
	offY := math.Cos(phase*0.05) * 0.2

	res := mandel.Escape(pt.X*zoom+offX, pt.Y*zoom+offY, FractalIterations)
	if !res.Escaped {
		return pt.Scale(0.99)
	}

	influence := 0.15 * math.Sin(phase*0.15+res.Value*math.Pi*6)
	return dynamo.Point{
		X: pt.X + influence*math.Cos(angle*2),
		Y: pt.Y + influence*math.Sin(angle*2),
	}
}

type quantum struct{}

func (quantum) Kind() Kind { return Quantum }

func (quantum) Transform(pt dynamo.Point, phase float64, rng Rand) dynamo.Point {
	dist, angle := pt.Polar()

	wave1 := math.Sin(dist*4-phase*0.3) * 0.05
	wave2 := math.Cos(angle*3+phase*0.2) * 0.05
	wave3 := math.Sin(pt.X*2-pt.Y*2+phase*0.25) * 0.07
	interference := wave1 + wave2 + wave3

	out := dynamo.Point{
		X: pt.X + interference*math.Cos(angle),
		Y: pt.Y + interference*math.Sin(angle),
	}

	if rng != nil && rng.Float64() < tunnelChance {
		jump := 0.1 + rng.Float64()*0.2
		dir := rng.Float64() * 2 * math.Pi
		out.X += math.Cos(dir) * jump
		out.Y += math.Sin(dir) * jump
	}
	return out
}

// flow runs a short explicit-Euler simulation of a 3-D system seeded from
// the incoming point.
type flow struct {
	dyn   dynamo.System
	integ dynamo.Integrator
	dt    float64
	steps int
}

func (f flow) run(pt dynamo.Point) dynamo.State {
	seed := dynamo.State{pt.X * 0.1, pt.Y * 0.1, 0.1}
	return integrators.Integrate(f.integ, f.dyn, seed, f.dt, f.steps)
}

type lorenz struct{ flow }

func newLorenz() lorenz {
	return lorenz{flow{dyn: physics.NewLorenz(), integ: integrators.NewEuler(), dt: 0.005, steps: 10}}
}

func (lorenz) Kind() Kind { return Lorenz }

func (l lorenz) Transform(pt dynamo.Point, phase float64, _ Rand) dynamo.Point {
	s := l.run(pt)

	sin, cos := math.Sincos(phase * 0.1)
	proj := dynamo.Point{X: s[0]*cos + s[2]*sin, Y: s[1]}
	return proj.Lerp(pt, 0.4)
}

type rossler struct{ flow }

func newRossler() rossler {
	return rossler{flow{dyn: physics.NewRossler(), integ: integrators.NewEuler(), dt: 0.01, steps: 5}}
}

func (rossler) Kind() Kind { return Rossler }

func (r rossler) Transform(pt dynamo.Point, phase float64, _ Rand) dynamo.Point {
	s := r.run(pt)

	sin, cos := math.Sincos(phase * 0.15)
	proj := dynamo.Point{X: s[0]*cos - s[1]*sin, Y: s[1]*cos + s[0]*sin}
	blended := proj.Lerp(pt, 0.3)

	dist, angle := blended.Polar()
	spiral := 0.1 * math.Sin(dist*3-phase*0.2)
	return dynamo.Point{
		X: blended.X + spiral*math.Cos(angle),
		Y: blended.Y + spiral*math.Sin(angle),
	}
}

// iterated runs a few steps of a discrete map seeded from the scaled point.
type iterated struct {
	m     dynamo.Map
	scale float64
	steps int
}

func (it iterated) run(pt dynamo.Point) dynamo.Point {
	p := pt.Scale(it.scale)
	for i := 0; i < it.steps; i++ {
		p = it.m.Next(p)
	}
	return p
}

type henon struct{ iterated }

func newHenon() henon {
	return henon{iterated{m: physics.NewHenon(), scale: 0.15, steps: 3}}
}

func (henon) Kind() Kind { return Henon }

func (h henon) Transform(pt dynamo.Point, phase float64, _ Rand) dynamo.Point {
	p := h.run(pt)

	sin, cos := math.Sincos(phase * 0.2)
	rot := dynamo.Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
	return rot.Lerp(pt, 0.25)
}

type ikeda struct{ iterated }

func newIkeda() ikeda {
	return ikeda{iterated{m: physics.NewIkeda(), scale: 0.2, steps: 3}}
}

func (ikeda) Kind() Kind { return Ikeda }

func (k ikeda) Transform(pt dynamo.Point, phase float64, _ Rand) dynamo.Point {
	p := k.run(pt).Scale(0.1)

	dist, angle := p.Polar()
	swirl := angle + 0.1*math.Sin(dist*4-phase*0.3)
	swirled := dynamo.Point{X: dist * math.Cos(swirl), Y: dist * math.Sin(swirl)}
	return swirled.Lerp(pt, 0.25)
}
