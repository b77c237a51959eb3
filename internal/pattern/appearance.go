package pattern

import (
	"math"

	"github.com/san-kum/attractor/internal/dynamo"
	mandel "github.com/san-kum/attractor/internal/fractal"
)

func (standard) Appearance(pt dynamo.Point, hue, phase float64, _ Rand) Appearance {
	return standardAppearance(pt, hue, phase)
}

// Star points share the standard coloring; only their geometry differs.
func (star) Appearance(pt dynamo.Point, hue, phase float64, _ Rand) Appearance {
	return standardAppearance(pt, hue, phase)
}

func standardAppearance(pt dynamo.Point, hue, phase float64) Appearance {
	dist, angle := pt.Polar()
	angle /= math.Pi

	return Appearance{
		H:     fmod(hue + 0.1*math.Sin(angle*2+phase*0.1)),
		S:     0.7 + 0.3*math.Sin(dist*2-phase*0.05),
		L:     0.5 + 0.2*math.Sin(pt.X*pt.Y+phase*0.07),
		Alpha: 0.7,
		Size:  1.5 + math.Abs(math.Sin(pt.X*pt.Y)),
	}
}

func (aurora) Appearance(pt dynamo.Point, hue, phase float64, _ Rand) Appearance {
	band := pt.Y/2 + phase*0.2
	shimmer := math.Sin(pt.X*3 + phase*0.4)

	return Appearance{
		H:     fmod(hue + math.Sin(band)*0.2),
		S:     0.7 + math.Sin(pt.X*2+phase*0.3)*0.3,
		L:     0.5 + shimmer*0.3,
		Alpha: 0.5 + math.Abs(shimmer)*0.5,
		Size:  1.5 + math.Abs(shimmer)*1.5,
	}
}

func (fractal) Appearance(pt dynamo.Point, hue, phase float64, _ Rand) Appearance {
	res := mandel.Escape(
		pt.X*0.9+math.Sin(phase*0.04)*0.3,
		pt.Y*0.9+math.Cos(phase*0.05)*0.2,
		FractalIterations,
	)
	if !res.Escaped {
		return Appearance{H: hue, S: 0.6, L: 0.4, Alpha: 0.7, Size: 1.2}
	}

	v := res.Value
	return Appearance{
		H:     fmod(hue + v*1.5),
		S:     0.6 + math.Sin(v*math.Pi*3)*0.2,
		L:     0.5 + math.Cos(v*math.Pi*4)*0.15,
		Alpha: 0.6 + v*0.3,
		Size:  1.3 + v*1.2,
	}
}

func (quantum) Appearance(pt dynamo.Point, hue, phase float64, rng Rand) Appearance {
	dist, angle := pt.Polar()

	interference := math.Sin(dist*5-phase*0.3) * math.Cos(angle*3+phase*0.2)
	prob := math.Abs(interference)

	a := Appearance{
		H:     fmod(hue + prob*0.2 + dist*0.05),
		S:     0.7 + prob*0.3,
		L:     0.5 + math.Sin(angle*4-phase*0.25)*0.2,
		Alpha: 0.6 + prob*0.4,
		Size:  1.2 + prob*1.8,
	}

	// Flash: independent of the transform's tunneling draw.
	if rng != nil && rng.Float64() < flashChance {
		a.L = 0.9
		a.Alpha = 0.9
		a.Size *= 1.5
	}
	return a
}

func (lorenz) Appearance(pt dynamo.Point, hue, _ float64, _ Rand) Appearance {
	dist, angle := pt.Polar()

	wing := math.Sin(angle*2+dist*3) * math.Cos(dist*2-angle)
	layer := (wing + 1) * 0.5
	glow := math.Sin(layer * math.Pi)

	return Appearance{
		H:     fmod(hue + layer*0.15),
		S:     0.7 + layer*0.3,
		L:     0.4 + glow*glow*0.3,
		Alpha: 0.5 + layer*0.5,
		Size:  1.0 + layer*2.0,
	}
}

func (rossler) Appearance(pt dynamo.Point, hue, _ float64, _ Rand) Appearance {
	dist, angle := pt.Polar()
	spiral := (math.Sin(angle+dist*2) + 1) * 0.5

	return Appearance{
		H:     fmod(hue + spiral*0.2),
		S:     0.6 + spiral*0.4,
		L:     0.4 + spiral*0.3,
		Alpha: 0.6 + spiral*0.4,
		Size:  1.2 + spiral*1.8,
	}
}

func (henon) Appearance(pt dynamo.Point, hue, _ float64, _ Rand) Appearance {
	dist, angle := pt.Polar()
	lobe := (math.Cos(angle*3) + 1) * 0.5

	return Appearance{
		H:     fmod(hue + lobe*0.15),
		S:     0.7 + math.Sin(dist*4)*0.3,
		L:     0.4 + lobe*0.3,
		Alpha: 0.6 + lobe*0.4,
		Size:  1.3 + math.Sin(angle*2)*0.8,
	}
}

func (ikeda) Appearance(pt dynamo.Point, hue, phase float64, _ Rand) Appearance {
	dist, angle := pt.Polar()
	swirl := (math.Sin(dist*3+angle*4+phase*0.2) + 1) * 0.5

	return Appearance{
		H:     fmod(hue + swirl*0.1),
		S:     0.6 + swirl*0.4,
		L:     0.4 + swirl*swirl*0.4,
		Alpha: 0.5 + swirl*0.5,
		Size:  1.0 + swirl*2.0,
	}
}
