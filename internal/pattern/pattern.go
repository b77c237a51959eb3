package pattern

import (
	"math"

	"github.com/san-kum/attractor/internal/dynamo"
)

// Rand is the source of uniform numbers in [0,1) used by stochastic
// effects. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Appearance is the per-point draw description. Components are nominally
// in [0,1] but may briefly exceed it; the color conversion clamps.
type Appearance struct {
	H, S, L float64
	Alpha   float64
	Size    float64
}

// IsFinite reports whether every component is drawable.
func (a Appearance) IsFinite() bool {
	for _, v := range [...]float64{a.H, a.S, a.L, a.Alpha, a.Size} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Pattern pairs a coordinate transform with its appearance function.
type Pattern interface {
	Kind() Kind
	Transform(pt dynamo.Point, phase float64, rng Rand) dynamo.Point
	Appearance(pt dynamo.Point, hue, phase float64, rng Rand) Appearance
}

var registry = [numKinds]Pattern{
	Standard: standard{},
	Star:     star{},
	Aurora:   aurora{},
	Fractal:  fractal{},
	Quantum:  quantum{},
	Lorenz:   newLorenz(),
	Rossler:  newRossler(),
	Henon:    newHenon(),
	Ikeda:    newIkeda(),
}

// For returns the pattern for k, falling back to standard for values
// outside the enumeration.
func For(k Kind) Pattern {
	if !k.Valid() {
		return registry[Standard]
	}
	return registry[k]
}

// fmod keeps the sign of the dividend, so hues drifting below zero stay
// negative and are wrapped by the color conversion.
func fmod(x float64) float64 {
	return math.Mod(x, 1)
}
