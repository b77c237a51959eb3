package attractor

import (
	"math"

	"github.com/san-kum/attractor/internal/dynamo"
)

// Band amplitudes.
const (
	slowAmp  = 0.08
	med1Amp  = 0.06
	med2Amp  = 0.05
	fast1Amp = 0.03
	fast2Amp = 0.03
)

// MaxOffset is the largest absolute drift each coefficient can reach.
var MaxOffset = dynamo.Params{
	A: slowAmp + med1Amp + fast1Amp,
	B: slowAmp + med2Amp + fast2Amp,
	C: med1Amp + fast2Amp,
	D: med2Amp + fast1Amp,
}

// Bands holds the five oscillator values for one phase.
type Bands struct {
	Slow, Med1, Med2, Fast1, Fast2 float64
}

func BandsAt(phase float64) Bands {
	return Bands{
		Slow:  math.Sin(phase*0.15) * slowAmp,
		Med1:  math.Sin(phase*0.3) * med1Amp,
		Med2:  math.Cos(phase*0.25) * med2Amp,
		Fast1: math.Sin(phase*0.6) * fast1Amp,
		Fast2: math.Cos(phase*0.7) * fast2Amp,
	}
}

// Modulate returns the effective parameters for a frame. Each coefficient
// receives its own mix of the slow, medium and fast bands.
func Modulate(base dynamo.Params, phase float64) dynamo.Params {
	b := BandsAt(phase)
	return dynamo.Params{
		A: base.A + b.Slow + b.Med1 + b.Fast1,
		B: base.B + b.Slow + b.Med2 + b.Fast2,
		C: base.C + b.Med1 + b.Fast2,
		D: base.D + b.Med2 + b.Fast1,
	}
}

// Drift samples Modulate over [from, to] and returns one series per
// coefficient, in a, b, c, d order.
func Drift(base dynamo.Params, from, to float64, samples int) [4][]float64 {
	var out [4][]float64
	if samples < 2 {
		samples = 2
	}
	for i := range out {
		out[i] = make([]float64, samples)
	}
	step := (to - from) / float64(samples-1)
	for i := 0; i < samples; i++ {
		p := Modulate(base, from+float64(i)*step)
		out[0][i], out[1][i], out[2][i], out[3][i] = p.A, p.B, p.C, p.D
	}
	return out
}
