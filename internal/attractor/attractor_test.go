package attractor

import (
	"math"
	"runtime"
	"testing"

	"github.com/san-kum/attractor/internal/dynamo"
)

var spectral = dynamo.Params{A: 1.7, B: 1.7, C: 0.6, D: 1.2}

func TestStepFinite(t *testing.T) {
	params := []dynamo.Params{
		spectral,
		{A: -1.7, B: 1.8, C: -0.9, D: -0.4},
		{A: 2.01, B: -2.53, C: 1.61, D: -0.33},
		{A: 100, B: -100, C: 50, D: -50},
	}
	points := []dynamo.Point{{}, {X: 1, Y: 1}, {X: -2, Y: 2}, {X: 1e6, Y: -1e6}}

	for _, p := range params {
		for _, pt := range points {
			next := Step(p, pt)
			if !next.IsFinite() {
				t.Errorf("Step(%v, %v) = %v, not finite", p, pt, next)
			}
			if math.Abs(next.X) > 1+math.Abs(p.C) || math.Abs(next.Y) > 1+math.Abs(p.D) {
				t.Errorf("Step(%v, %v) = %v escapes the sin/cos bound", p, pt, next)
			}
		}
	}
}

func TestStepFormula(t *testing.T) {
	pt := dynamo.Point{X: 0.3, Y: -0.7}
	got := Step(spectral, pt)
	wantX := math.Sin(1.7*-0.7) + 0.6*math.Cos(1.7*0.3)
	wantY := math.Sin(1.7*0.3) + 1.2*math.Cos(1.7*-0.7)
	if got.X != wantX || got.Y != wantY {
		t.Errorf("Step = %v, want {%v %v}", got, wantX, wantY)
	}
}

func TestWarmUpDeterministic(t *testing.T) {
	first := WarmUp(spectral, WarmUpIterations)
	second := WarmUp(spectral, WarmUpIterations)
	if first != second {
		t.Errorf("WarmUp not deterministic: %v vs %v", first, second)
	}
	if WarmUp(spectral, 0) != (dynamo.Point{}) {
		t.Error("zero iterations should return the origin")
	}
}

// The first visible point of the default preset at phase zero. The orbit
// is chaotic, so fused multiply-add targets drift away from this value.
func TestFirstPointRegression(t *testing.T) {
	if runtime.GOARCH != "amd64" {
		t.Skip("golden value recorded on amd64")
	}
	params := Modulate(spectral, 0)
	if params.A != 1.7 || math.Abs(params.B-1.78) > 1e-12 ||
		math.Abs(params.C-0.63) > 1e-12 || math.Abs(params.D-1.25) > 1e-12 {
		t.Fatalf("Modulate at phase 0 = %v", params)
	}

	got := Step(params, WarmUp(params, WarmUpIterations))
	want := dynamo.Point{X: 1.1145309702555943, Y: -0.284682301032429}
	if got != want {
		t.Errorf("first point = %v, want %v", got, want)
	}
}

func TestModulateBounded(t *testing.T) {
	for phase := 0.0; phase < 2000; phase += 0.37 {
		p := Modulate(spectral, phase)
		if math.Abs(p.A-spectral.A) > MaxOffset.A+1e-12 ||
			math.Abs(p.B-spectral.B) > MaxOffset.B+1e-12 ||
			math.Abs(p.C-spectral.C) > MaxOffset.C+1e-12 ||
			math.Abs(p.D-spectral.D) > MaxOffset.D+1e-12 {
			t.Fatalf("phase %.2f: drift %v exceeds bound", phase, p)
		}
	}
}

func TestModulateAtZeroIsFixedOffset(t *testing.T) {
	base := dynamo.Params{A: -1.4, B: 1.6, C: 1.0, D: 0.7}
	p := Modulate(base, 0)
	want := dynamo.Params{A: base.A, B: base.B + 0.08, C: base.C + 0.03, D: base.D + 0.05}
	if math.Abs(p.A-want.A) > 1e-12 || math.Abs(p.B-want.B) > 1e-12 ||
		math.Abs(p.C-want.C) > 1e-12 || math.Abs(p.D-want.D) > 1e-12 {
		t.Errorf("Modulate(base, 0) = %v, want %v", p, want)
	}
}

func TestModulateCoefficientsDiffer(t *testing.T) {
	p := Modulate(dynamo.Params{}, 3.3)
	if p.A == p.B || p.C == p.D || p.A == p.C {
		t.Errorf("coefficients share identical drift: %v", p)
	}
}

func TestDrift(t *testing.T) {
	series := Drift(spectral, 0, 10, 50)
	for i, s := range series {
		if len(s) != 50 {
			t.Errorf("series %d has %d samples", i, len(s))
		}
	}
	if series[0][0] != Modulate(spectral, 0).A {
		t.Error("first sample does not match Modulate at start")
	}
}

func TestCliffordImplementsMap(t *testing.T) {
	var m dynamo.Map = NewClifford(spectral)
	if m.Next(dynamo.Point{}) != Step(spectral, dynamo.Point{}) {
		t.Error("Clifford.Next disagrees with Step")
	}
}
