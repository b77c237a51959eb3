package analysis

import (
	"math"

	"github.com/san-kum/attractor/internal/attractor"
	"github.com/san-kum/attractor/internal/config"
	"github.com/san-kum/attractor/internal/dynamo"
)

// Bounds is the axis-aligned extent of an orbit.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Orbit iterates m n times from x0, skipping transient iterations first.
// Non-finite points end the orbit early.
func Orbit(m dynamo.Map, x0 dynamo.Point, transient, n int) []dynamo.Point {
	x := x0
	for i := 0; i < transient; i++ {
		x = m.Next(x)
	}
	pts := make([]dynamo.Point, 0, n)
	for i := 0; i < n; i++ {
		x = m.Next(x)
		if !x.IsFinite() {
			break
		}
		pts = append(pts, x)
	}
	return pts
}

func BoundsOf(pts []dynamo.Point) Bounds {
	if len(pts) == 0 {
		return Bounds{}
	}
	b := Bounds{MinX: pts[0].X, MaxX: pts[0].X, MinY: pts[0].Y, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// Coverage is the fraction of cells of a grid x grid raster over the
// visible square [-2.5, 2.5]² that the orbit touches. The square is what
// the compositor maps onto the shorter side of the surface.
func Coverage(pts []dynamo.Point, grid int) float64 {
	if grid <= 0 || len(pts) == 0 {
		return 0
	}
	const half = 2.5
	seen := make(map[int]struct{})
	for _, p := range pts {
		if math.Abs(p.X) >= half || math.Abs(p.Y) >= half {
			continue
		}
		cx := int((p.X + half) / (2 * half) * float64(grid))
		cy := int((p.Y + half) / (2 * half) * float64(grid))
		seen[cy*grid+cx] = struct{}{}
	}
	return float64(len(seen)) / float64(grid*grid)
}

// Options control a preset survey.
type Options struct {
	Transient    int
	Iterations   int
	Perturbation float64
	Grid         int
}

func DefaultOptions() Options {
	return Options{
		Transient:    attractor.WarmUpIterations,
		Iterations:   20000,
		Perturbation: 1e-8,
		Grid:         64,
	}
}

// Report summarises the base map of one preset.
type Report struct {
	Name     string
	Pattern  string
	Params   dynamo.Params
	Lyapunov float64
	Bounds   Bounds
	Coverage float64
}

func (r Report) Chaotic() bool { return r.Lyapunov > 0.01 }

// Survey analyses every preset's base map in parallel. Reports keep the
// table order.
func Survey(presets []config.Preset, opts Options) []Report {
	reports := make([]Report, len(presets))
	dynamo.ParallelFor(len(presets), 1, func(start, end int) {
		for i := start; i < end; i++ {
			reports[i] = surveyOne(presets[i], opts)
		}
	})
	return reports
}

func surveyOne(p config.Preset, opts Options) Report {
	m := attractor.NewClifford(p.Params)
	pts := Orbit(m, dynamo.Point{}, opts.Transient, opts.Iterations)
	return Report{
		Name:     p.Name,
		Pattern:  p.Pattern.String(),
		Params:   p.Params,
		Lyapunov: MapLyapunov(m, dynamo.Point{}, opts.Transient, opts.Iterations, opts.Perturbation),
		Bounds:   BoundsOf(pts),
		Coverage: Coverage(pts, opts.Grid),
	}
}
