package render

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/san-kum/attractor/internal/attractor"
	"github.com/san-kum/attractor/internal/config"
	"github.com/san-kum/attractor/internal/dynamo"
	"github.com/san-kum/attractor/internal/palette"
	"github.com/san-kum/attractor/internal/pattern"
)

const (
	// CullPadding is how far outside the surface a point may land and
	// still be drawn.
	CullPadding = 10.0

	glowScale = 2.0
	glowAlpha = 0.3
	vignette  = 0.03
)

// Options are the tunables of the frame pipeline.
type Options struct {
	Points       int
	FadeOpacity  float64
	Vignette     bool
	PhaseRate    float64
	WarmUp       int
	NameDuration float64
	Color        bool
}

func OptionsFrom(cfg *config.Config) Options {
	return Options{
		Points:       cfg.Points,
		FadeOpacity:  cfg.FadeOpacity,
		Vignette:     cfg.Vignette,
		PhaseRate:    cfg.PhaseRate,
		WarmUp:       cfg.WarmUp,
		NameDuration: cfg.NameDuration,
		Color:        cfg.Color,
	}
}

// FrameState is the complete animation state carried between frames.
type FrameState struct {
	Phase  float64
	Base   dynamo.Params
	Params dynamo.Params
	Cursor PresetCursor
	Timer  NameTimer
	Color  bool
}

// FrameStats counts what happened to the point budget of one frame.
type FrameStats struct {
	Drawn     int
	Culled    int
	NonFinite int
}

// NameSink receives the preset name whenever it should be shown.
type NameSink func(name string, d time.Duration)

type Compositor struct {
	opts    Options
	presets []config.Preset
	surface Surface
	rng     pattern.Rand
	state   FrameState
	active  pattern.Pattern
	stats   FrameStats
	onName  NameSink
}

// New builds a compositor showing presets[start]. The table must be
// non-empty; it is never modified.
func New(surface Surface, presets []config.Preset, start int, opts Options, rng pattern.Rand) (*Compositor, error) {
	if len(presets) == 0 {
		return nil, fmt.Errorf("%w: empty preset table", dynamo.ErrInvalidPreset)
	}
	if start < 0 || start >= len(presets) {
		return nil, fmt.Errorf("%w: preset index %d outside [0,%d)", dynamo.ErrInvalidConfig, start, len(presets))
	}
	if opts.Points <= 0 {
		return nil, fmt.Errorf("%w: points must be positive", dynamo.ErrInvalidConfig)
	}

	c := &Compositor{
		opts:    opts,
		presets: presets,
		surface: surface,
		rng:     rng,
		state: FrameState{
			Cursor: NewPresetCursor(start, len(presets)),
			Color:  opts.Color,
		},
	}
	c.loadPreset()
	return c, nil
}

// OnName registers the label sink and immediately reports the current
// preset.
func (c *Compositor) OnName(sink NameSink) {
	c.onName = sink
	c.showName()
}

// AdvancePreset moves to the next preset, cycling at the end of the table.
func (c *Compositor) AdvancePreset() {
	c.state.Cursor.Advance()
	c.loadPreset()
}

// ToggleColor flips between full color and lightness-only greyscale.
func (c *Compositor) ToggleColor() {
	c.state.Color = !c.state.Color
}

// Resize forwards new dimensions to a resizable surface.
func (c *Compositor) Resize(w, h int) {
	if r, ok := c.surface.(Resizer); ok {
		r.Resize(w, h)
	}
}

func (c *Compositor) State() FrameState        { return c.state }
func (c *Compositor) Stats() FrameStats        { return c.stats }
func (c *Compositor) Surface() Surface         { return c.surface }
func (c *Compositor) Presets() []config.Preset { return c.presets }

func (c *Compositor) Preset() config.Preset {
	return c.presets[c.state.Cursor.Index()]
}

// NameLabel returns the current preset name and whether it is showing.
func (c *Compositor) NameLabel() (string, bool) {
	return c.Preset().Name, c.state.Timer.Visible()
}

func (c *Compositor) loadPreset() {
	p := c.Preset()
	c.state.Base = p.Params
	c.state.Params = p.Params
	c.active = pattern.For(p.Pattern)
	c.showName()
}

func (c *Compositor) showName() {
	c.state.Timer.Reset(c.opts.NameDuration)
	if c.onName != nil {
		c.onName(c.Preset().Name, time.Duration(c.opts.NameDuration*float64(time.Second)))
	}
}

// Frame advances the animation by elapsed wall time and draws one frame.
func (c *Compositor) Frame(elapsed time.Duration) FrameStats {
	c.advance(elapsed.Seconds())
	c.fade()
	c.drawPoints()
	return c.stats
}

func (c *Compositor) advance(dt float64) {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	c.state.Phase += dt * c.opts.PhaseRate
	c.state.Timer.Tick(dt)
	c.state.Params = attractor.Modulate(c.state.Base, c.state.Phase)
}

func (c *Compositor) fade() {
	w, h := c.surface.Size()
	fw, fh := float64(w), float64(h)

	c.surface.SetAlpha(1)
	c.surface.FillRect(0, 0, fw, fh, color.NRGBA{A: alpha8(c.opts.FadeOpacity)})

	if c.opts.Vignette {
		clear := color.NRGBA{}
		c.surface.FillRadial(fw/2, fh/2, math.Min(fw, fh)/2, []Stop{
			{0, clear},
			{0.85, clear},
			{1, color.NRGBA{A: alpha8(vignette)}},
		})
	}
}

func (c *Compositor) drawPoints() {
	w, h := c.surface.Size()
	fw, fh := float64(w), float64(h)
	cx, cy := fw/2, fh/2
	scale := math.Min(fw, fh) / 5

	params := c.state.Params
	phase := c.state.Phase
	hue := c.Preset().Hue
	mono := !c.state.Color

	c.stats = FrameStats{}
	pt := attractor.WarmUp(params, c.opts.WarmUp)

	for i := 0; i < c.opts.Points; i++ {
		pt = attractor.Step(params, pt)
		tp := c.active.Transform(pt, phase, c.rng)
		if !tp.IsFinite() {
			c.stats.NonFinite++
			continue
		}

		x := cx + tp.X*scale
		y := cy + tp.Y*scale
		if x < -CullPadding || x > fw+CullPadding || y < -CullPadding || y > fh+CullPadding {
			c.stats.Culled++
			continue
		}

		a := c.active.Appearance(tp, hue, phase, c.rng)
		if !a.IsFinite() || a.Size <= 0 {
			c.stats.NonFinite++
			continue
		}

		rgb := palette.NRGBA(a.H, a.S, a.L, 1, mono)
		c.surface.SetAlpha(a.Alpha * glowAlpha)
		c.surface.FillCircle(x, y, a.Size*glowScale, rgb)
		c.surface.SetAlpha(a.Alpha)
		c.surface.FillCircle(x, y, a.Size, rgb)
		c.stats.Drawn++
	}

	c.surface.SetAlpha(1)
}

func alpha8(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}
