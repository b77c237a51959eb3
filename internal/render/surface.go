package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Stop is one color stop of a radial gradient.
type Stop struct {
	Offset float64
	Color  color.Color
}

// Surface is the drawing target the compositor renders into.
type Surface interface {
	Size() (w, h int)
	// SetAlpha sets the opacity factor applied to subsequent fills.
	SetAlpha(a float64)
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(x, y, r float64, c color.Color)
	// FillRadial covers the surface with a gradient centered on (cx, cy)
	// running from radius 0 to r.
	FillRadial(cx, cy, r float64, stops []Stop)
}

// Resizer is implemented by surfaces whose dimensions can change.
type Resizer interface {
	Resize(w, h int)
}

// Canvas is a raster Surface backed by a gg context.
type Canvas struct {
	ctx   *gg.Context
	alpha float64
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{alpha: 1}
	c.Resize(w, h)
	return c
}

// Resize replaces the raster; previous contents are discarded.
func (c *Canvas) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.ctx = gg.NewContext(w, h)
	c.Clear()
}

// Clear paints the raster opaque black.
func (c *Canvas) Clear() {
	c.ctx.SetRGB(0, 0, 0)
	c.ctx.Clear()
}

func (c *Canvas) Size() (int, int) { return c.ctx.Width(), c.ctx.Height() }

func (c *Canvas) SetAlpha(a float64) {
	c.alpha = clamp01(a)
}

func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	c.ctx.SetColor(c.withAlpha(col))
	c.ctx.DrawRectangle(x, y, w, h)
	c.ctx.Fill()
}

func (c *Canvas) FillCircle(x, y, r float64, col color.Color) {
	c.ctx.SetColor(c.withAlpha(col))
	c.ctx.DrawCircle(x, y, r)
	c.ctx.Fill()
}

func (c *Canvas) FillRadial(cx, cy, r float64, stops []Stop) {
	grad := gg.NewRadialGradient(cx, cy, 0, cx, cy, r)
	for _, s := range stops {
		grad.AddColorStop(s.Offset, c.withAlpha(s.Color))
	}
	c.ctx.SetFillStyle(grad)
	c.ctx.DrawRectangle(0, 0, float64(c.ctx.Width()), float64(c.ctx.Height()))
	c.ctx.Fill()
}

// Image returns the live raster. Callers that keep it across frames
// must copy it.
func (c *Canvas) Image() image.Image { return c.ctx.Image() }

// Snapshot returns a copy of the raster.
func (c *Canvas) Snapshot() *image.RGBA {
	src := c.ctx.Image()
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.(*image.RGBA).Pix)
	return dst
}

// Context exposes the gg context for overlays such as text labels.
func (c *Canvas) Context() *gg.Context { return c.ctx }

func (c *Canvas) withAlpha(col color.Color) color.NRGBA {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * c.alpha))
	return n
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
