package export

import (
	"context"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/san-kum/attractor/internal/config"
	"github.com/san-kum/attractor/internal/dynamo"
	"github.com/san-kum/attractor/internal/pattern"
	"github.com/san-kum/attractor/internal/render"
	"github.com/san-kum/attractor/internal/storage"
)

// Job renders a fixed number of frames offline.
type Job struct {
	Config  *config.Config
	Presets []config.Preset
	Start   int
	Frames  int
	Rand    pattern.Rand

	// Every advances to the next preset after this many frames; zero
	// keeps one preset for the whole run.
	Every int
	// Label burns the preset name into raster frames while it shows.
	Label bool
	// Scale downsizes GIF frames.
	Scale float64
	// Layers is how many frames an SVG keeps.
	Layers int
}

// Result is what a job produced besides the artifact itself.
type Result struct {
	Meta  storage.RunMetadata
	Trace []storage.TraceRow
}

func (j Job) interval() time.Duration {
	return j.Config.FrameInterval()
}

func (j Job) run(ctx context.Context, surface render.Surface, kind string, each render.FrameSink) (*Result, error) {
	if j.Frames <= 0 {
		return nil, fmt.Errorf("%w: frames must be positive", dynamo.ErrInvalidConfig)
	}
	comp, err := render.New(surface, j.Presets, j.Start, render.OptionsFrom(j.Config), j.Rand)
	if err != nil {
		return nil, err
	}

	first := comp.Preset()
	res := &Result{Trace: make([]storage.TraceRow, 0, j.Frames)}
	loop := render.NewLoop(comp, j.interval())

	err = loop.Run(ctx, j.Frames, func(frame int, c *render.Compositor) error {
		st, stats := c.State(), c.Stats()
		res.Trace = append(res.Trace, storage.TraceRow{
			Frame:  frame,
			Phase:  st.Phase,
			Params: st.Params,
			Drawn:  stats.Drawn,
			Culled: stats.Culled,
		})
		if each != nil {
			if err := each(frame, c); err != nil {
				return err
			}
		}
		if j.Every > 0 && (frame+1)%j.Every == 0 {
			c.AdvancePreset()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	w, h := surface.Size()
	st := comp.State()
	res.Meta = storage.RunMetadata{
		Kind:        kind,
		Preset:      first.Name,
		Pattern:     first.Pattern.String(),
		Base:        first.Params,
		Final:       st.Params,
		Timestamp:   time.Now(),
		Seed:        j.Config.Seed,
		Frames:      j.Frames,
		FPS:         j.Config.FPS,
		Width:       w,
		Height:      h,
		Points:      j.Config.Points,
		FadeOpacity: j.Config.FadeOpacity,
		Phase:       st.Phase,
	}
	return res, nil
}

// PNG renders the job and writes its final frame.
func (j Job) PNG(ctx context.Context, w io.Writer) (*Result, error) {
	canvas := render.NewCanvas(j.Config.Width, j.Config.Height)
	res, err := j.run(ctx, canvas, "png", nil)
	if err != nil {
		return nil, err
	}
	return res, WritePNG(w, canvas.Snapshot())
}

// GIF renders every frame into an animation.
func (j Job) GIF(ctx context.Context, w io.Writer) (*Result, error) {
	canvas := render.NewCanvas(j.Config.Width, j.Config.Height)
	rec := NewGIFRecorder(j.Scale, j.interval())

	res, err := j.run(ctx, canvas, "gif", func(_ int, c *render.Compositor) error {
		rec.Add(j.labelled(canvas, c))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, rec.Encode(w)
}

// SVG renders the job into vector layers.
func (j Job) SVG(ctx context.Context, w io.Writer) (*Result, error) {
	svg := NewSVG(j.Config.Width, j.Config.Height, j.Layers)
	res, err := j.run(ctx, svg, "svg", nil)
	if err != nil {
		return nil, err
	}
	_, err = svg.WriteTo(w)
	return res, err
}

// labelled copies the raster and, when enabled, draws the name label on
// the copy so it never enters the trails.
func (j Job) labelled(canvas *render.Canvas, c *render.Compositor) *image.RGBA {
	img := canvas.Snapshot()
	if !j.Label {
		return img
	}
	if name, visible := c.NameLabel(); visible {
		Label(img, name, c.State().Timer.Remaining())
	}
	return img
}
