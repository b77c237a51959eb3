package export

import (
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"time"

	"golang.org/x/image/draw"
)

// GIFRecorder collects dithered frames for an animated GIF.
type GIFRecorder struct {
	scale  float64
	delay  int
	frames []*image.Paletted
}

// NewGIFRecorder records frames downscaled by scale (0 < scale <= 1)
// shown for interval each.
func NewGIFRecorder(scale float64, interval time.Duration) *GIFRecorder {
	if scale <= 0 || scale > 1 {
		scale = 1
	}
	delay := int(interval / (10 * time.Millisecond))
	if delay < 2 {
		delay = 2
	}
	return &GIFRecorder{scale: scale, delay: delay}
}

func (g *GIFRecorder) Add(img image.Image) {
	b := img.Bounds()
	w := max(int(float64(b.Dx())*g.scale), 1)
	h := max(int(float64(b.Dy())*g.scale), 1)

	src := img
	if w != b.Dx() || h != b.Dy() {
		scaled := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)
		src = scaled
	}

	frame := image.NewPaletted(image.Rect(0, 0, w, h), palette.Plan9)
	draw.FloydSteinberg.Draw(frame, frame.Bounds(), src, src.Bounds().Min)
	g.frames = append(g.frames, frame)
}

func (g *GIFRecorder) Len() int { return len(g.frames) }

// Encode writes the animation, looping forever.
func (g *GIFRecorder) Encode(w io.Writer) error {
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range g.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, g.delay)
	}
	return gif.EncodeAll(w, &anim)
}

func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
