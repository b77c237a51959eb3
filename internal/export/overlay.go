package export

import (
	"image"

	"github.com/fogleman/gg"
)

const labelFade = 0.5

// Label draws the preset name centred near the top of img. The label
// fades out over the last half second of its display time.
func Label(img *image.RGBA, name string, remaining float64) {
	if name == "" || remaining <= 0 {
		return
	}
	alpha := min(remaining/labelFade, 1)

	dc := gg.NewContextForRGBA(img)
	w, h := float64(dc.Width()), float64(dc.Height())
	x, y := w/2, h*0.12

	dc.SetRGBA(0, 0, 0, 0.6*alpha)
	dc.DrawStringAnchored(name, x+1, y+1, 0.5, 0.5)
	dc.SetRGBA(1, 1, 1, 0.9*alpha)
	dc.DrawStringAnchored(name, x, y, 0.5, 0.5)
}
