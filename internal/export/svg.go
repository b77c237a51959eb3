package export

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/attractor/internal/render"
)

// SVG is a vector Surface. Every full-surface fill starts a new frame
// layer and only the most recent layers are kept, since older trails
// have faded to nothing.
type SVG struct {
	width, height int
	alpha         float64
	keep          int
	layers        [][]string
	gradients     map[string]string
	defs          []string
}

func NewSVG(w, h, keep int) *SVG {
	if keep < 1 {
		keep = 1
	}
	s := &SVG{keep: keep, alpha: 1}
	s.Resize(w, h)
	return s
}

func (s *SVG) Size() (int, int) { return s.width, s.height }

func (s *SVG) SetAlpha(a float64) { s.alpha = clamp01(a) }

// Resize drops all recorded layers.
func (s *SVG) Resize(w, h int) {
	s.width, s.height = max(w, 1), max(h, 1)
	s.layers = nil
	s.gradients = make(map[string]string)
	s.defs = nil
}

// Layers reports how many frame layers are retained.
func (s *SVG) Layers() int { return len(s.layers) }

func (s *SVG) FillRect(x, y, w, h float64, c color.Color) {
	if x <= 0 && y <= 0 && x+w >= float64(s.width) && y+h >= float64(s.height) {
		s.newLayer()
	}
	hex, op := s.paint(c)
	s.add(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" fill-opacity="%.3f"/>`, x, y, w, h, hex, op))
}

func (s *SVG) FillCircle(x, y, r float64, c color.Color) {
	hex, op := s.paint(c)
	if op <= 0 {
		return
	}
	s.add(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.2f" fill="%s" fill-opacity="%.3f"/>`, x, y, r, hex, op))
}

func (s *SVG) FillRadial(cx, cy, r float64, stops []render.Stop) {
	var def strings.Builder
	for _, st := range stops {
		hex, op := s.paint(st.Color)
		fmt.Fprintf(&def, `<stop offset="%.3f" stop-color="%s" stop-opacity="%.3f"/>`, st.Offset, hex, op)
	}
	key := fmt.Sprintf("%.1f,%.1f,%.1f|%s", cx, cy, r, def.String())
	id, ok := s.gradients[key]
	if !ok {
		id = fmt.Sprintf("vignette%d", len(s.gradients))
		s.gradients[key] = id
		s.defs = append(s.defs, fmt.Sprintf(
			`<radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%.1f" cy="%.1f" r="%.1f">%s</radialGradient>`,
			id, cx, cy, r, def.String()))
	}
	s.add(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="url(#%s)"/>`, id))
}

func (s *SVG) newLayer() {
	s.layers = append(s.layers, nil)
	if len(s.layers) > s.keep {
		s.layers = s.layers[len(s.layers)-s.keep:]
	}
}

func (s *SVG) add(el string) {
	if len(s.layers) == 0 {
		s.newLayer()
	}
	last := len(s.layers) - 1
	s.layers[last] = append(s.layers[last], el)
}

func (s *SVG) paint(c color.Color) (string, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	cf := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
	return cf.Hex(), float64(n.A) / 255 * s.alpha
}

// WriteTo writes the retained layers as a standalone SVG document.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, s.width, s.height, s.width, s.height)
	if len(s.defs) > 0 {
		sb.WriteString("<defs>\n")
		for _, d := range s.defs {
			sb.WriteString(d + "\n")
		}
		sb.WriteString("</defs>\n")
	}
	sb.WriteString(`<rect width="100%" height="100%" fill="#000000"/>` + "\n")
	for _, layer := range s.layers {
		sb.WriteString("<g>\n")
		for _, el := range layer {
			sb.WriteString(el + "\n")
		}
		sb.WriteString("</g>\n")
	}
	sb.WriteString("</svg>\n")

	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return min(v, 1)
}
