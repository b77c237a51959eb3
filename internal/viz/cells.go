package viz

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

const halfBlock = "▀"

// HalfBlocks renders img into cols x rows terminal cells. Each cell
// carries two vertically stacked pixels: the upper one as foreground of
// a half-block glyph and the lower one as its background.
func HalfBlocks(img image.Image, cols, rows int) string {
	if cols < 1 || rows < 1 {
		return ""
	}
	px := downsample(img, cols, rows*2)

	var b strings.Builder
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < cols; {
			top, bottom := px.RGBAAt(c, 2*r), px.RGBAAt(c, 2*r+1)
			n := 1
			for c+n < cols && px.RGBAAt(c+n, 2*r) == top && px.RGBAAt(c+n, 2*r+1) == bottom {
				n++
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexOf(top))).
				Background(lipgloss.Color(hexOf(bottom)))
			b.WriteString(style.Render(strings.Repeat(halfBlock, n)))
			c += n
		}
	}
	return b.String()
}

func downsample(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

func downsampleGray(img image.Image, w, h int) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

func hexOf(c color.RGBA) string {
	cf, _ := colorful.MakeColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	return cf.Hex()
}
