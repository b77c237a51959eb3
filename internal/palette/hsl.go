// Package palette converts the renderer's HSL appearance values to RGB.
package palette

import (
	"image/color"
	"math"
)

// HSLToRGB converts hue, saturation and lightness to 8-bit RGB. Hue wraps
// by its fractional part; results outside [0,255] are clamped so that
// transient out-of-range appearance values never fail.
func HSLToRGB(h, s, l float64) (r, g, b uint8) {
	if s == 0 {
		v := to8(l)
		return v, v, v
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return to8(hueToRGB(p, q, h+1.0/3)), to8(hueToRGB(p, q, h)), to8(hueToRGB(p, q, h-1.0/3))
}

// Greyscale maps lightness alone to a neutral grey.
func Greyscale(l float64) (r, g, b uint8) {
	return HSLToRGB(0, 0, l)
}

// NRGBA returns the converted color with the given opacity in [0,1].
func NRGBA(h, s, l, alpha float64, mono bool) color.NRGBA {
	var r, g, b uint8
	if mono {
		r, g, b = Greyscale(l)
	} else {
		r, g, b = HSLToRGB(h, s, l)
	}
	return color.NRGBA{R: r, G: g, B: b, A: to8(alpha)}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 || t > 1 {
		t -= math.Floor(t)
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func to8(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	x := math.Floor(v*255 + 0.5)
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}
