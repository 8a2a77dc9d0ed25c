// Package colormap converts scalars and HSV triples to RGB colors.
package colormap

import (
	"github.com/chewxy/math32"
)

// RGB is a color with float components in [0, 1].
type RGB struct {
	R, G, B float32
}

// Common colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{1, 1, 1}
	Red   = RGB{1, 0, 0}
	Green = RGB{0, 1, 0}
	Blue  = RGB{0, 0, 1}
)

// Array returns the color as an array, for shader uniforms.
func (c RGB) Array() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

// Hue endpoints for Scalar: low values are blue, high values are red.
const (
	HueMin = 240
	HueMax = 0
)

// HSVToRGB converts h in degrees and s, v in [0, 1] to RGB.
// h wraps into [0, 360); s and v are clamped.
func HSVToRGB(h, s, v float32) RGB {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp01(s)
	v = clamp01(v)

	c := v * s
	hp := h / 60
	x := c * (1 - math32.Abs(math32.Mod(hp, 2)-1))
	m := v - c

	var r, g, b float32
	switch int(hp) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return RGB{r + m, g + m, b + m}
}

// Scalar maps value in [min, max] onto the blue-to-red hue ramp.
// Out-of-range values are clamped. A degenerate range maps to the low color.
func Scalar(value, min, max float32) RGB {
	t := float32(0)
	if max != min {
		t = clamp01((value - min) / (max - min))
	}
	return HSVToRGB(HueMin+(HueMax-HueMin)*t, 1, 1)
}

// Gradient returns the color of level i among n construction levels,
// fading from orange-red to green.
func Gradient(i, n int) RGB {
	if n <= 0 {
		return RGB{0.8, 0, 0}
	}
	t := float32(i) / float32(n)
	return RGB{R: math32.Max(0.8-t, 0), G: t}
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
