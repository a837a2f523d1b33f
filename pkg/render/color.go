package render

import (
	"github.com/OxFEE1DEAD/fractalrs/pkg/fractal"
	"image/color"
	"math"
)

// Colorize maps an escape count to its display color. Points that exhaust
// the iteration cap are black; every other count sweeps the hue wheel once
// over the cap, shifted by the viewport's hue offset.
func Colorize(n int, v fractal.Viewport) color.RGBA {
	if n == v.MaxIter {
		return color.RGBA{A: 255}
	}

	hue := math.Mod(float64(n)/float64(v.MaxIter)*360.0+v.HueOffset, 360.0)
	r, g, b := hsvToRGB(hue, v.Saturation, v.Value)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// hsvToRGB converts h in degrees and s, v in [0, 1] to 8-bit channels by
// walking the six hue sectors.
func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	c := v * s
	x := c * (1.0 - math.Abs(math.Mod(h/60.0, 2.0)-1.0))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60.0:
		r, g, b = c, x, 0
	case h < 120.0:
		r, g, b = x, c, 0
	case h < 180.0:
		r, g, b = 0, c, x
	case h < 240.0:
		r, g, b = 0, x, c
	case h < 300.0:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return channel(r + m), channel(g + m), channel(b + m)
}

// channel scales a [0, 1] component to its 8-bit value, truncating toward
// zero and clamping the result.
func channel(f float64) uint8 {
	n := int(f * 255.0)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}
