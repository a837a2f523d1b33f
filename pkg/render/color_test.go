package render

import (
	"github.com/OxFEE1DEAD/fractalrs/pkg/fractal"
	"github.com/lucasb-eyer/go-colorful"
	"image/color"
	"testing"
)

func TestHSVSectors(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		r, g, b uint8
	}{
		{name: "red", h: 0, s: 1, v: 1, r: 255, g: 0, b: 0},
		{name: "yellow", h: 60, s: 1, v: 1, r: 255, g: 255, b: 0},
		{name: "green", h: 120, s: 1, v: 1, r: 0, g: 255, b: 0},
		{name: "cyan", h: 180, s: 1, v: 1, r: 0, g: 255, b: 255},
		{name: "blue", h: 240, s: 1, v: 1, r: 0, g: 0, b: 255},
		{name: "magenta", h: 300, s: 1, v: 1, r: 255, g: 0, b: 255},
		{name: "white", h: 200, s: 0, v: 1, r: 255, g: 255, b: 255},
		{name: "black", h: 200, s: 1, v: 0, r: 0, g: 0, b: 0},
		{name: "grey", h: 0, s: 0, v: 0.5, r: 127, g: 127, b: 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := hsvToRGB(tt.h, tt.s, tt.v)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("hsvToRGB(%v, %v, %v) = (%d, %d, %d), want (%d, %d, %d)",
					tt.h, tt.s, tt.v, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

// Channels truncate toward zero rather than rounding.
func TestHSVTruncates(t *testing.T) {
	r, g, b := hsvToRGB(0, 1, 0.999)
	if r != 254 || g != 0 || b != 0 {
		t.Errorf("hsvToRGB(0, 1, 0.999) = (%d, %d, %d), want (254, 0, 0)", r, g, b)
	}

	r, g, b = hsvToRGB(0, 0.5, 0.5)
	if r != 127 || g != 63 || b != 63 {
		t.Errorf("hsvToRGB(0, 0.5, 0.5) = (%d, %d, %d), want (127, 63, 63)", r, g, b)
	}
}

func TestHSVMatchesColorful(t *testing.T) {
	for h := 0.0; h < 360.0; h += 30.0 {
		for s := 0.0; s <= 1.0; s += 0.25 {
			for v := 0.0; v <= 1.0; v += 0.25 {
				r, g, b := hsvToRGB(h, s, v)
				cr, cg, cb := colorful.Hsv(h, s, v).RGB255()

				if absDiff(r, cr) > 1 || absDiff(g, cg) > 1 || absDiff(b, cb) > 1 {
					t.Errorf("hsvToRGB(%v, %v, %v) = (%d, %d, %d), colorful says (%d, %d, %d)",
						h, s, v, r, g, b, cr, cg, cb)
				}
			}
		}
	}
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func TestColorizeInteriorIsBlack(t *testing.T) {
	v := fractal.DefaultViewport()
	black := color.RGBA{A: 255}

	for _, hue := range []float64{0, 90, 210.5, 359} {
		v.HueOffset = hue
		if got := Colorize(v.MaxIter, v); got != black {
			t.Errorf("Colorize(%d) with hue %v = %v, want black", v.MaxIter, hue, got)
		}
	}
}

func TestColorizeSweepsHueOnce(t *testing.T) {
	v := fractal.DefaultViewport()
	v.MaxIter = 360

	// With a full-circle cap each count advances the hue by one degree.
	r, g, b := hsvToRGB(90, v.Saturation, v.Value)
	want := color.RGBA{R: r, G: g, B: b, A: 255}
	if got := Colorize(90, v); got != want {
		t.Errorf("Colorize(90) = %v, want %v", got, want)
	}
}

func TestColorizeHueWraps(t *testing.T) {
	v := fractal.DefaultViewport()
	v.MaxIter = 1000
	v.HueOffset = 350

	// 250/1000 of the wheel is 90 degrees; 350 + 90 wraps to 80.
	r, g, b := hsvToRGB(80, v.Saturation, v.Value)
	want := color.RGBA{R: r, G: g, B: b, A: 255}
	if got := Colorize(250, v); got != want {
		t.Errorf("Colorize(250) with offset 350 = %v, want %v", got, want)
	}
}
