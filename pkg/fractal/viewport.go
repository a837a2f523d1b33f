package fractal

import (
	"errors"
	"fmt"
	"math/rand"
)

// Parameter bounds a Viewport must stay inside.
const (
	MinZoom = 0.1
	MaxZoom = 50.0

	MinIterations = 100
	MaxIterations = 5000

	MinPower = 2.0
	MaxPower = 4.0

	MinSecondary = 0.1
	MaxSecondary = 0.9
)

// ErrInvalidConfiguration reports a viewport with a parameter outside the
// range the renderer supports.
var ErrInvalidConfiguration = errors.New("invalid viewport configuration")

// A Viewport is one complete description of a frame: which formula to run,
// where in the plane to look, and how to color the result.
//
// Viewport is a plain value. A render works from its own copy and cannot
// observe later edits.
type Viewport struct {
	// Fractal selects the iteration formula.
	Fractal Type

	// Zoom scales the window; the visible span of the plane is
	// proportional to 1/Zoom.
	Zoom float64

	// CenterX and CenterY translate the window across the plane.
	CenterX float64
	CenterY float64

	// MaxIter caps the escape count of a single point.
	MaxIter int

	// Power is the exponent applied to z each step.
	Power float64

	// Secondary shapes the non-classic formulas: feedback strength for
	// Spiral and Phoenix, rotation angle in radians for Flower, and the
	// radial exponent for Butterfly.
	Secondary float64

	// HueOffset rotates the palette, in degrees.
	HueOffset float64
	// Saturation and Value are the fixed S and V of the palette.
	Saturation float64
	Value      float64

	// Width and Height are the output raster size in pixels.
	Width  int
	Height int
}

// DefaultViewport is the state the explorer starts in: the Classic formula
// framed on the Mandelbrot set.
func DefaultViewport() Viewport {
	return Viewport{
		Fractal:    Classic,
		Zoom:       1.0,
		CenterX:    -0.5,
		CenterY:    0.0,
		MaxIter:    1000,
		Power:      2.0,
		Secondary:  0.5,
		HueOffset:  0.0,
		Saturation: 1.0,
		Value:      1.0,
		Width:      800,
		Height:     600,
	}
}

// inRange rejects NaN along with anything outside [lo, hi].
func inRange(x, lo, hi float64) bool {
	return x >= lo && x <= hi
}

// Validate checks every parameter against its supported range. The returned
// error wraps ErrInvalidConfiguration and names the offending field.
func (v Viewport) Validate() error {
	if v.Fractal < 0 || int(v.Fractal) >= numTypes {
		return fmt.Errorf("%w: fractal type %d", ErrInvalidConfiguration, int(v.Fractal))
	}
	if !inRange(v.Zoom, MinZoom, MaxZoom) {
		return fmt.Errorf("%w: zoom %v outside [%v, %v]", ErrInvalidConfiguration, v.Zoom, MinZoom, MaxZoom)
	}
	if v.MaxIter < MinIterations || v.MaxIter > MaxIterations {
		return fmt.Errorf("%w: max iterations %d outside [%d, %d]", ErrInvalidConfiguration, v.MaxIter, MinIterations, MaxIterations)
	}
	if !inRange(v.Power, MinPower, MaxPower) {
		return fmt.Errorf("%w: power %v outside [%v, %v]", ErrInvalidConfiguration, v.Power, MinPower, MaxPower)
	}
	if !inRange(v.Secondary, MinSecondary, MaxSecondary) {
		return fmt.Errorf("%w: secondary parameter %v outside [%v, %v]", ErrInvalidConfiguration, v.Secondary, MinSecondary, MaxSecondary)
	}
	if !(v.HueOffset >= 0 && v.HueOffset < 360) {
		return fmt.Errorf("%w: hue offset %v outside [0, 360)", ErrInvalidConfiguration, v.HueOffset)
	}
	if !inRange(v.Saturation, 0, 1) {
		return fmt.Errorf("%w: saturation %v outside [0, 1]", ErrInvalidConfiguration, v.Saturation)
	}
	if !inRange(v.Value, 0, 1) {
		return fmt.Errorf("%w: value %v outside [0, 1]", ErrInvalidConfiguration, v.Value)
	}
	if v.Width < 1 || v.Height < 1 {
		return fmt.Errorf("%w: raster %dx%d", ErrInvalidConfiguration, v.Width, v.Height)
	}
	return nil
}

// PointAt maps the pixel at (x, y) to its point on the complex plane under
// the current zoom and center.
func (v Viewport) PointAt(x, y int) complex128 {
	scale := 2.5 / v.Zoom
	re := float64(x)/float64(v.Width)*3.5*scale - 2.5*scale + v.CenterX
	im := float64(y)/float64(v.Height)*2.0*scale - 1.0*scale + v.CenterY
	return complex(re, im)
}

// Panned returns a copy whose center has been dragged by (dx, dy) pixels.
// Dragging right moves the window left, like pulling the plane along with
// the cursor.
func (v Viewport) Panned(dx, dy float64) Viewport {
	scale := 2.5 / v.Zoom
	v.CenterX -= dx * scale * 0.5 / float64(v.Width)
	v.CenterY -= dy * scale * 0.5 / float64(v.Height)
	return v
}

// Zoomed returns a copy zoomed one scroll notch in or out. A notch that
// would leave the supported zoom range is rejected: the receiver comes back
// unchanged with ok false.
func (v Viewport) Zoomed(scroll float64) (Viewport, bool) {
	factor := 0.95
	if scroll > 0 {
		factor = 1.05
	}

	zoomed := v.Zoom * factor
	if zoomed < MinZoom || zoomed > MaxZoom {
		return v, false
	}

	v.Zoom = zoomed
	return v, true
}

// Randomized returns a copy with the palette and formula parameters redrawn
// from rng. Zoom, center, and the iteration cap are kept so the view stays
// put.
func (v Viewport) Randomized(rng *rand.Rand) Viewport {
	v.HueOffset = rng.Float64() * 360.0
	v.Saturation = 0.7 + rng.Float64()*0.3
	v.Value = 0.7 + rng.Float64()*0.3
	v.Power = 2.0 + rng.Float64()*2.0
	v.Secondary = 0.1 + rng.Float64()*0.8
	v.Fractal = Type(rng.Intn(numTypes))
	return v
}
