package fractal

import (
	"math"
	"math/cmplx"
)

// Iterate runs the viewport's formula from z = 0 and reports the step at
// which the orbit of c escapes |z|^2 > 4, or MaxIter if it never does.
//
// The escape test happens before each update. Because the orbit always
// starts at the origin, the count of an immediately escaping point is 1,
// never 0.
func Iterate(c complex128, v Viewport) int {
	var z, prev complex128

	for i := 0; i < v.MaxIter; i++ {
		if normSqr(z) > 4.0 {
			return i
		}
		z, prev = v.step(z, prev, c)
	}

	return v.MaxIter
}

// step advances the orbit one iteration, carrying the previous iterate for
// the formulas that feed it back.
func (v Viewport) step(z, prev, c complex128) (complex128, complex128) {
	switch v.Fractal {
	case Classic:
		return pow(z, v.Power) + c, prev
	case Spiral:
		return pow(z, v.Power) + c + prev*complex(v.Secondary, 0), z
	case Flower:
		sin, cos := math.Sincos(v.Secondary)
		return (z*cmplx.Sin(z) + c) * complex(cos, sin), prev
	case Phoenix:
		return pow(z, v.Power) - cmplx.Sin(prev)*complex(v.Secondary, 0) + c, z
	case Butterfly:
		// The origin has no angle, so the orbit stays put there.
		r := cmplx.Abs(z)
		if r == 0 {
			return z, prev
		}
		sin, cos := math.Sincos(cmplx.Phase(z) * v.Power)
		m := math.Pow(r, v.Secondary)
		return complex(m*cos, m*sin) + c, prev
	default:
		panic("fractal: unknown fractal type " + v.Fractal.String())
	}
}

// pow raises z to a real power on the principal branch: the magnitude is
// raised to p and the argument multiplied by p.
func pow(z complex128, p float64) complex128 {
	r := cmplx.Abs(z)
	if r == 0 {
		return 0
	}
	sin, cos := math.Sincos(cmplx.Phase(z) * p)
	m := math.Pow(r, p)
	return complex(m*cos, m*sin)
}

func normSqr(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}
