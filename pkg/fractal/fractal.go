// Package fractal holds the viewport state of an escape-time fractal
// explorer and the iteration formulas that decide how quickly each point of
// the complex plane diverges.
package fractal

import (
	"fmt"
	"strings"
)

// Type selects the escape-time formula Iterate applies.
type Type int

const (
	// Classic is the familiar recurrence z^power + c.
	Classic Type = iota
	// Spiral feeds a scaled copy of the previous iterate back into the sum.
	Spiral
	// Flower rotates z*sin(z) + c by a fixed angle each step.
	Flower
	// Phoenix subtracts a scaled sine of the previous iterate.
	Phoenix
	// Butterfly rebuilds z from polar form, leaving the origin fixed.
	Butterfly
)

// numTypes is the count of selectable formulas.
const numTypes = int(Butterfly) + 1

var typeNames = [numTypes]string{"Classic", "Spiral", "Flower", "Phoenix", "Butterfly"}

func (t Type) String() string {
	if t < 0 || int(t) >= numTypes {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType matches a formula by its display name, ignoring case.
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if strings.EqualFold(s, name) {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown fractal type %q", ErrInvalidConfiguration, s)
}
