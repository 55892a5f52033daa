package fluid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultSpacingScale is the scale FluidSpacing applies when callers have no
// preference.
const DefaultSpacingScale = 1.5

// spacingFloor is the fraction of the base spacing used at the smallest viewport.
const spacingFloor = 0.8

// Range is a viewport width interval in pixels over which a fluid size
// interpolates.
type Range struct {
	Min float64 `json:"min" yaml:"min" validate:"gte=0"`
	Max float64 `json:"max" yaml:"max" validate:"gtfield=Min"`
}

// DefaultRange returns the viewport range used by FluidFontSize and
// FluidSpacing, 320px to 1200px.
func DefaultRange() Range {
	return Range{Min: 320, Max: 1200}
}

// Validate reports ErrDivisionByZero for a range with equal bounds.
// Inverted ranges are accepted; their interpolation direction is the caller's
// responsibility.
func (r Range) Validate() error {
	if r.Max == r.Min {
		return fmt.Errorf("range %s..%s: %w", formatNumber(r.Min), formatNumber(r.Max), ErrDivisionByZero)
	}
	return nil
}

// Clamp is a fluid sizing expression of the form
//
//	clamp(<min>px, <slope*100>vw + <intercept>px, <max>px)
//
// Slope is expressed in px per px of viewport width.
type Clamp struct {
	Min       float64
	Max       float64
	Slope     float64
	Intercept float64
}

// FluidSize interpolates linearly from min at viewport.Min to max at
// viewport.Max. The bounds of viewport must differ.
func FluidSize(min, max float64, viewport Range) (Clamp, error) {
	if err := viewport.Validate(); err != nil {
		return Clamp{}, err
	}
	return interpolate(min, max, viewport), nil
}

// FluidFontSize is the typography entry point. It is FluidSize over
// DefaultRange.
func FluidFontSize(min, max float64) Clamp {
	return interpolate(min, max, DefaultRange())
}

// FluidSpacing derives a spacing clamp from a base value: base*0.8 at the
// smallest viewport and base*scale at the largest. A scale at or below 0.8
// produces an inverted clamp and is left as is.
func FluidSpacing(base, scale float64) Clamp {
	min, max := spacingBounds(base, scale)
	return interpolate(min, max, DefaultRange())
}

func spacingBounds(base, scale float64) (float64, float64) {
	return base * spacingFloor, base * scale
}

func interpolate(min, max float64, viewport Range) Clamp {
	slope := (max - min) / (viewport.Max - viewport.Min)
	return Clamp{
		Min:       min,
		Max:       max,
		Slope:     slope,
		Intercept: min - slope*viewport.Min,
	}
}

// Preferred returns the middle argument of the clamp.
func (c Clamp) Preferred() string {
	return formatNumber(c.Slope*100) + "vw + " + formatNumber(c.Intercept) + "px"
}

// String renders the CSS expression.
func (c Clamp) String() string {
	return "clamp(" + formatNumber(c.Min) + "px, " + c.Preferred() + ", " + formatNumber(c.Max) + "px)"
}

// At evaluates the expression for a viewport width the way a browser resolves
// clamp(): max(MIN, min(VAL, MAX)).
func (c Clamp) At(width float64) float64 {
	return math.Max(c.Min, math.Min(c.Slope*width+c.Intercept, c.Max))
}

// formatNumber prints a float with the shortest representation that round
// trips, switching to exponent notation outside [1e-6, 1e21) the way
// browsers stringify numbers.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		digits := strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + exp[:1] + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
