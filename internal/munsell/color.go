package munsell

import (
	"fmt"
	"math"
)

const (
	// skyHue is "5PB", the ambient color that fills shadows.
	skyHue    = 75.0
	skyChroma = 10.0
	skyShare  = 0.3

	shadowFactor = 0.8
	sunlightLift = 2.0
)

// Color is a point in Munsell space. Hue is normalized into [0,100); Chroma is
// the requested chroma, which resolution may have to lower.
type Color struct {
	Hue    float64
	Value  float64
	Chroma float64
}

// NewColor validates coordinates: value in [0,10], chroma non-negative.
func NewColor(hue, value, chroma float64) (Color, error) {
	return newColor(fmt.Sprintf("%v %v/%v", hue, value, chroma), hue, value, chroma)
}

func newColor(input string, hue, value, chroma float64) (Color, error) {
	switch {
	case math.IsNaN(hue) || math.IsInf(hue, 0):
		return Color{}, &ParseError{Input: input, Reason: "hue must be finite"}
	case value < 0 || value > 10 || math.IsNaN(value):
		return Color{}, &ParseError{Input: input, Reason: "value must be between 0 and 10"}
	case chroma < 0 || math.IsNaN(chroma) || math.IsInf(chroma, 0):
		return Color{}, &ParseError{Input: input, Reason: "chroma must be non-negative"}
	}
	return Color{Hue: NormalizeHue(hue), Value: value, Chroma: chroma}, nil
}

// Name formats the color, e.g. "5.0R 3.0/7.0".
func (c Color) Name() string { return NameForColor(c.Hue, c.Value, c.Chroma) }

func (c Color) String() string { return c.Name() }

// Complement is the same value and chroma at the opposite hue. It mixes towards
// gray but is not guaranteed to reach it.
func (c Color) Complement() Color {
	c.Hue = Complement(c.Hue)
	return c
}

// InSunlight lifts the value as if lit by direct sun.
func (c Color) InSunlight() Color {
	c.Value = sunlightLift + shadowFactor*c.Value
	return c
}

// shadowed lowers the value; Palette.Shadow adds the sky color on top.
func (c Color) shadowed() Color {
	c.Value = shadowFactor * c.Value
	return c
}

// sky is the ambient color lighting a shadow at value.
func sky(value float64) Color {
	return Color{Hue: skyHue, Value: value, Chroma: skyChroma}
}
