package spectrum

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// gamma is the per-channel compression applied after projection.
const gamma = 2.2

// Color is a named, weighted reflectance curve. The spectrum is private to the
// Color and never mutated, so copies made by P and Named may share it.
type Color struct {
	spectrum   Spectrum
	proportion float64
	name       string
}

// Projection is the result of projecting a spectrum onto the observer curves.
type Projection struct {
	Linear  [3]float64 // raw dot products, may fall outside [0,1]
	RGB     [3]float64 // clamped and gamma-compressed
	Clipped bool       // a linear channel fell outside [0,1]
}

// Stats is a snapshot of how a Color renders.
type Stats struct {
	Name      string
	RGB       [3]float64
	RGB255    [3]int
	Hex       string
	Imprecise bool
	Clipped   bool
}

// NewColor copies s into a Color with proportion 1.
func NewColor(s Spectrum, name string) (Color, error) {
	if err := s.Validate(); err != nil {
		return Color{}, err
	}
	return Color{spectrum: s.Clone(), proportion: 1, name: name}, nil
}

// MustColor is NewColor for spectra known to be on the grid.
func MustColor(s Spectrum, name string) Color {
	c, err := NewColor(s, name)
	if err != nil {
		panic(err)
	}
	return c
}

// Spectrum returns a copy of the reflectance curve.
func (c Color) Spectrum() Spectrum { return c.spectrum.Clone() }

// Proportion is the mixing weight.
func (c Color) Proportion() float64 { return c.proportion }

// Name is the display name.
func (c Color) Name() string { return c.name }

// P returns the same color with a different mixing weight.
func (c Color) P(weight float64) Color {
	c.proportion = weight
	return c
}

// Named returns the same color under another name.
func (c Color) Named(name string) Color {
	c.name = name
	return c
}

// Project computes the observer dot products and their compressed RGB.
func (c Color) Project() Projection {
	var p Projection
	for i, observer := range [3]Spectrum{redObserver, greenObserver, blueObserver} {
		x := c.spectrum.dot(observer)
		p.Linear[i] = x
		if x < 0 || x > 1 {
			p.Clipped = true
		}
		p.RGB[i] = math.Pow(math.Max(math.Min(x, 1), 0), 1/gamma)
	}
	return p
}

// RGB returns the compressed channels in [0,1].
func (c Color) RGB() [3]float64 { return c.Project().RGB }

// RGB255 returns the channels rounded to 0..255.
func (c Color) RGB255() [3]int {
	r, g, b := c.rendered().RGB255()
	return [3]int{int(r), int(g), int(b)}
}

// Hex returns the rounded RGB as "rrggbb".
func (c Color) Hex() string {
	return strings.TrimPrefix(c.rendered().Hex(), "#")
}

// Lab returns the CIE L*a*b* coordinates of the rendered color.
func (c Color) Lab() (l, a, b float64) {
	return c.rendered().Lab()
}

// Stats snapshots the rendering of c. Imprecise is set when the projection
// had to clip.
func (c Color) Stats() Stats {
	p := c.Project()
	rendered := colorful.Color{R: p.RGB[0], G: p.RGB[1], B: p.RGB[2]}
	r, g, b := rendered.RGB255()
	return Stats{
		Name:      c.name,
		RGB:       p.RGB,
		RGB255:    [3]int{int(r), int(g), int(b)},
		Hex:       strings.TrimPrefix(rendered.Hex(), "#"),
		Imprecise: p.Clipped,
		Clipped:   p.Clipped,
	}
}

func (c Color) String() string {
	rgb := c.RGB()
	return fmt.Sprintf("%s: rgb(%.2f, %.2f, %.2f)", c.name, rgb[0], rgb[1], rgb[2])
}

func (c Color) rendered() colorful.Color {
	rgb := c.RGB()
	return colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}
}
