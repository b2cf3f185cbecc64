package munsell

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/RMahshie/spectra/internal/spectrum"
)

// Palette resolves Munsell colors against a built database.
type Palette struct {
	db     *Database
	engine *Engine
}

// NewPalette creates a palette over db.
func NewPalette(db *Database) *Palette {
	return &Palette{db: db, engine: NewEngine(db)}
}

// Engine exposes the interpolation engine.
func (p *Palette) Engine() *Engine { return p.engine }

// Swatch resolves c, lowering chroma if the database cannot reach it.
func (p *Palette) Swatch(c Color) (Swatch, error) {
	return p.engine.ResolveWithFallback(c.Hue, c.Value, c.Chroma)
}

// Sunlight resolves c lifted in value.
func (p *Palette) Sunlight(c Color) (Swatch, error) {
	return p.Swatch(c.InSunlight())
}

// Complement resolves the complementary color of c.
func (p *Palette) Complement(c Color) (Swatch, error) {
	return p.Swatch(c.Complement())
}

// Shadow resolves c lowered in value and mixed with the sky ambient color.
func (p *Palette) Shadow(c Color) (Swatch, error) {
	dark, err := p.Swatch(c.shadowed())
	if err != nil {
		return Swatch{}, err
	}
	ambient, err := p.Swatch(sky(dark.Value))
	if err != nil {
		return Swatch{}, err
	}
	mixed, err := spectrum.Mix{dark.Color.P(1 - skyShare), ambient.Color.P(skyShare)}.ColorNamed(dark.Color.Name())
	if err != nil {
		return Swatch{}, err
	}
	dark.Color = mixed
	dark.Imprecise = dark.Imprecise || ambient.Imprecise
	return dark, nil
}

// Mix blends two colors subtractively at aParts:bParts.
func (p *Palette) Mix(a, b Color, aParts, bParts float64) (Swatch, error) {
	left, err := p.Swatch(a)
	if err != nil {
		return Swatch{}, err
	}
	right, err := p.Swatch(b)
	if err != nil {
		return Swatch{}, err
	}
	return mixSwatches(left, right, aParts, bParts)
}

// MixLadder blends a into b over steps colors, endpoints included. Unlike
// NumericalLadder the steps are paint mixes, not points in Munsell space.
func (p *Palette) MixLadder(a, b Color, steps int) ([]Swatch, error) {
	if steps < 2 {
		return nil, &ParseError{Input: fmt.Sprint(steps), Reason: "a ladder needs at least 2 steps"}
	}
	start, err := p.Swatch(a)
	if err != nil {
		return nil, err
	}
	end, err := p.Swatch(b)
	if err != nil {
		return nil, err
	}

	ladder := make([]Swatch, steps)
	ladder[0], ladder[steps-1] = start, end
	for i := 1; i < steps-1; i++ {
		t := float64(i) / float64(steps-1)
		if ladder[i], err = mixSwatches(start, end, 1-t, t); err != nil {
			return nil, err
		}
	}
	return ladder, nil
}

// Match finds the database sample rendering closest to an sRGB color.
func (p *Palette) Match(target colorful.Color) (Swatch, float64, error) {
	s, distance, ok := p.db.Nearest(target)
	if !ok {
		return Swatch{}, 0, &MissingSampleError{}
	}
	hue := NormalizeHue(s.Hue)
	return Swatch{
		Color:           s.Color.Named(NameForColor(hue, s.Value, s.Chroma)),
		Hue:             hue,
		Value:           s.Value,
		Chroma:          s.Chroma,
		AttemptedChroma: s.Chroma,
		Placed:          true,
	}, distance, nil
}

func mixSwatches(a, b Swatch, aParts, bParts float64) (Swatch, error) {
	mixed, err := spectrum.Mix{a.Color.P(aParts), b.Color.P(bParts)}.Color()
	if err != nil {
		return Swatch{}, err
	}
	return Swatch{Color: mixed, Imprecise: a.Imprecise || b.Imprecise}, nil
}
