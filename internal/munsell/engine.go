package munsell

import (
	"errors"
	"math"

	"github.com/RMahshie/spectra/internal/spectrum"
)

// MaxDepth bounds axis recursion to depths 0 through MaxDepth-1. A full hue,
// value, chroma descent ends its lookups at depth 3.
const MaxDepth = 4

// SampleSource is the read side of the sample database.
type SampleSource interface {
	HasHue(hue float64) bool
	HasValue(hue, value float64) bool
	Lookup(hue, value, chroma float64) (Sample, error)
}

// axis names the coordinate an interpolation step works along.
type axis int

const (
	axisNone axis = iota // exact sample
	axisHue
	axisValue
	axisChroma
)

// Swatch is a resolved color: its spectrum plus the coordinates that produced
// it. Chroma is the chroma actually resolved and AttemptedChroma the one
// asked for; Imprecise is set when they differ. Placed is false for swatches
// mixed from several colors, which have no single Munsell position.
type Swatch struct {
	Color           spectrum.Color
	Hue             float64
	Value           float64
	Chroma          float64
	AttemptedChroma float64
	Imprecise       bool
	Placed          bool
}

// Stats renders the swatch, folding resolution imprecision into the flags.
func (s Swatch) Stats() spectrum.Stats {
	stats := s.Color.Stats()
	stats.Imprecise = stats.Imprecise || s.Imprecise
	return stats
}

// Engine resolves arbitrary coordinates to spectra by mixing neighbouring
// samples one axis at a time: hue first, then value, then chroma. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	samples SampleSource
}

// NewEngine creates an engine over samples.
func NewEngine(samples SampleSource) *Engine {
	return &Engine{samples: samples}
}

// Resolve returns the spectrum at the given coordinates. Exact samples are
// returned as stored; anything else is interpolated. A MissingSampleError
// carries the requested coordinates.
func (e *Engine) Resolve(hue, value, chroma float64) (spectrum.Color, error) {
	c, err := e.resolve(sampleHue(hue), value, chroma, 0)
	var missing *MissingSampleError
	if errors.As(err, &missing) {
		return spectrum.Color{}, &MissingSampleError{Hue: NormalizeHue(hue), Value: value, Chroma: chroma}
	}
	return c, err
}

// ResolveWithFallback resolves the coordinates, stepping chroma down to the
// next lower even chroma each time a sample is missing. Once a chroma below 1
// fails the error is returned as is.
func (e *Engine) ResolveWithFallback(hue, value, chroma float64) (Swatch, error) {
	attempt := chroma
	for {
		c, err := e.Resolve(hue, value, attempt)
		if err == nil {
			hue = NormalizeHue(hue)
			return Swatch{
				Color:           c.Named(NameForColor(hue, value, attempt)),
				Hue:             hue,
				Value:           value,
				Chroma:          attempt,
				AttemptedChroma: chroma,
				Imprecise:       attempt != chroma,
				Placed:          true,
			}, nil
		}
		var missing *MissingSampleError
		if !errors.As(err, &missing) || attempt < 1 {
			return Swatch{}, err
		}
		attempt = lowerChroma(attempt)
	}
}

func (e *Engine) resolve(hue, value, chroma float64, depth int) (spectrum.Color, error) {
	if depth >= MaxDepth {
		return spectrum.Color{}, &MissingSampleError{Hue: hue, Value: value, Chroma: chroma}
	}
	missing := e.missingAxis(hue, value)
	if missing == axisNone {
		s, err := e.samples.Lookup(hue, value, chroma)
		if err == nil {
			return s.Color, nil
		}
		missing = axisChroma
	}
	return e.interpolate(missing, hue, value, chroma, depth)
}

// missingAxis picks the first axis, in hue, value order, without a sample.
// axisNone means the chroma axis is the only one left to check.
func (e *Engine) missingAxis(hue, value float64) axis {
	switch {
	case !e.samples.HasHue(hue):
		return axisHue
	case !e.samples.HasValue(hue, value):
		return axisValue
	default:
		return axisNone
	}
}

// interpolate mixes the two neighbours along a, each weighted by its distance
// from the other: Mix(high.p(x-low), low.p(high-x)).
func (e *Engine) interpolate(a axis, hue, value, chroma float64, depth int) (spectrum.Color, error) {
	coords := [...]float64{axisHue: hue, axisValue: value, axisChroma: chroma}
	x := coords[a]
	low, high := neighbours(a, x)
	if low == high {
		return spectrum.Color{}, &MissingSampleError{Hue: hue, Value: value, Chroma: chroma}
	}

	at := func(pos float64) (spectrum.Color, error) {
		next := coords
		next[a] = pos
		return e.resolve(sampleHue(next[axisHue]), next[axisValue], next[axisChroma], depth+1)
	}
	lowColor, err := at(low)
	if err != nil {
		return spectrum.Color{}, err
	}
	highColor, err := at(high)
	if err != nil {
		return spectrum.Color{}, err
	}
	return spectrum.Mix{highColor.P(x - low), lowColor.P(high - x)}.ColorNamed(NameForColor(hue, value, chroma))
}

// neighbours brackets x with the sampled positions on an axis: hues every 2.5,
// integer values with the empty value 1 bridged by 0 and 2, even chromas.
func neighbours(a axis, x float64) (low, high float64) {
	switch a {
	case axisHue:
		return math.Floor(x/hueStep) * hueStep, math.Ceil(x/hueStep) * hueStep
	case axisValue:
		low, high = math.Floor(x), math.Ceil(x)
		if low == 1 {
			low = 0
		}
		if high == 1 {
			high = 2
		}
		return low, high
	default:
		return math.Floor(x/chromaStep) * chromaStep, math.Ceil(x/chromaStep) * chromaStep
	}
}

// lowerChroma is the next even chroma strictly below c.
func lowerChroma(c float64) float64 {
	next := math.Floor(c/chromaStep) * chromaStep
	if next >= c {
		next -= chromaStep
	}
	return next
}
