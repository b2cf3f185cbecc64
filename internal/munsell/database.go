package munsell

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/RMahshie/spectra/internal/spectrum"
)

// Origin records how a sample entered the database.
type Origin int

const (
	OriginReference  Origin = iota // measured, from the reference dataset
	OriginExtreme                  // canonical black or white at value 0 or 10
	OriginOverChroma               // extrapolated one chroma step past the measured maximum
	OriginGray                     // chroma 0, derived from a hue and its complement
)

func (o Origin) String() string {
	switch o {
	case OriginReference:
		return "reference"
	case OriginExtreme:
		return "extreme"
	case OriginOverChroma:
		return "over-chroma"
	case OriginGray:
		return "gray"
	default:
		return "unknown"
	}
}

// Sample is a reflectance curve pinned to exact Munsell coordinates.
type Sample struct {
	Hue, Value, Chroma float64
	Color              spectrum.Color
	Origin             Origin

	rendered colorful.Color
}

// coord quantizes an axis coordinate so float noise (7.5+10 vs 17.5) cannot
// split a key.
type coord int64

func key(x float64) coord { return coord(math.Round(x * 1000)) }

type hueIndex struct {
	hue    float64
	values map[coord]*valueIndex
}

type valueIndex struct {
	value   float64
	chromas map[coord]*Sample
	max     *Sample
}

// Database indexes samples by hue, then value, then chroma. It is filled by
// NewDatabase or Build and read-only afterwards, so concurrent reads need no
// locking.
type Database struct {
	samples []*Sample
	hues    map[coord]*hueIndex
}

// NewDatabase indexes samples as given, without the derivation pipeline. Use
// Build for a database fit for serving.
func NewDatabase(samples ...Sample) *Database {
	db := &Database{hues: make(map[coord]*hueIndex)}
	for _, s := range samples {
		db.insert(s)
	}
	return db
}

// insert adds s unless its coordinates are taken. Value 1 is never stored:
// the reference data has no such row and resolution treats it as a gap.
func (db *Database) insert(s Sample) bool {
	s.Hue = sampleHue(s.Hue)
	if s.Value == 1 {
		return false
	}

	h, ok := db.hues[key(s.Hue)]
	if !ok {
		h = &hueIndex{hue: s.Hue, values: make(map[coord]*valueIndex)}
		db.hues[key(s.Hue)] = h
	}
	v, ok := h.values[key(s.Value)]
	if !ok {
		v = &valueIndex{value: s.Value, chromas: make(map[coord]*Sample)}
		h.values[key(s.Value)] = v
	}
	if _, taken := v.chromas[key(s.Chroma)]; taken {
		return false
	}

	rgb := s.Color.RGB()
	s.rendered = colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}
	stored := &s
	v.chromas[key(s.Chroma)] = stored
	if v.max == nil || s.Chroma > v.max.Chroma {
		v.max = stored
	}
	db.samples = append(db.samples, stored)
	return true
}

func (db *Database) value(hue, value float64) (*valueIndex, bool) {
	if value == 1 {
		return nil, false
	}
	h, ok := db.hues[key(sampleHue(hue))]
	if !ok {
		return nil, false
	}
	v, ok := h.values[key(value)]
	return v, ok
}

// HasHue reports whether any sample exists at hue.
func (db *Database) HasHue(hue float64) bool {
	_, ok := db.hues[key(sampleHue(hue))]
	return ok
}

// HasValue reports whether any sample exists at hue and value. It is always
// false at value 1.
func (db *Database) HasValue(hue, value float64) bool {
	_, ok := db.value(hue, value)
	return ok
}

// Has reports whether an exact sample exists.
func (db *Database) Has(hue, value, chroma float64) bool {
	_, err := db.Lookup(hue, value, chroma)
	return err == nil
}

// Lookup fetches an exact sample.
func (db *Database) Lookup(hue, value, chroma float64) (Sample, error) {
	if v, ok := db.value(hue, value); ok {
		if s, ok := v.chromas[key(chroma)]; ok {
			return *s, nil
		}
	}
	return Sample{}, &MissingSampleError{Hue: hue, Value: value, Chroma: chroma}
}

// MaxChroma fetches the highest-chroma sample at hue and value.
func (db *Database) MaxChroma(hue, value float64) (Sample, error) {
	if v, ok := db.value(hue, value); ok {
		return *v.max, nil
	}
	return Sample{}, &MissingSampleError{Hue: hue, Value: value, Chroma: math.Inf(1)}
}

// Len is the number of samples.
func (db *Database) Len() int { return len(db.samples) }

// Count is the number of samples of one origin.
func (db *Database) Count(origin Origin) int {
	n := 0
	for _, s := range db.samples {
		if s.Origin == origin {
			n++
		}
	}
	return n
}

// Hues lists the sampled hues in ascending order.
func (db *Database) Hues() []float64 {
	hues := make([]float64, 0, len(db.hues))
	for _, h := range db.hues {
		hues = append(hues, h.hue)
	}
	sort.Float64s(hues)
	return hues
}

// Values lists the sampled values at hue in ascending order.
func (db *Database) Values(hue float64) []float64 {
	h, ok := db.hues[key(sampleHue(hue))]
	if !ok {
		return nil
	}
	values := make([]float64, 0, len(h.values))
	for _, v := range h.values {
		values = append(values, v.value)
	}
	sort.Float64s(values)
	return values
}

// Nearest finds the sample whose rendering is closest to target in CIE Lab.
func (db *Database) Nearest(target colorful.Color) (Sample, float64, bool) {
	var best *Sample
	bestDistance := math.Inf(1)
	for _, s := range db.samples {
		if d := s.rendered.DistanceLab(target); d < bestDistance {
			best, bestDistance = s, d
		}
	}
	if best == nil {
		return Sample{}, 0, false
	}
	return *best, bestDistance, true
}
