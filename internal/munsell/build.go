package munsell

import (
	"errors"
	"math"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/RMahshie/spectra/internal/spectrum"
)

const (
	hueStep    = 2.5
	chromaStep = 2.0
	grayChroma = 2.0 // chroma of the pair mixed to find a hue's gray
	graySteps  = 100 // proportion resolution of the gray search
)

// extremeChromas are the chromas given a canonical black or white sample at
// value 0 and value 10 for every hue.
var extremeChromas = []float64{0, 2, 4, 6}

// Canonical value-0 and value-10 spectra. Real surfaces at the extremes carry
// no chroma, so every chroma there reuses the same curve.
var (
	blackSpectrum = spectrum.Spectrum{
		0.016000, 0.015984, 0.015936, 0.015856, 0.015745, 0.015604,
		0.015434, 0.015236, 0.015012, 0.014764, 0.014494, 0.014204,
		0.013895, 0.013572, 0.013236, 0.012890, 0.012537, 0.012179,
		0.011821, 0.011463, 0.011110, 0.010764, 0.010428, 0.010105,
		0.009796, 0.009506, 0.009236, 0.008988, 0.008764, 0.008566,
		0.008396, 0.008255, 0.008144, 0.008064, 0.008016, 0.008000,
	}
	whiteSpectrum = spectrum.Spectrum{
		0.810000, 0.825031, 0.836043, 0.844177, 0.850249, 0.854842,
		0.858376, 0.861151, 0.863383, 0.865225, 0.866788, 0.868150,
		0.869370, 0.870487, 0.871530, 0.872520, 0.873473, 0.874398,
		0.875305, 0.876197, 0.877079, 0.877954, 0.878824, 0.879691,
		0.880555, 0.881417, 0.882277, 0.883137, 0.883996, 0.884854,
		0.885712, 0.886570, 0.887427, 0.888285, 0.889142, 0.890000,
	}
)

// Build indexes the reference samples and runs the derivation pipeline:
// value extremes, over-chroma extrapolation, then the gray axis. The result
// is complete before it is returned and never modified afterwards.
func Build(refs []Sample) (*Database, error) {
	if len(refs) == 0 {
		return nil, &DataLoadError{Source: "reference samples", Err: errors.New("no samples")}
	}

	db := NewDatabase()
	for _, s := range refs {
		s.Origin = OriginReference
		db.insert(s)
	}
	db.addExtremes()
	db.deriveOverChroma()
	db.deriveGrays()

	log.Info().
		Int("samples", db.Len()).
		Int("reference", db.Count(OriginReference)).
		Int("extreme", db.Count(OriginExtreme)).
		Int("overChroma", db.Count(OriginOverChroma)).
		Int("gray", db.Count(OriginGray)).
		Msg("Sample database built")
	return db, nil
}

func (db *Database) addExtremes() {
	for step := 1; float64(step)*hueStep <= 100; step++ {
		hue := float64(step) * hueStep
		for _, chroma := range extremeChromas {
			db.insert(Sample{Hue: hue, Value: 0, Chroma: chroma, Origin: OriginExtreme,
				Color: spectrum.MustColor(blackSpectrum, NameForColor(hue, 0, chroma))})
			db.insert(Sample{Hue: hue, Value: 10, Chroma: chroma, Origin: OriginExtreme,
				Color: spectrum.MustColor(whiteSpectrum, NameForColor(hue, 10, chroma))})
		}
	}
}

// referenceMaxima maps hue -> value -> highest measured chroma.
func (db *Database) referenceMaxima() map[coord]map[coord]float64 {
	maxima := make(map[coord]map[coord]float64)
	for _, s := range db.samples {
		if s.Origin != OriginReference {
			continue
		}
		values, ok := maxima[key(s.Hue)]
		if !ok {
			values = make(map[coord]float64)
			maxima[key(s.Hue)] = values
		}
		if s.Chroma > values[key(s.Value)] {
			values[key(s.Value)] = s.Chroma
		}
	}
	return maxima
}

func (db *Database) referenceSample(hue, value, chroma float64) (Sample, bool) {
	s, err := db.Lookup(hue, value, chroma)
	return s, err == nil && s.Origin == OriginReference
}

// deriveOverChroma adds one chroma step past the measured maximum at each
// hue/value by extrapolating along value: a + (a - b), with a the nearer and b
// the farther same-hue neighbour at the target chroma. The neighbours' maxima
// must not shrink moving away from the target value.
func (db *Database) deriveOverChroma() {
	maxima := db.referenceMaxima()
	for _, hue := range db.Hues() {
		values := maxima[key(hue)]
		for _, value := range db.Values(hue) {
			top, ok := values[key(value)]
			if !ok {
				continue
			}
			target := top + chromaStep
			if db.Has(hue, value, target) {
				continue
			}
			for _, dir := range []float64{-1, 1} {
				nearValue, farValue := value+dir, value+2*dir
				nearMax, okNear := values[key(nearValue)]
				farMax, okFar := values[key(farValue)]
				if !okNear || !okFar || nearMax <= top || farMax < nearMax {
					continue
				}
				a, okA := db.referenceSample(hue, nearValue, target)
				b, okB := db.referenceSample(hue, farValue, target)
				if !okA || !okB {
					continue
				}
				name := NameForColor(hue, value, target)
				db.insert(Sample{Hue: hue, Value: value, Chroma: target, Origin: OriginOverChroma,
					Color: spectrum.MustColor(spectrum.Extrapolate(a.Color.Spectrum(), b.Color.Spectrum()), name)})
				break
			}
		}
	}
}

// deriveGrays adds chroma 0 at every hue/value lacking it. The hue's chroma-2
// sample is mixed against its complement's at the proportion that renders most
// neutral, and the result is flattened to its mean reflectance.
func (db *Database) deriveGrays() {
	for _, hue := range db.Hues() {
		for _, value := range db.Values(hue) {
			if db.Has(hue, value, 0) {
				continue
			}
			a, errA := db.Lookup(hue, value, grayChroma)
			b, errB := db.Lookup(Complement(hue), value, grayChroma)
			if errA != nil || errB != nil {
				log.Debug().Float64("hue", hue).Float64("value", value).Msg("No chroma pair for gray sample")
				continue
			}
			name := NameForColor(hue, value, 0)
			db.insert(Sample{Hue: hue, Value: value, Chroma: 0, Origin: OriginGray,
				Color: spectrum.MustColor(neutralBetween(a.Color, b.Color), name)})
		}
	}
}

// neutralBetween searches the a:b proportion whose mix has the smallest RGB
// spread and returns that mix flattened to its mean.
func neutralBetween(a, b spectrum.Color) spectrum.Spectrum {
	best := a
	bestSpread := math.Inf(1)
	for step := 0; step <= graySteps; step++ {
		p := float64(step) / graySteps
		mixed, err := spectrum.Mix{a.P(p), b.P(1 - p)}.ColorNamed("")
		if err != nil {
			continue
		}
		rgb := mixed.RGB()
		channels := rgb[:]
		sort.Float64s(channels)
		if spread := channels[2] - channels[0]; spread < bestSpread {
			best, bestSpread = mixed, spread
		}
	}
	return spectrum.Flat(best.Spectrum().Mean())
}
