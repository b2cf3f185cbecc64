// Package pigment loads measured paint pigments onto the spectral grid.
package pigment

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/RMahshie/spectra/internal/munsell"
	"github.com/RMahshie/spectra/internal/spectrum"
)

// Instrument readings are percentages sitting on an 18 point floor.
const (
	readingFloor = 18.0
	readingSpan  = 100.0
	minReading   = 18.001
)

// Pigment is one catalog entry resampled onto the grid.
type Pigment struct {
	ID    string
	Name  string
	Color spectrum.Color
}

var slugRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Slug derives a catalog ID from a display name: "Titanium White" is
// "titanium-white".
func Slug(name string) string {
	return strings.Trim(slugRegex.ReplaceAllString(strings.ToLower(name), "-"), "-")
}

// Calibrate converts an instrument reading to reflectance in (0,1].
func Calibrate(raw float64) float64 {
	return (math.Min(readingFloor+readingSpan, math.Max(raw, minReading)) - readingFloor) / readingSpan
}

// Load reads a catalog CSV: a "wavelength" column then one column of readings
// per pigment, one row per measured wavelength.
func Load(r io.Reader, source string) ([]Pigment, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, &munsell.DataLoadError{Source: source, Line: 1, Err: err}
	}
	if len(header) < 2 || !strings.EqualFold(strings.TrimSpace(header[0]), "wavelength") {
		return nil, &munsell.DataLoadError{Source: source, Line: 1, Err: errors.New(`want a "wavelength" column followed by pigment columns`)}
	}

	names := make([]string, len(header)-1)
	ids := make([]string, len(names))
	seen := make(map[string]bool, len(names))
	for i, name := range header[1:] {
		names[i] = strings.TrimSpace(name)
		ids[i] = Slug(names[i])
		if ids[i] == "" || seen[ids[i]] {
			return nil, &munsell.DataLoadError{Source: source, Line: 1, Err: fmt.Errorf("pigment column %q is empty or repeated", names[i])}
		}
		seen[ids[i]] = true
	}

	var wavelengths []float64
	readings := make([][]float64, len(names))
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &munsell.DataLoadError{Source: source, Line: line, Err: err}
		}
		values, err := parseFloats(record)
		if err != nil {
			return nil, &munsell.DataLoadError{Source: source, Line: line, Err: err}
		}
		wavelengths = append(wavelengths, values[0])
		for i, raw := range values[1:] {
			readings[i] = append(readings[i], Calibrate(raw))
		}
	}

	pigments := make([]Pigment, 0, len(names))
	for i, name := range names {
		reflectance, err := Resample(wavelengths, readings[i])
		if err != nil {
			return nil, &munsell.DataLoadError{Source: source, Err: fmt.Errorf("%s: %w", name, err)}
		}
		pigments = append(pigments, Pigment{ID: ids[i], Name: name, Color: spectrum.MustColor(reflectance, name)})
	}
	return pigments, nil
}

// Resample maps readings taken at wavelengths onto the grid. Each grid point
// takes the mean of the nearest reading strictly below it and the nearest
// strictly above it, so a reading exactly on a grid point is not used.
func Resample(wavelengths, readings []float64) (spectrum.Spectrum, error) {
	if len(wavelengths) != len(readings) {
		return nil, fmt.Errorf("%d wavelengths for %d readings", len(wavelengths), len(readings))
	}
	out := make(spectrum.Spectrum, 0, spectrum.GridSize)
	for _, target := range spectrum.Wavelengths() {
		below, above := -1, -1
		for i, w := range wavelengths {
			if w < target && (below < 0 || w > wavelengths[below]) {
				below = i
			}
			if w > target && (above < 0 || w < wavelengths[above]) {
				above = i
			}
		}
		if below < 0 || above < 0 {
			return nil, fmt.Errorf("no readings either side of %gnm", target)
		}
		out = append(out, (readings[below]+readings[above])/2)
	}
	return out, nil
}

func parseFloats(record []string) ([]float64, error) {
	values := make([]float64, len(record))
	for i, field := range record {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		values[i] = v
	}
	return values, nil
}
