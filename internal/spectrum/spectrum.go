// Package spectrum models reflectance curves sampled on a fixed wavelength
// grid, their projection to RGB and their subtractive mixing.
package spectrum

import (
	"errors"
	"fmt"
	"math"
)

// GridSize is the number of wavelengths every Spectrum carries.
const GridSize = 36

// ErrGridMismatch is returned when a spectrum does not match the Frequency Grid.
var ErrGridMismatch = errors.New("spectrum does not match frequency grid")

// wavelengths is the Frequency Grid in nanometres: 380 to 730 in steps of 10.
var wavelengths = func() [GridSize]float64 {
	var grid [GridSize]float64
	for i := range grid {
		grid[i] = 380 + 10*float64(i)
	}
	return grid
}()

// Wavelengths returns a copy of the Frequency Grid.
func Wavelengths() []float64 {
	grid := wavelengths
	return grid[:]
}

// Spectrum is a reflectance curve, one value per grid wavelength. Values are
// nominally in [0,1] but measured and extrapolated data may stray outside.
type Spectrum []float64

// Validate reports ErrGridMismatch when s has the wrong length.
func (s Spectrum) Validate() error {
	if len(s) != GridSize {
		return fmt.Errorf("%w: got %d samples, want %d", ErrGridMismatch, len(s), GridSize)
	}
	return nil
}

// Clone returns an independent copy of s.
func (s Spectrum) Clone() Spectrum {
	out := make(Spectrum, len(s))
	copy(out, s)
	return out
}

// Mean is the average reflectance across the grid.
func (s Spectrum) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	var sum float64
	for _, x := range s {
		sum += x
	}
	return sum / float64(len(s))
}

// Flat returns a spectrum with every wavelength set to level.
func Flat(level float64) Spectrum {
	out := make(Spectrum, GridSize)
	for i := range out {
		out[i] = level
	}
	return out
}

// Extrapolate returns a + (a - b), clipped below at zero.
func Extrapolate(a, b Spectrum) Spectrum {
	out := make(Spectrum, len(a))
	for i := range a {
		out[i] = math.Max(a[i]-b[i]+a[i], 0)
	}
	return out
}

// dot projects s onto one observer curve.
func (s Spectrum) dot(observer Spectrum) float64 {
	var sum float64
	for i, x := range s {
		sum += x * observer[i]
	}
	return sum
}
