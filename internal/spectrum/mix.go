package spectrum

import (
	"fmt"
	"math"
	"strings"
)

// InvalidMixError reports a mix that has no usable weights.
type InvalidMixError struct {
	Reason string
}

func (e *InvalidMixError) Error() string {
	return "invalid mix: " + e.Reason
}

// Mix is an ordered set of proportioned colors blended subtractively. The
// blended spectrum is derived on demand and never stored.
type Mix []Color

// total sums the proportions, rejecting sets that cannot be normalized.
func (m Mix) total() (float64, error) {
	if len(m) == 0 {
		return 0, &InvalidMixError{Reason: "no colors"}
	}
	var total float64
	for _, c := range m {
		if c.proportion < 0 || math.IsNaN(c.proportion) {
			return 0, &InvalidMixError{Reason: fmt.Sprintf("negative proportion %v for %q", c.proportion, c.name)}
		}
		total += c.proportion
	}
	if total <= 0 || math.IsInf(total, 0) {
		return 0, &InvalidMixError{Reason: fmt.Sprintf("total proportion %v", total)}
	}
	return total, nil
}

// Color blends the mix into a single color using the default name.
func (m Mix) Color() (Color, error) {
	name, err := m.Name()
	if err != nil {
		return Color{}, err
	}
	return m.ColorNamed(name)
}

// ColorNamed blends the mix with the per-wavelength weighted geometric mean of
// the member spectra. A single-member mix is returned unchanged.
func (m Mix) ColorNamed(name string) (Color, error) {
	total, err := m.total()
	if err != nil {
		return Color{}, err
	}
	if len(m) == 1 {
		return m[0], nil
	}

	out := Flat(1)
	for _, c := range m {
		if err := c.spectrum.Validate(); err != nil {
			return Color{}, err
		}
		exponent := c.proportion / total
		for i, x := range c.spectrum {
			// the geometric mean is undefined below zero
			out[i] *= math.Pow(math.Max(x, 0), exponent)
		}
	}
	return Color{spectrum: out, proportion: 1, name: name}, nil
}

// Name lists the normalized percentages, e.g. "40.0% Ultramarine + 60.0% Lead White".
func (m Mix) Name() (string, error) {
	total, err := m.total()
	if err != nil {
		return "", err
	}
	parts := make([]string, len(m))
	for i, c := range m {
		parts[i] = fmt.Sprintf("%.1f%% %s", 100*c.proportion/total, c.name)
	}
	return strings.Join(parts, " + "), nil
}
