// Package data bundles the default reference datasets into the binary.
package data

import _ "embed"

// Munsell is the reference Munsell sample set: name, hue, value, chroma and
// one reflectance per 10nm from 380nm to 730nm.
//
//go:embed munsell.csv
var Munsell []byte

// Pigments is the pigment catalog, one column per pigment, one row per
// wavelength.
//
//go:embed pigments.csv
var Pigments []byte
