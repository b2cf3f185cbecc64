package munsell

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/RMahshie/spectra/internal/spectrum"
)

// referenceColumns is the fixed prefix of the reference CSV; the grid's
// reflectances follow.
var referenceColumns = []string{"name", "hue", "value", "chroma"}

// LoadReference reads reference samples from CSV: a header row, then
// name, hue text, value, chroma and one reflectance per grid wavelength.
// Any malformed row fails the whole load.
func LoadReference(r io.Reader, source string) ([]Sample, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(referenceColumns) + spectrum.GridSize
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, loadError(source, 1, err)
	}
	for i, column := range referenceColumns {
		if !strings.EqualFold(strings.TrimSpace(header[i]), column) {
			return nil, loadError(source, 1, fmt.Errorf("column %d is %q, want %q", i+1, header[i], column))
		}
	}

	var samples []Sample
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, loadError(source, line, err)
		}
		sample, err := parseReferenceRow(record)
		if err != nil {
			return nil, loadError(source, line, err)
		}
		samples = append(samples, sample)
	}

	if len(samples) == 0 {
		return nil, &DataLoadError{Source: source, Err: errors.New("no samples")}
	}
	return samples, nil
}

func parseReferenceRow(record []string) (Sample, error) {
	hue, err := NumericalHue(record[1])
	if err != nil {
		return Sample{}, err
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return Sample{}, fmt.Errorf("value: %w", err)
	}
	chroma, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
	if err != nil {
		return Sample{}, fmt.Errorf("chroma: %w", err)
	}
	if _, err := newColor(record[0], hue, value, chroma); err != nil {
		return Sample{}, err
	}

	reflectance := make(spectrum.Spectrum, spectrum.GridSize)
	for i, field := range record[len(referenceColumns):] {
		reflectance[i], err = strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return Sample{}, fmt.Errorf("reflectance %d: %w", i+1, err)
		}
	}
	color, err := spectrum.NewColor(reflectance, strings.TrimSpace(record[0]))
	if err != nil {
		return Sample{}, err
	}
	return Sample{Hue: hue, Value: value, Chroma: chroma, Color: color, Origin: OriginReference}, nil
}

// loadError keeps the row number csv reports for field-count errors.
func loadError(source string, line int, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) && parseErr.Line > 0 {
		line = parseErr.Line
	}
	return &DataLoadError{Source: source, Line: line, Err: err}
}
