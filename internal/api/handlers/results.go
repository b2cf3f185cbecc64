package handlers

import (
	"github.com/RMahshie/spectra/internal/munsell"
	"github.com/RMahshie/spectra/internal/spectrum"
	"github.com/RMahshie/spectra/pkg/models"
)

func colorResult(stats spectrum.Stats) models.ColorResult {
	return models.ColorResult{
		Name:      stats.Name,
		RGB:       stats.RGB,
		RGB255:    stats.RGB255,
		Hex:       stats.Hex,
		Imprecise: stats.Imprecise,
		Clipped:   stats.Clipped,
	}
}

// swatchResult renders a swatch, with coordinates only when it has a place in
// Munsell space.
func swatchResult(s munsell.Swatch) models.ColorResult {
	result := colorResult(s.Stats())
	if s.Placed {
		hue, value, chroma, attempted := s.Hue, s.Value, s.Chroma, s.AttemptedChroma
		result.Hue = &hue
		result.Value = &value
		result.Chroma = &chroma
		result.AttemptedChroma = &attempted
	}
	return result
}

func swatchResults(swatches []munsell.Swatch) []models.ColorResult {
	results := make([]models.ColorResult, len(swatches))
	for i, s := range swatches {
		results[i] = swatchResult(s)
	}
	return results
}
