package munsell

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/spectra/internal/spectrum"
)

func TestPalette_Swatch(t *testing.T) {
	palette := NewPalette(bundledDatabase(t))
	c := Color{Hue: 12.5, Value: 6, Chroma: 7}

	got, err := palette.Swatch(c)
	require.NoError(t, err)
	want, err := palette.Engine().ResolveWithFallback(12.5, 6, 7)
	require.NoError(t, err)
	assert.Equal(t, want.Color.Spectrum(), got.Color.Spectrum())
	assert.Equal(t, "2.5YR 6.0/7.0", got.Color.Name())
}

func TestPalette_Sunlight(t *testing.T) {
	palette := NewPalette(bundledDatabase(t))

	got, err := palette.Sunlight(Color{Hue: 25, Value: 5, Chroma: 4})
	require.NoError(t, err)
	assert.InDelta(t, 6.0, got.Value, 1e-12)
	assert.Equal(t, 25.0, got.Hue)
}

func TestPalette_Complement(t *testing.T) {
	palette := NewPalette(bundledDatabase(t))

	got, err := palette.Complement(Color{Hue: 80, Value: 5, Chroma: 4})
	require.NoError(t, err)
	assert.Equal(t, 30.0, got.Hue)
	assert.Equal(t, 4.0, got.Chroma)
}

func TestPalette_Shadow(t *testing.T) {
	palette := NewPalette(bundledDatabase(t))
	c := Color{Hue: 5, Value: 6, Chroma: 6}

	got, err := palette.Shadow(c)
	require.NoError(t, err)
	assert.InDelta(t, 4.8, got.Value, 1e-12)
	assert.True(t, got.Placed)

	dark, err := palette.Swatch(c.shadowed())
	require.NoError(t, err)
	ambient, err := palette.Swatch(sky(dark.Value))
	require.NoError(t, err)
	want, err := spectrum.Mix{dark.Color.P(0.7), ambient.Color.P(0.3)}.Color()
	require.NoError(t, err)
	assertSpectrum(t, want.Spectrum(), got.Color.Spectrum())
}

func TestPalette_MixWithZeroPartsKeepsFirst(t *testing.T) {
	palette := NewPalette(bundledDatabase(t))
	a := Color{Hue: 45, Value: 5, Chroma: 6}
	b := Color{Hue: 85, Value: 3, Chroma: 4}

	got, err := palette.Mix(a, b, 1, 0)
	require.NoError(t, err)
	want, err := palette.Swatch(a)
	require.NoError(t, err)
	assertSpectrum(t, want.Color.Spectrum(), got.Color.Spectrum())
	assert.False(t, got.Placed)

	_, err = palette.Mix(a, b, 0, 0)
	var invalid *spectrum.InvalidMixError
	assert.ErrorAs(t, err, &invalid)
}

func TestPalette_MixLadder(t *testing.T) {
	palette := NewPalette(bundledDatabase(t))
	a := Color{Hue: 5, Value: 4, Chroma: 8}
	b := Color{Hue: 65, Value: 7, Chroma: 4}

	ladder, err := palette.MixLadder(a, b, 4)
	require.NoError(t, err)
	require.Len(t, ladder, 4)

	start, err := palette.Swatch(a)
	require.NoError(t, err)
	end, err := palette.Swatch(b)
	require.NoError(t, err)
	assert.Equal(t, start, ladder[0])
	assert.Equal(t, end, ladder[3])
	for _, step := range ladder[1:3] {
		assert.False(t, step.Placed)
	}
	assert.NotEqual(t, ladder[1].Color.Hex(), ladder[2].Color.Hex())

	_, err = palette.MixLadder(a, b, 1)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestPalette_Match(t *testing.T) {
	db := bundledDatabase(t)
	palette := NewPalette(db)

	sample, err := db.Lookup(5, 5, 6)
	require.NoError(t, err)
	rgb := sample.Color.RGB()

	got, distance, err := palette.Match(colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]})
	require.NoError(t, err)
	assert.InDelta(t, 0, distance, 1e-9)
	assert.Equal(t, 5.0, got.Hue)
	assert.Equal(t, 5.0, got.Value)
	assert.Equal(t, 6.0, got.Chroma)
	assert.Equal(t, "5.0R 5.0/6.0", got.Color.Name())

	_, _, err = NewPalette(NewDatabase()).Match(colorful.Color{})
	assert.Error(t, err)
}

func TestPalette_ShadowKeepsShadowedName(t *testing.T) {
	palette := NewPalette(bundledDatabase(t))

	got, err := palette.Shadow(Color{Hue: 25, Value: 5, Chroma: 4})
	require.NoError(t, err)
	assert.Equal(t, "5.0Y 4.0/4.0", got.Color.Name())
}
