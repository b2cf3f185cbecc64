package munsell

import (
	"errors"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/spectra/internal/spectrum"
)

func flatSample(hue, value, chroma, level float64) Sample {
	return Sample{
		Hue: hue, Value: value, Chroma: chroma,
		Color:  spectrum.MustColor(spectrum.Flat(level), NameForColor(hue, value, chroma)),
		Origin: OriginReference,
	}
}

func TestDatabase_Lookup(t *testing.T) {
	db := NewDatabase(
		flatSample(5, 3, 2, 0.2),
		flatSample(5, 3, 4, 0.3),
		flatSample(17.5, 3, 2, 0.4),
	)

	s, err := db.Lookup(5, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 4.0, s.Chroma)
	assert.Equal(t, spectrum.Flat(0.3), s.Color.Spectrum())

	// 7.5+10 is not bit-equal to 17.5 in every computation; keys absorb that.
	assert.True(t, db.Has(7.5+10, 3, 2))

	_, err = db.Lookup(5, 3, 6)
	var missing *MissingSampleError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, MissingSampleError{Hue: 5, Value: 3, Chroma: 6}, *missing)
}

func TestDatabase_HueZeroIsStoredAsHundred(t *testing.T) {
	db := NewDatabase(flatSample(0, 5, 2, 0.2))

	assert.True(t, db.HasHue(0))
	assert.True(t, db.HasHue(100))
	assert.Equal(t, []float64{100}, db.Hues())
	assert.True(t, db.Has(100, 5, 2))
}

func TestDatabase_SkipsValueOneAndDuplicates(t *testing.T) {
	db := NewDatabase(
		flatSample(5, 1, 2, 0.2),
		flatSample(5, 2, 2, 0.3),
		flatSample(5, 2, 2, 0.9),
	)

	assert.Equal(t, 1, db.Len())
	assert.False(t, db.HasValue(5, 1))
	assert.True(t, db.HasValue(5, 2))

	s, err := db.Lookup(5, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, spectrum.Flat(0.3), s.Color.Spectrum(), "first sample at a coordinate wins")
}

func TestDatabase_MaxChroma(t *testing.T) {
	db := NewDatabase(
		flatSample(5, 3, 4, 0.3),
		flatSample(5, 3, 8, 0.4),
		flatSample(5, 3, 2, 0.2),
	)

	s, err := db.MaxChroma(5, 3)
	require.NoError(t, err)
	assert.Equal(t, 8.0, s.Chroma)

	_, err = db.MaxChroma(5, 4)
	assert.Error(t, err)
}

func TestDatabase_Ordering(t *testing.T) {
	db := NewDatabase(
		flatSample(75, 6, 2, 0.3),
		flatSample(2.5, 4, 2, 0.3),
		flatSample(75, 2, 2, 0.3),
		flatSample(40, 9, 2, 0.3),
	)

	assert.Equal(t, []float64{2.5, 40, 75}, db.Hues())
	assert.Equal(t, []float64{2, 6}, db.Values(75))
	assert.Nil(t, db.Values(50))
	assert.Equal(t, 4, db.Count(OriginReference))
	assert.Equal(t, 0, db.Count(OriginGray))
}

func TestDatabase_Nearest(t *testing.T) {
	dark := flatSample(5, 2, 2, 0.05)
	light := flatSample(5, 8, 2, 0.8)
	db := NewDatabase(dark, light)

	rgb := light.Color.RGB()
	got, distance, ok := db.Nearest(colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]})
	require.True(t, ok)
	assert.Equal(t, 8.0, got.Value)
	assert.InDelta(t, 0, distance, 1e-9)

	_, _, ok = NewDatabase().Nearest(colorful.Color{R: 1})
	assert.False(t, ok)
}

func TestOrigin_String(t *testing.T) {
	assert.Equal(t, "reference", OriginReference.String())
	assert.Equal(t, "over-chroma", OriginOverChroma.String())
	assert.Equal(t, "unknown", Origin(42).String())
}
