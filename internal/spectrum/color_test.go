package spectrum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ramp returns a spectrum rising linearly from lo to hi across the grid.
func ramp(lo, hi float64) Spectrum {
	s := make(Spectrum, GridSize)
	for i := range s {
		s[i] = lo + (hi-lo)*float64(i)/float64(GridSize-1)
	}
	return s
}

func TestWavelengths(t *testing.T) {
	grid := Wavelengths()
	require.Len(t, grid, GridSize)
	assert.Equal(t, 380.0, grid[0])
	assert.Equal(t, 730.0, grid[GridSize-1])

	grid[0] = 0
	assert.Equal(t, 380.0, Wavelengths()[0], "grid must not be writable through the returned slice")
}

func TestNewColor(t *testing.T) {
	t.Run("copies the spectrum", func(t *testing.T) {
		src := ramp(0.1, 0.9)
		c, err := NewColor(src, "ramp")
		require.NoError(t, err)

		src[0] = 42
		assert.Equal(t, 0.1, c.Spectrum()[0])

		out := c.Spectrum()
		out[1] = 42
		assert.NotEqual(t, 42.0, c.Spectrum()[1])
	})

	t.Run("rejects spectra off the grid", func(t *testing.T) {
		_, err := NewColor(Spectrum{0.1, 0.2}, "short")
		assert.ErrorIs(t, err, ErrGridMismatch)
	})

	t.Run("defaults proportion to one", func(t *testing.T) {
		c := MustColor(Flat(0.5), "gray")
		assert.Equal(t, 1.0, c.Proportion())
		assert.Equal(t, "gray", c.Name())
	})
}

func TestColorP(t *testing.T) {
	c := MustColor(ramp(0.2, 0.6), "ramp")
	scaled := c.P(3)

	assert.Equal(t, 1.0, c.Proportion(), "original weight must not change")
	assert.Equal(t, 3.0, scaled.Proportion())
	assert.Equal(t, c.Spectrum(), scaled.Spectrum())
	assert.Equal(t, c.Name(), scaled.Name())
}

func TestProject(t *testing.T) {
	tests := []struct {
		name    string
		level   float64
		rgb255  [3]int
		hex     string
		clipped bool
	}{
		{name: "black", level: 0, rgb255: [3]int{0, 0, 0}, hex: "000000"},
		{name: "mid gray", level: 0.5, rgb255: [3]int{186, 186, 186}, hex: "bababa"},
		{name: "over range", level: 2, rgb255: [3]int{255, 255, 255}, hex: "ffffff", clipped: true},
		{name: "under range", level: -0.1, rgb255: [3]int{0, 0, 0}, hex: "000000", clipped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := MustColor(Flat(tt.level), tt.name)
			p := c.Project()

			assert.Equal(t, tt.clipped, p.Clipped)
			assert.Equal(t, tt.rgb255, c.RGB255())
			assert.Equal(t, tt.hex, c.Hex())
			for _, ch := range p.RGB {
				assert.GreaterOrEqual(t, ch, 0.0)
				assert.LessOrEqual(t, ch, 1.0)
			}
		})
	}
}

func TestProject_FlatSpectrumIsNeutral(t *testing.T) {
	p := MustColor(Flat(0.5), "gray").Project()
	for _, ch := range p.Linear {
		assert.InDelta(t, 0.5, ch, 1e-4)
	}
	assert.InDelta(t, 0.7297, p.RGB[0], 1e-3)
}

func TestProject_Deterministic(t *testing.T) {
	a := MustColor(ramp(0.05, 0.8), "a")
	b := MustColor(ramp(0.05, 0.8), "b")
	assert.Equal(t, a.RGB(), b.RGB())
	assert.Equal(t, a.Project(), a.Project())
}

func TestStats(t *testing.T) {
	c := MustColor(Flat(0.5), "gray")
	stats := c.Stats()

	assert.Equal(t, "gray", stats.Name)
	assert.Equal(t, c.RGB(), stats.RGB)
	assert.Equal(t, c.RGB255(), stats.RGB255)
	assert.Equal(t, c.Hex(), stats.Hex)
	assert.False(t, stats.Clipped)
	assert.False(t, stats.Imprecise)

	hot := MustColor(Flat(1.5), "hot").Stats()
	assert.True(t, hot.Clipped)
	assert.True(t, hot.Imprecise)
}

func TestExtrapolate(t *testing.T) {
	a := Flat(0.4)
	b := Flat(0.1)
	assert.InDeltaSlice(t, Flat(0.7), Extrapolate(a, b), 1e-12)

	assert.Equal(t, Flat(0), Extrapolate(Flat(0.1), Flat(0.5)), "result is clipped at zero")
}

func TestMean(t *testing.T) {
	assert.InDelta(t, 0.5, ramp(0, 1).Mean(), 1e-12)
	assert.Equal(t, 0.0, Spectrum{}.Mean())
}
