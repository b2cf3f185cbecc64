package munsell

import (
	"fmt"
	"math"
)

const (
	pageMinValue  = 1.0
	pageMaxValue  = 9.0
	pageMaxChroma = 16.0
)

// NumericalLadder interpolates hue (along the shorter arc), value and chroma
// independently from a to b over steps colors, endpoints included.
func NumericalLadder(a, b Color, steps int) ([]Color, error) {
	if steps < 2 {
		return nil, &ParseError{Input: fmt.Sprint(steps), Reason: "a ladder needs at least 2 steps"}
	}
	dHue := b.Hue - a.Hue
	if dHue > 50 {
		dHue -= 100
	} else if dHue < -50 {
		dHue += 100
	}

	ladder := make([]Color, steps)
	ladder[0], ladder[steps-1] = a, b
	for i := 1; i < steps-1; i++ {
		t := float64(i) / float64(steps-1)
		ladder[i] = Color{
			Hue:    NormalizeHue(a.Hue + dHue*t),
			Value:  a.Value + (b.Value-a.Value)*t,
			Chroma: a.Chroma + (b.Chroma-a.Chroma)*t,
		}
	}
	return ladder, nil
}

// Rainbow samples steps hues evenly round the whole circle, starting at offset,
// at a fixed value and chroma.
func Rainbow(value, chroma float64, steps int, offset float64) ([]Color, error) {
	if steps < 1 {
		return nil, &ParseError{Input: fmt.Sprint(steps), Reason: "a rainbow needs at least 1 step"}
	}
	if _, err := NewColor(offset, value, chroma); err != nil {
		return nil, err
	}
	colors := make([]Color, steps)
	for i := range colors {
		colors[i] = Color{
			Hue:    NormalizeHue(offset + 100*float64(i)/float64(steps)),
			Value:  value,
			Chroma: chroma,
		}
	}
	return colors, nil
}

// Page lays out one hue as rows of increasing value, 1 to 9, each row running
// chroma from 0 to 16.
func Page(hue float64, valueSteps, chromaSteps int) ([][]Color, error) {
	if valueSteps < 1 || chromaSteps < 1 {
		return nil, &ParseError{Input: fmt.Sprintf("%d x %d", valueSteps, chromaSteps), Reason: "a page needs at least 1 step on each axis"}
	}
	if math.IsNaN(hue) || math.IsInf(hue, 0) {
		return nil, &ParseError{Input: fmt.Sprint(hue), Reason: "hue must be finite"}
	}
	values := spread(pageMinValue, pageMaxValue, valueSteps)
	chromas := spread(0, pageMaxChroma, chromaSteps)

	page := make([][]Color, len(values))
	for i, value := range values {
		row := make([]Color, len(chromas))
		for j, chroma := range chromas {
			row[j] = Color{Hue: NormalizeHue(hue), Value: value, Chroma: chroma}
		}
		page[i] = row
	}
	return page, nil
}

// spread returns n evenly spaced points from lo to hi inclusive; a single
// point sits at lo.
func spread(lo, hi float64, n int) []float64 {
	points := make([]float64, n)
	for i := range points {
		if n == 1 {
			points[i] = lo
			continue
		}
		points[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return points
}
