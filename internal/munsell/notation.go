package munsell

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// HueFamilies is the fixed ten-step hue cycle. Each family spans ten hue steps,
// so a hue number of 5 in "Y" is 25 on the numerical scale.
var HueFamilies = [...]string{"R", "YR", "Y", "GY", "G", "BG", "B", "PB", "P", "RP"}

var familyIndex = func() map[string]int {
	index := make(map[string]int, len(HueFamilies))
	for i, family := range HueFamilies {
		index[family] = i
	}
	return index
}()

var (
	hueRegex     = regexp.MustCompile(`^(\d+(?:\.\d+)?)(RP|YR|GY|BG|PB|R|Y|G|B|P)$`)
	colorRegex   = regexp.MustCompile(`^(\d+(?:\.\d+)?\s*[A-Z]{1,2})\s+(\d+(?:\.\d+)?)\s*/\s*(\d+(?:\.\d+)?)$`)
	neutralRegex = regexp.MustCompile(`^N\s*(\d+(?:\.\d+)?)\s*(?:/\s*(?:0+(?:\.0*)?)?)?$`)
)

// NumericalHue parses a hue name such as "2.5YR" into a number in (0,100].
func NumericalHue(hue string) (float64, error) {
	compact := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(hue)), " ", "")
	match := hueRegex.FindStringSubmatch(compact)
	if match == nil {
		return 0, &ParseError{Input: hue, Reason: "want a hue number followed by one of R, YR, Y, GY, G, BG, B, PB, P, RP"}
	}
	number, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, &ParseError{Input: hue, Reason: err.Error()}
	}
	if number > 10 {
		return 0, &ParseError{Input: hue, Reason: "hue number must be between 0 and 10"}
	}
	return number + 10*float64(familyIndex[match[2]]), nil
}

// NormalizeHue wraps a hue into [0,100).
func NormalizeHue(hue float64) float64 {
	hue = math.Mod(hue, 100)
	if hue < 0 {
		hue += 100
	}
	return hue
}

// sampleHue is NormalizeHue with 0 mapped to 100, the form the sample
// database stores ("10RP" rather than "0R").
func sampleHue(hue float64) float64 {
	hue = NormalizeHue(hue)
	if hue == 0 {
		return 100
	}
	return hue
}

// NameForHue formats a numerical hue, rounded to one decimal, e.g. 52.7 as
// "2.7BG". Whole-family boundaries use the preceding family: 20 is "10.0YR".
func NameForHue(hue float64) string {
	hue = NormalizeHue(math.Round(hue*10) / 10)
	family := int(math.Floor(hue / 10))
	number := math.Round((hue-10*float64(family))*10) / 10
	if number == 0 {
		number = 10
		family--
	}
	family = (family + len(HueFamilies)) % len(HueFamilies)
	return fmt.Sprintf("%.1f%s", number, HueFamilies[family])
}

// NameForColor formats coordinates as "H V/C", e.g. "5.0Y 3.0/2.0".
func NameForColor(hue, value, chroma float64) string {
	return fmt.Sprintf("%s %.1f/%.1f", NameForHue(hue), value, chroma)
}

// Complement is the hue halfway round the circle.
func Complement(hue float64) float64 {
	return NormalizeHue(hue + 50)
}

// ParseColor parses notation such as "5.0R 3/7" or the neutral "N 5/".
func ParseColor(notation string) (Color, error) {
	text := strings.ToUpper(strings.TrimSpace(notation))

	if match := neutralRegex.FindStringSubmatch(text); match != nil {
		value, _ := strconv.ParseFloat(match[1], 64)
		return newColor(notation, 0, value, 0)
	}

	match := colorRegex.FindStringSubmatch(text)
	if match == nil {
		return Color{}, &ParseError{Input: notation, Reason: `want "<hue> <value>/<chroma>", e.g. "5.0R 3/7"`}
	}
	hue, err := NumericalHue(match[1])
	if err != nil {
		return Color{}, err
	}
	value, _ := strconv.ParseFloat(match[2], 64)
	chroma, _ := strconv.ParseFloat(match[3], 64)
	return newColor(notation, hue, value, chroma)
}
