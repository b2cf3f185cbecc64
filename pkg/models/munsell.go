package models

// ColorResult is a rendered color. The Munsell coordinates are absent for
// colors mixed from several others.
type ColorResult struct {
	Name            string     `json:"name" example:"5.0R 4.0/14.0" doc:"Display name"`
	RGB             [3]float64 `json:"rgb" doc:"Compressed RGB channels in [0,1]"`
	RGB255          [3]int     `json:"rgb255" doc:"RGB channels rounded to 0..255"`
	Hex             string     `json:"hex" example:"c8321e" doc:"RGB as six hex digits"`
	Imprecise       bool       `json:"imprecise" doc:"Chroma was lowered to resolve the color, or a channel clipped"`
	Clipped         bool       `json:"clipped" doc:"A channel fell outside [0,1] before compression"`
	Hue             *float64   `json:"hue,omitempty" doc:"Numerical hue in [0,100)"`
	Value           *float64   `json:"value,omitempty" doc:"Munsell value actually resolved"`
	Chroma          *float64   `json:"chroma,omitempty" doc:"Munsell chroma actually resolved"`
	AttemptedChroma *float64   `json:"attempted_chroma,omitempty" doc:"Munsell chroma requested"`
}

// GetColorRequest names one Munsell color
type GetColorRequest struct {
	Color string `query:"color" required:"true" example:"5R 4/14" doc:"Munsell notation, e.g. '5R 4/14' or 'N 5/'"`
}

// ColorResponse returns one color
type ColorResponse struct {
	Body ColorResult
}

// ColorListResponseBody is an ordered list of colors
type ColorListResponseBody struct {
	Colors []ColorResult `json:"colors" doc:"Colors in sequence order"`
}

// ColorListResponse returns an ordered list of colors
type ColorListResponse struct {
	Body ColorListResponseBody
}

// GetLadderRequest describes a transition between two colors
type GetLadderRequest struct {
	StartColor string `query:"start_color" required:"true" doc:"Munsell notation of the first color"`
	EndColor   string `query:"end_color" required:"true" doc:"Munsell notation of the last color"`
	Steps      int    `query:"steps" default:"10" minimum:"2" maximum:"100" doc:"Colors in the ladder, endpoints included"`
	Method     string `query:"method" default:"munsell" enum:"munsell,mix" doc:"Interpolate Munsell coordinates or mix paint"`
}

// GetMixRequest describes a two-color subtractive mix
type GetMixRequest struct {
	AColor string  `query:"a_color" required:"true" doc:"Munsell notation of the first color"`
	BColor string  `query:"b_color" required:"true" doc:"Munsell notation of the second color"`
	AParts float64 `query:"a_parts" default:"1" minimum:"0" doc:"Parts of the first color"`
	BParts float64 `query:"b_parts" default:"1" minimum:"0" doc:"Parts of the second color"`
}

// GetRainbowRequest describes a hue circle at fixed value and chroma
type GetRainbowRequest struct {
	Value  float64 `query:"value" required:"true" minimum:"0" maximum:"10" doc:"Munsell value"`
	Chroma float64 `query:"chroma" required:"true" minimum:"0" doc:"Munsell chroma"`
	Steps  int     `query:"steps" default:"10" minimum:"1" maximum:"100" doc:"Hues round the circle"`
	Offset float64 `query:"offset" default:"0" doc:"Numerical hue of the first color"`
}

// GetPageRequest describes the value/chroma grid of one hue
type GetPageRequest struct {
	Hue         string `query:"hue" required:"true" example:"5R" doc:"Hue name"`
	ValueSteps  int    `query:"value_steps" default:"10" minimum:"1" maximum:"50" doc:"Rows, value 1 to 9"`
	ChromaSteps int    `query:"chroma_steps" default:"10" minimum:"1" maximum:"50" doc:"Columns, chroma 0 to 16"`
}

// PageResponseBody is a hue page, one row per value
type PageResponseBody struct {
	Hue  string          `json:"hue" doc:"Hue name"`
	Rows [][]ColorResult `json:"rows" doc:"Rows of increasing value, each of increasing chroma"`
}

// PageResponse returns a hue page
type PageResponse struct {
	Body PageResponseBody
}

// GetMatchRequest names an sRGB color to place in Munsell space
type GetMatchRequest struct {
	Hex string `query:"hex" required:"true" pattern:"^#?[0-9a-fA-F]{6}$" example:"c8321e" doc:"sRGB color as six hex digits"`
}

// MatchResponseBody is the nearest database sample
type MatchResponseBody struct {
	Color    ColorResult `json:"color" doc:"Nearest sample"`
	Distance float64     `json:"distance" doc:"CIE Lab distance to the requested color"`
}

// MatchResponse returns the nearest database sample
type MatchResponse struct {
	Body MatchResponseBody
}
