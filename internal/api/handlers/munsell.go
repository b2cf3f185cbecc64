package handlers

import (
	"context"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/spectra/internal/munsell"
	"github.com/RMahshie/spectra/pkg/models"
)

// Palette resolves Munsell colors to swatches
type Palette interface {
	Swatch(c munsell.Color) (munsell.Swatch, error)
	Sunlight(c munsell.Color) (munsell.Swatch, error)
	Shadow(c munsell.Color) (munsell.Swatch, error)
	Complement(c munsell.Color) (munsell.Swatch, error)
	Mix(a, b munsell.Color, aParts, bParts float64) (munsell.Swatch, error)
	MixLadder(a, b munsell.Color, steps int) ([]munsell.Swatch, error)
	Match(target colorful.Color) (munsell.Swatch, float64, error)
}

// MunsellHandler handles Munsell color HTTP requests
type MunsellHandler struct {
	palette Palette
}

// NewMunsellHandler creates a new Munsell handler
func NewMunsellHandler(palette Palette) *MunsellHandler {
	return &MunsellHandler{palette: palette}
}

// GetColor resolves one color
func (h *MunsellHandler) GetColor(ctx context.Context, req *models.GetColorRequest) (*models.ColorResponse, error) {
	return h.resolve(req.Color, h.palette.Swatch)
}

// GetSunlight resolves a color as seen in direct sun
func (h *MunsellHandler) GetSunlight(ctx context.Context, req *models.GetColorRequest) (*models.ColorResponse, error) {
	return h.resolve(req.Color, h.palette.Sunlight)
}

// GetShadow resolves a color as seen in shadow under a blue sky
func (h *MunsellHandler) GetShadow(ctx context.Context, req *models.GetColorRequest) (*models.ColorResponse, error) {
	return h.resolve(req.Color, h.palette.Shadow)
}

// GetComplement resolves the complement of a color
func (h *MunsellHandler) GetComplement(ctx context.Context, req *models.GetColorRequest) (*models.ColorResponse, error) {
	return h.resolve(req.Color, h.palette.Complement)
}

func (h *MunsellHandler) resolve(notation string, swatch func(munsell.Color) (munsell.Swatch, error)) (*models.ColorResponse, error) {
	log.Info().Str("color", notation).Msg("Color request received")
	c, err := munsell.ParseColor(notation)
	if err != nil {
		return nil, apiError(err)
	}
	s, err := swatch(c)
	if err != nil {
		return nil, apiError(err)
	}
	return &models.ColorResponse{Body: swatchResult(s)}, nil
}

// GetLadder steps from one color to another
func (h *MunsellHandler) GetLadder(ctx context.Context, req *models.GetLadderRequest) (*models.ColorListResponse, error) {
	log.Info().Str("startColor", req.StartColor).Str("endColor", req.EndColor).Int("steps", req.Steps).Str("method", req.Method).Msg("Ladder request received")
	start, err := munsell.ParseColor(req.StartColor)
	if err != nil {
		return nil, apiError(err)
	}
	end, err := munsell.ParseColor(req.EndColor)
	if err != nil {
		return nil, apiError(err)
	}

	var swatches []munsell.Swatch
	if req.Method == "mix" {
		swatches, err = h.palette.MixLadder(start, end, req.Steps)
	} else {
		var colors []munsell.Color
		if colors, err = munsell.NumericalLadder(start, end, req.Steps); err == nil {
			swatches, err = h.swatches(colors)
		}
	}
	if err != nil {
		return nil, apiError(err)
	}
	return &models.ColorListResponse{Body: models.ColorListResponseBody{Colors: swatchResults(swatches)}}, nil
}

// GetMix mixes two colors as paint
func (h *MunsellHandler) GetMix(ctx context.Context, req *models.GetMixRequest) (*models.ColorResponse, error) {
	log.Info().Str("aColor", req.AColor).Str("bColor", req.BColor).Float64("aParts", req.AParts).Float64("bParts", req.BParts).Msg("Mix request received")
	a, err := munsell.ParseColor(req.AColor)
	if err != nil {
		return nil, apiError(err)
	}
	b, err := munsell.ParseColor(req.BColor)
	if err != nil {
		return nil, apiError(err)
	}
	s, err := h.palette.Mix(a, b, req.AParts, req.BParts)
	if err != nil {
		return nil, apiError(err)
	}
	return &models.ColorResponse{Body: swatchResult(s)}, nil
}

// GetRainbow walks the hue circle
func (h *MunsellHandler) GetRainbow(ctx context.Context, req *models.GetRainbowRequest) (*models.ColorListResponse, error) {
	colors, err := munsell.Rainbow(req.Value, req.Chroma, req.Steps, req.Offset)
	if err != nil {
		return nil, apiError(err)
	}
	swatches, err := h.swatches(colors)
	if err != nil {
		return nil, apiError(err)
	}
	return &models.ColorListResponse{Body: models.ColorListResponseBody{Colors: swatchResults(swatches)}}, nil
}

// GetPage lays out the value/chroma grid of one hue
func (h *MunsellHandler) GetPage(ctx context.Context, req *models.GetPageRequest) (*models.PageResponse, error) {
	hue, err := munsell.NumericalHue(req.Hue)
	if err != nil {
		return nil, apiError(err)
	}
	page, err := munsell.Page(hue, req.ValueSteps, req.ChromaSteps)
	if err != nil {
		return nil, apiError(err)
	}

	rows := make([][]models.ColorResult, len(page))
	for i, row := range page {
		swatches, err := h.swatches(row)
		if err != nil {
			return nil, apiError(err)
		}
		rows[i] = swatchResults(swatches)
	}
	return &models.PageResponse{Body: models.PageResponseBody{Hue: munsell.NameForHue(hue), Rows: rows}}, nil
}

// GetMatch finds the sample nearest an sRGB color
func (h *MunsellHandler) GetMatch(ctx context.Context, req *models.GetMatchRequest) (*models.MatchResponse, error) {
	target, err := colorful.Hex("#" + strings.TrimPrefix(req.Hex, "#"))
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("Invalid hex color", err)
	}
	s, distance, err := h.palette.Match(target)
	if err != nil {
		return nil, apiError(err)
	}
	log.Info().Str("hex", req.Hex).Str("color", s.Color.Name()).Float64("distance", distance).Msg("Matched color")
	return &models.MatchResponse{Body: models.MatchResponseBody{Color: swatchResult(s), Distance: distance}}, nil
}

func (h *MunsellHandler) swatches(colors []munsell.Color) ([]munsell.Swatch, error) {
	swatches := make([]munsell.Swatch, len(colors))
	for i, c := range colors {
		s, err := h.palette.Swatch(c)
		if err != nil {
			return nil, err
		}
		swatches[i] = s
	}
	return swatches, nil
}
