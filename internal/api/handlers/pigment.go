package handlers

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/RMahshie/spectra/internal/repository"
	"github.com/RMahshie/spectra/internal/spectrum"
	"github.com/RMahshie/spectra/pkg/models"
)

// PigmentHandler handles pigment catalog HTTP requests
type PigmentHandler struct {
	repo repository.PigmentRepository
}

// NewPigmentHandler creates a new pigment handler
func NewPigmentHandler(repo repository.PigmentRepository) *PigmentHandler {
	return &PigmentHandler{repo: repo}
}

// ListPigments returns the catalog in short form
func (h *PigmentHandler) ListPigments(ctx context.Context, input *struct{}) (*models.ListPigmentsResponse, error) {
	pigments, err := h.repo.List(ctx)
	if err != nil {
		return nil, apiError(err)
	}

	resp := &models.ListPigmentsResponse{}
	resp.Body.Pigments = make([]models.PigmentSummary, 0, len(pigments))
	for _, p := range pigments {
		summary, err := pigmentSummary(p)
		if err != nil {
			return nil, apiError(err)
		}
		resp.Body.Pigments = append(resp.Body.Pigments, summary)
	}
	return resp, nil
}

// GetPigment returns one pigment with its spectrum
func (h *PigmentHandler) GetPigment(ctx context.Context, req *models.GetPigmentRequest) (*models.GetPigmentResponse, error) {
	log.Info().Str("pigmentID", req.ID).Msg("Pigment request received")
	p, err := h.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, apiError(err)
	}
	summary, err := pigmentSummary(p)
	if err != nil {
		return nil, apiError(err)
	}
	return &models.GetPigmentResponse{Body: models.PigmentDetailBody{
		PigmentSummary: summary,
		Wavelengths:    spectrum.Wavelengths(),
		Spectrum:       p.Spectrum,
	}}, nil
}

func pigmentSummary(p *models.Pigment) (models.PigmentSummary, error) {
	color, err := spectrum.NewColor(p.Spectrum, p.Name)
	if err != nil {
		return models.PigmentSummary{}, err
	}
	stats := color.Stats()
	return models.PigmentSummary{ID: p.ID, Name: p.Name, Hex: stats.Hex, RGB: stats.RGB}, nil
}
