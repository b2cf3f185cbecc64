package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/spectra/internal/mixing"
	"github.com/RMahshie/spectra/pkg/models"
)

// MixHandler handles pigment mix HTTP requests
type MixHandler struct {
	mixingSvc mixing.MixingService
}

// NewMixHandler creates a new mix handler
func NewMixHandler(mixingSvc mixing.MixingService) *MixHandler {
	return &MixHandler{mixingSvc: mixingSvc}
}

// CreateMix mixes catalog pigments and records the result
func (h *MixHandler) CreateMix(ctx context.Context, req *models.CreateMixRequest) (*models.MixResponse, error) {
	log.Info().Int("pigments", len(req.Body.Pigments)).Msg("Creating new mix")
	mix, err := h.mixingSvc.Mix(ctx, req.Body.Pigments)
	if err != nil {
		return nil, apiError(err)
	}
	return &models.MixResponse{Body: mix}, nil
}

// GetMix returns a recorded mix
func (h *MixHandler) GetMix(ctx context.Context, req *models.GetMixRecordRequest) (*models.MixResponse, error) {
	log.Info().Str("mixID", req.ID).Msg("Mix lookup request received")
	mixID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid mix ID", err)
	}

	mix, err := h.mixingSvc.GetMix(ctx, mixID)
	if err != nil {
		return nil, apiError(err)
	}
	return &models.MixResponse{Body: mix}, nil
}
