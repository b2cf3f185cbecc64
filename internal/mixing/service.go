package mixing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/spectra/internal/repository"
	"github.com/RMahshie/spectra/internal/spectrum"
	"github.com/RMahshie/spectra/pkg/models"
)

// MixingService mixes catalog pigments and records the results
type MixingService interface {
	Mix(ctx context.Context, portions []models.Portion) (*models.Mix, error)
	GetMix(ctx context.Context, id uuid.UUID) (*models.Mix, error)
}

type mixingService struct {
	pigments repository.PigmentRepository
	mixes    repository.MixRepository
	now      func() time.Time
}

func NewMixingService(pigments repository.PigmentRepository, mixes repository.MixRepository) MixingService {
	return &mixingService{
		pigments: pigments,
		mixes:    mixes,
		now:      time.Now,
	}
}

func (s *mixingService) Mix(ctx context.Context, portions []models.Portion) (*models.Mix, error) {
	// Step 1: Look up every pigment
	mix := make(spectrum.Mix, 0, len(portions))
	for _, portion := range portions {
		pigment, err := s.pigments.GetByID(ctx, portion.PigmentID)
		if err != nil {
			return nil, err
		}
		color, err := spectrum.NewColor(pigment.Spectrum, pigment.Name)
		if err != nil {
			return nil, fmt.Errorf("pigment %s: %w", pigment.ID, err)
		}
		mix = append(mix, color.P(portion.Proportion))
	}

	// Step 2: Mix
	mixed, err := mix.Color()
	if err != nil {
		return nil, err
	}
	stats := mixed.Stats()

	// Step 3: Record
	record := &models.Mix{
		ID:        uuid.New().String(),
		Name:      mixed.Name(),
		Portions:  portions,
		Spectrum:  mixed.Spectrum(),
		RGB:       stats.RGB,
		Hex:       stats.Hex,
		CreatedAt: s.now(),
	}
	if err := s.mixes.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record mix: %w", err)
	}

	log.Info().Str("mixID", record.ID).Str("name", record.Name).Str("hex", record.Hex).Msg("Mix recorded")
	return record, nil
}

func (s *mixingService) GetMix(ctx context.Context, id uuid.UUID) (*models.Mix, error) {
	return s.mixes.GetByID(ctx, id)
}
