package pigment

import (
	"context"
	"fmt"
	"time"

	"github.com/RMahshie/spectra/internal/repository"
	"github.com/RMahshie/spectra/pkg/models"
)

// Model converts a catalog entry to its stored form.
func (p Pigment) Model(createdAt time.Time) *models.Pigment {
	return &models.Pigment{
		ID:        p.ID,
		Name:      p.Name,
		Spectrum:  p.Color.Spectrum(),
		CreatedAt: createdAt,
	}
}

// Seed writes every pigment to repo. Stores that upsert make this idempotent.
func Seed(ctx context.Context, repo repository.PigmentRepository, pigments []Pigment) error {
	now := time.Now()
	for _, p := range pigments {
		if err := repo.Create(ctx, p.Model(now)); err != nil {
			return fmt.Errorf("failed to seed pigment %s: %w", p.ID, err)
		}
	}
	return nil
}
