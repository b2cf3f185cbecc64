package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/RMahshie/spectra/pkg/models"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("not found")

// PigmentRepository defines the interface for pigment catalog operations
type PigmentRepository interface {
	List(ctx context.Context) ([]*models.Pigment, error)
	GetByID(ctx context.Context, id string) (*models.Pigment, error)
	Create(ctx context.Context, pigment *models.Pigment) error
}

// MixRepository defines the interface for recorded mix operations
type MixRepository interface {
	Create(ctx context.Context, mix *models.Mix) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Mix, error)
}
