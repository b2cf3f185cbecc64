// Package memory keeps pigments and mixes in process, for running without a
// database.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/RMahshie/spectra/internal/repository"
	"github.com/RMahshie/spectra/pkg/models"
)

// PigmentRepository implements repository.PigmentRepository in memory
type PigmentRepository struct {
	mu       sync.RWMutex
	pigments map[string]*models.Pigment
}

// NewPigmentRepository creates an empty in-memory pigment repository
func NewPigmentRepository() *PigmentRepository {
	return &PigmentRepository{pigments: make(map[string]*models.Pigment)}
}

// List returns every pigment ordered by name
func (r *PigmentRepository) List(ctx context.Context) ([]*models.Pigment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pigments := make([]*models.Pigment, 0, len(r.pigments))
	for _, p := range r.pigments {
		pigments = append(pigments, clonePigment(p))
	}
	slices.SortFunc(pigments, func(a, b *models.Pigment) int {
		return strings.Compare(a.Name, b.Name)
	})
	return pigments, nil
}

// GetByID returns one pigment
func (r *PigmentRepository) GetByID(ctx context.Context, id string) (*models.Pigment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.pigments[id]
	if !ok {
		return nil, fmt.Errorf("pigment %s: %w", id, repository.ErrNotFound)
	}
	return clonePigment(p), nil
}

// Create stores a pigment, replacing any with the same ID
func (r *PigmentRepository) Create(ctx context.Context, pigment *models.Pigment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pigments[pigment.ID] = clonePigment(pigment)
	return nil
}

// MixRepository implements repository.MixRepository in memory
type MixRepository struct {
	mu    sync.RWMutex
	mixes map[uuid.UUID]*models.Mix
}

// NewMixRepository creates an empty in-memory mix repository
func NewMixRepository() *MixRepository {
	return &MixRepository{mixes: make(map[uuid.UUID]*models.Mix)}
}

// Create stores a mix
func (r *MixRepository) Create(ctx context.Context, mix *models.Mix) error {
	id, err := uuid.Parse(mix.ID)
	if err != nil {
		return fmt.Errorf("invalid mix ID %q: %w", mix.ID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.mixes[id]; taken {
		return fmt.Errorf("mix %s already exists", id)
	}
	r.mixes[id] = cloneMix(mix)
	return nil
}

// GetByID returns one mix
func (r *MixRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Mix, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.mixes[id]
	if !ok {
		return nil, fmt.Errorf("mix %s: %w", id, repository.ErrNotFound)
	}
	return cloneMix(m), nil
}

func clonePigment(p *models.Pigment) *models.Pigment {
	out := *p
	out.Spectrum = slices.Clone(p.Spectrum)
	return &out
}

func cloneMix(m *models.Mix) *models.Mix {
	out := *m
	out.Portions = slices.Clone(m.Portions)
	out.Spectrum = slices.Clone(m.Spectrum)
	return &out
}
