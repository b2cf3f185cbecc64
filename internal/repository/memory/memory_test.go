package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/spectra/internal/repository"
	"github.com/RMahshie/spectra/pkg/models"
)

var (
	_ repository.PigmentRepository = (*PigmentRepository)(nil)
	_ repository.MixRepository     = (*MixRepository)(nil)
)

func TestPigmentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPigmentRepository()

	require.NoError(t, repo.Create(ctx, &models.Pigment{ID: "zinc-white", Name: "Zinc White", Spectrum: []float64{0.9}}))
	require.NoError(t, repo.Create(ctx, &models.Pigment{ID: "burnt-umber", Name: "Burnt Umber", Spectrum: []float64{0.1}}))

	pigments, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, pigments, 2)
	assert.Equal(t, "Burnt Umber", pigments[0].Name)
	assert.Equal(t, "Zinc White", pigments[1].Name)

	got, err := repo.GetByID(ctx, "zinc-white")
	require.NoError(t, err)
	got.Spectrum[0] = 0
	again, err := repo.GetByID(ctx, "zinc-white")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.9}, again.Spectrum, "callers get copies")

	_, err = repo.GetByID(ctx, "mauve")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPigmentRepository_CreateReplaces(t *testing.T) {
	ctx := context.Background()
	repo := NewPigmentRepository()

	require.NoError(t, repo.Create(ctx, &models.Pigment{ID: "viridian", Name: "Viridian", Spectrum: []float64{0.2}}))
	require.NoError(t, repo.Create(ctx, &models.Pigment{ID: "viridian", Name: "Viridian Hue", Spectrum: []float64{0.3}}))

	got, err := repo.GetByID(ctx, "viridian")
	require.NoError(t, err)
	assert.Equal(t, "Viridian Hue", got.Name)
}

func TestMixRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMixRepository()
	id := uuid.New()

	mix := &models.Mix{
		ID:        id.String(),
		Name:      "50.0% Titanium White + 50.0% Ivory Black",
		Portions:  []models.Portion{{PigmentID: "titanium-white", Proportion: 1}, {PigmentID: "ivory-black", Proportion: 1}},
		Spectrum:  []float64{0.4, 0.5},
		RGB:       [3]float64{0.6, 0.6, 0.6},
		Hex:       "999999",
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, mix))
	assert.Error(t, repo.Create(ctx, mix), "IDs are unique")

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, mix, got)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.Error(t, repo.Create(ctx, &models.Mix{ID: "not-a-uuid"}))
}

func TestMixRepository_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewMixRepository()

	var wg sync.WaitGroup
	ids := make([]uuid.UUID, 32)
	for i := range ids {
		ids[i] = uuid.New()
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			assert.NoError(t, repo.Create(ctx, &models.Mix{ID: id.String(), Name: "mix"}))
		}(ids[i])
	}
	wg.Wait()

	for _, id := range ids {
		_, err := repo.GetByID(ctx, id)
		assert.NoError(t, err)
	}
}
