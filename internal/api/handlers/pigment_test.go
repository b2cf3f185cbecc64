package handlers

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/spectra/internal/repository"
	"github.com/RMahshie/spectra/internal/spectrum"
	"github.com/RMahshie/spectra/pkg/models"
)

// MockPigmentRepository implements repository.PigmentRepository for testing
type MockPigmentRepository struct {
	mock.Mock
}

func (m *MockPigmentRepository) List(ctx context.Context) ([]*models.Pigment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Pigment), args.Error(1)
}

func (m *MockPigmentRepository) GetByID(ctx context.Context, id string) (*models.Pigment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pigment), args.Error(1)
}

func (m *MockPigmentRepository) Create(ctx context.Context, pigment *models.Pigment) error {
	args := m.Called(ctx, pigment)
	return args.Error(0)
}

func TestListPigments(t *testing.T) {
	repo := &MockPigmentRepository{}
	repo.On("List", mock.Anything).Return([]*models.Pigment{
		{ID: "ivory-black", Name: "Ivory Black", Spectrum: spectrum.Flat(0)},
		{ID: "gray", Name: "Gray", Spectrum: spectrum.Flat(0.5)},
	}, nil)
	handler := NewPigmentHandler(repo)

	resp, err := handler.ListPigments(context.Background(), &struct{}{})
	require.NoError(t, err)
	require.Len(t, resp.Body.Pigments, 2)
	assert.Equal(t, "000000", resp.Body.Pigments[0].Hex)
	assert.Equal(t, "bababa", resp.Body.Pigments[1].Hex)
	repo.AssertExpectations(t)
}

func TestListPigments_Failure(t *testing.T) {
	repo := &MockPigmentRepository{}
	repo.On("List", mock.Anything).Return(nil, assert.AnError)

	_, err := NewPigmentHandler(repo).ListPigments(context.Background(), &struct{}{})
	requireStatus(t, err, 500)
}

func TestGetPigment(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		mockSetup  func(*MockPigmentRepository)
		wantStatus int
	}{
		{
			name: "found",
			id:   "gray",
			mockSetup: func(repo *MockPigmentRepository) {
				repo.On("GetByID", mock.Anything, "gray").Return(&models.Pigment{ID: "gray", Name: "Gray", Spectrum: spectrum.Flat(0.5)}, nil)
			},
		},
		{
			name: "unknown",
			id:   "mauve",
			mockSetup: func(repo *MockPigmentRepository) {
				repo.On("GetByID", mock.Anything, "mauve").Return(nil, fmt.Errorf("pigment mauve: %w", repository.ErrNotFound))
			},
			wantStatus: 404,
		},
		{
			name: "stored off the grid",
			id:   "stub",
			mockSetup: func(repo *MockPigmentRepository) {
				repo.On("GetByID", mock.Anything, "stub").Return(&models.Pigment{ID: "stub", Name: "Stub", Spectrum: []float64{0.5}}, nil)
			},
			wantStatus: 422,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockPigmentRepository{}
			tt.mockSetup(repo)

			resp, err := NewPigmentHandler(repo).GetPigment(context.Background(), &models.GetPigmentRequest{ID: tt.id})

			if tt.wantStatus != 0 {
				requireStatus(t, err, tt.wantStatus)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Gray", resp.Body.Name)
				assert.Len(t, resp.Body.Wavelengths, spectrum.GridSize)
				assert.Len(t, resp.Body.Spectrum, spectrum.GridSize)
			}
			repo.AssertExpectations(t)
		})
	}
}
