package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/RMahshie/spectra/internal/repository"
	"github.com/RMahshie/spectra/pkg/models"
)

// PostgresMixRepository implements MixRepository for PostgreSQL
type PostgresMixRepository struct {
	db *sql.DB
}

// NewPostgresMixRepository creates a new PostgreSQL mix repository
func NewPostgresMixRepository(db *sql.DB) repository.MixRepository {
	return &PostgresMixRepository{db: db}
}

// Create inserts a recorded mix
func (r *PostgresMixRepository) Create(ctx context.Context, mix *models.Mix) error {
	portions, err := json.Marshal(mix.Portions)
	if err != nil {
		return fmt.Errorf("failed to marshal portions: %w", err)
	}

	query := `
		INSERT INTO mixes (id, name, portions, spectrum, rgb, hex, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = r.db.ExecContext(ctx, query,
		mix.ID,
		mix.Name,
		portions,
		pq.Array(mix.Spectrum),
		pq.Array(mix.RGB[:]),
		mix.Hex,
		mix.CreatedAt)

	return err
}

// GetByID retrieves a recorded mix by ID
func (r *PostgresMixRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Mix, error) {
	query := `
		SELECT id, name, portions, spectrum, rgb, hex, created_at
		FROM mixes
		WHERE id = $1`

	var mix models.Mix
	var portions []byte
	var rgb []float64

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&mix.ID,
		&mix.Name,
		&portions,
		pq.Array(&mix.Spectrum),
		pq.Array(&rgb),
		&mix.Hex,
		&mix.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("mix %s: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(portions, &mix.Portions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal portions: %w", err)
	}
	copy(mix.RGB[:], rgb)

	return &mix, nil
}
