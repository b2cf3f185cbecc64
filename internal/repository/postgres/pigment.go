package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/RMahshie/spectra/internal/repository"
	"github.com/RMahshie/spectra/pkg/models"
)

// PostgresPigmentRepository implements PigmentRepository for PostgreSQL
type PostgresPigmentRepository struct {
	db *sql.DB
}

// NewPostgresPigmentRepository creates a new PostgreSQL pigment repository
func NewPostgresPigmentRepository(db *sql.DB) repository.PigmentRepository {
	return &PostgresPigmentRepository{db: db}
}

// List retrieves every pigment ordered by name
func (r *PostgresPigmentRepository) List(ctx context.Context) ([]*models.Pigment, error) {
	query := `
		SELECT id, name, spectrum, created_at
		FROM pigments
		ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pigments []*models.Pigment
	for rows.Next() {
		var pigment models.Pigment
		if err := rows.Scan(&pigment.ID, &pigment.Name, pq.Array(&pigment.Spectrum), &pigment.CreatedAt); err != nil {
			return nil, err
		}
		pigments = append(pigments, &pigment)
	}
	return pigments, rows.Err()
}

// GetByID retrieves a pigment by ID
func (r *PostgresPigmentRepository) GetByID(ctx context.Context, id string) (*models.Pigment, error) {
	query := `
		SELECT id, name, spectrum, created_at
		FROM pigments
		WHERE id = $1`

	var pigment models.Pigment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&pigment.ID,
		&pigment.Name,
		pq.Array(&pigment.Spectrum),
		&pigment.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("pigment %s: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &pigment, nil
}

// Create inserts a pigment, replacing the name and spectrum of an existing ID
func (r *PostgresPigmentRepository) Create(ctx context.Context, pigment *models.Pigment) error {
	query := `
		INSERT INTO pigments (id, name, spectrum, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, spectrum = EXCLUDED.spectrum`

	_, err := r.db.ExecContext(ctx, query,
		pigment.ID,
		pigment.Name,
		pq.Array(pigment.Spectrum),
		pigment.CreatedAt)

	return err
}
