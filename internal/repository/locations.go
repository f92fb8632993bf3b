package repository

import (
	"context"
	"fmt"

	"uevent/internal/database"
	"uevent/internal/models"
)

type LocationRepository struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// CreateAll persists every location inside a single transaction and fills in
// the generated identifiers. Either all rows land or none do.
func (r *LocationRepository) CreateAll(ctx context.Context, locations []models.Location) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO locations (address, latitude, longitude)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	for i := range locations {
		loc := &locations[i]
		if err := tx.QueryRowContext(ctx, query,
			loc.Address,
			loc.Latitude,
			loc.Longitude,
		).Scan(&loc.ID, &loc.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert location %d: %w", i, err)
		}
	}

	return tx.Commit()
}
