package repository

import (
	"context"

	"uevent/internal/database"
	"uevent/internal/models"
)

type CompanyRepository struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	query := `
		INSERT INTO companies (name, email, description, website, logo, cover_image,
			is_verified, stripe_account_id, owner_id, location_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		company.Name,
		company.Email,
		company.Description,
		company.Website,
		company.Logo,
		company.CoverImage,
		company.IsVerified,
		company.StripeAccountID,
		company.OwnerID,
		company.LocationID,
	).Scan(&company.ID, &company.CreatedAt)
}
