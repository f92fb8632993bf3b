package repository

import (
	"context"

	"uevent/internal/database"
	"uevent/internal/models"
)

type NewsRepository struct {
	db *database.DB
}

func NewNewsRepository(db *database.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) Create(ctx context.Context, news *models.CompanyNews) error {
	query := `
		INSERT INTO company_news (title, content, image_url, company_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		news.Title,
		news.Content,
		news.ImageURL,
		news.CompanyID,
		news.CreatedAt,
	).Scan(&news.ID)
}
