package repository

import (
	"context"

	"uevent/internal/database"
	"uevent/internal/models"
)

type CommentRepository struct {
	db *database.DB
}

func NewCommentRepository(db *database.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (content, user_id, event_id, news_id, parent_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		comment.Content,
		comment.UserID,
		comment.EventID,
		comment.NewsID,
		comment.ParentID,
		comment.CreatedAt,
	).Scan(&comment.ID)
}
