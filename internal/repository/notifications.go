package repository

import (
	"context"

	"uevent/internal/database"
	"uevent/internal/models"
)

type NotificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	query := `
		INSERT INTO notifications (type, title, content, link, is_read, user_id, sent_by_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		n.Type,
		n.Title,
		n.Content,
		n.Link,
		n.IsRead,
		n.UserID,
		n.SentByID,
		n.CreatedAt,
	).Scan(&n.ID)
}
