package repository

import (
	"context"
	"fmt"

	"uevent/internal/database"
	"uevent/internal/models"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the user row and its settings row in one transaction so a
// user can never exist without settings.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	userQuery := `
		INSERT INTO users (name, email, password_hash, avatar, bio, role, auth_provider, email_verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	if err := tx.QueryRowContext(ctx, userQuery,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Avatar,
		user.Bio,
		user.Role,
		user.AuthProvider,
		user.EmailVerified,
	).Scan(&user.ID, &user.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	settingsQuery := `
		INSERT INTO user_settings (user_id, show_in_attendee_list, show_following_list,
			event_reminder_channel, ticket_purchase_channel, new_comment_channel,
			company_update_channel, theme_main_color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	s := &user.Settings
	if err := tx.QueryRowContext(ctx, settingsQuery,
		user.ID,
		s.ShowInAttendeeList,
		s.ShowFollowingList,
		s.EventReminderChannel,
		s.TicketPurchaseChannel,
		s.NewCommentChannel,
		s.CompanyUpdateChannel,
		s.ThemeMainColor,
	).Scan(&s.ID); err != nil {
		return fmt.Errorf("failed to insert user settings: %w", err)
	}
	s.UserID = user.ID

	return tx.Commit()
}
