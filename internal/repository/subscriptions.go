package repository

import (
	"context"
	"fmt"
	"strings"

	"uevent/internal/database"
	"uevent/internal/models"
)

// maxInsertRows bounds the number of rows per multi-row INSERT so the
// statement stays well below the Postgres parameter limit.
const maxInsertRows = 5000

type SubscriptionRepository struct {
	db *database.DB
}

func NewSubscriptionRepository(db *database.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// CreateEventSubscriptions bulk-inserts event subscriptions, silently
// skipping (user, event) pairs that already exist. Returns the number of
// rows actually inserted.
func (r *SubscriptionRepository) CreateEventSubscriptions(ctx context.Context, subs []models.EventSubscription) (int64, error) {
	var inserted int64
	for start := 0; start < len(subs); start += maxInsertRows {
		end := min(start+maxInsertRows, len(subs))
		chunk := subs[start:end]

		var sb strings.Builder
		sb.WriteString("INSERT INTO event_subscriptions (user_id, event_id) VALUES ")
		args := make([]interface{}, 0, len(chunk)*2)
		for i, s := range chunk {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "($%d, $%d)", i*2+1, i*2+2)
			args = append(args, s.UserID, s.EventID)
		}
		sb.WriteString(" ON CONFLICT DO NOTHING")

		res, err := r.db.ExecContext(ctx, sb.String(), args...)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert event subscriptions: %w", err)
		}
		n, _ := res.RowsAffected()
		inserted += n
	}
	return inserted, nil
}

// CreateCompanySubscriptions bulk-inserts company subscriptions with the
// same duplicate-skipping semantics.
func (r *SubscriptionRepository) CreateCompanySubscriptions(ctx context.Context, subs []models.CompanySubscription) (int64, error) {
	var inserted int64
	for start := 0; start < len(subs); start += maxInsertRows {
		end := min(start+maxInsertRows, len(subs))
		chunk := subs[start:end]

		var sb strings.Builder
		sb.WriteString("INSERT INTO company_subscriptions (user_id, company_id) VALUES ")
		args := make([]interface{}, 0, len(chunk)*2)
		for i, s := range chunk {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "($%d, $%d)", i*2+1, i*2+2)
			args = append(args, s.UserID, s.CompanyID)
		}
		sb.WriteString(" ON CONFLICT DO NOTHING")

		res, err := r.db.ExecContext(ctx, sb.String(), args...)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert company subscriptions: %w", err)
		}
		n, _ := res.RowsAffected()
		inserted += n
	}
	return inserted, nil
}
