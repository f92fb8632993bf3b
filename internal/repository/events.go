package repository

import (
	"context"

	"uevent/internal/database"
	"uevent/internal/models"

	"github.com/lib/pq"
)

type EventRepository struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (title, description, poster_url, start_date, end_date, publish_date,
			price, max_attendees, show_attendee_list, notify_on_new_attendee, format, themes,
			stripe_product_id, stripe_price_id, company_id, creator_id, location_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at`

	themes := make([]string, len(event.Themes))
	for i, t := range event.Themes {
		themes[i] = string(t)
	}

	return r.db.QueryRowContext(ctx, query,
		event.Title,
		event.Description,
		event.PosterURL,
		event.StartDate,
		event.EndDate,
		event.PublishDate,
		event.Price,
		event.MaxAttendees,
		event.ShowAttendeeList,
		event.NotifyOnNewAttendee,
		event.Format,
		pq.Array(themes),
		event.StripeProductID,
		event.StripePriceID,
		event.CompanyID,
		event.CreatorID,
		event.LocationID,
	).Scan(&event.ID, &event.CreatedAt)
}
