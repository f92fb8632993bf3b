package repository

import (
	"context"
	"fmt"

	"uevent/internal/database"
	"uevent/internal/models"
)

type TicketRepository struct {
	db *database.DB
}

func NewTicketRepository(db *database.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// CreateAttendance creates the attendee, its ticket and, for paid events,
// the payment inside one transaction. payment may be nil. On any failure
// the whole bundle is rolled back, leaving no orphaned ticket.
func (r *TicketRepository) CreateAttendance(ctx context.Context, attendee *models.EventAttendee, ticket *models.Ticket, payment *models.Payment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	attendeeQuery := `
		INSERT INTO event_attendees (user_id, event_id)
		VALUES ($1, $2)
		RETURNING id, created_at`

	if err := tx.QueryRowContext(ctx, attendeeQuery,
		attendee.UserID,
		attendee.EventID,
	).Scan(&attendee.ID, &attendee.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert attendee: %w", err)
	}

	ticket.AttendeeID = attendee.ID
	ticketQuery := `
		INSERT INTO tickets (status, user_id, event_id, attendee_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	if err := tx.QueryRowContext(ctx, ticketQuery,
		ticket.Status,
		ticket.UserID,
		ticket.EventID,
		ticket.AttendeeID,
	).Scan(&ticket.ID, &ticket.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert ticket: %w", err)
	}

	if payment != nil {
		payment.TicketID = ticket.ID
		paymentQuery := `
			INSERT INTO payments (amount, status, payment_intent, user_id, ticket_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at`

		if err := tx.QueryRowContext(ctx, paymentQuery,
			payment.Amount,
			payment.Status,
			payment.PaymentIntent,
			payment.UserID,
			payment.TicketID,
		).Scan(&payment.ID, &payment.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert payment: %w", err)
		}
	}

	return tx.Commit()
}
