package seeder

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"uevent/internal/models"
)

const (
	// eventSkipProb leaves ~20% of events without any attendees.
	eventSkipProb = 0.2
	// fullCapacityProb fills a capped event to exactly its capacity so the
	// sold-out path exists in the fixture set.
	fullCapacityProb = 0.1
	// ticketEventBatchSize bounds how many events persist their attendance
	// concurrently.
	ticketEventBatchSize = 10
)

// attendance bundles the rows written by one attendee transaction.
type attendance struct {
	attendee models.EventAttendee
	ticket   models.Ticket
	payment  *models.Payment
}

// buildEventAttendance plans the attendees of a single event. Capacity is
// never exceeded; attendance past the end date stays possible but rare.
func (s *Seeder) buildEventAttendance(event *models.Event, users []models.User) []attendance {
	var target int
	if event.MaxAttendees != nil && s.rng.Chance(fullCapacityProb) {
		target = min(*event.MaxAttendees, len(users))
	} else {
		limit := len(users) / 2
		if event.MaxAttendees != nil {
			limit = min(limit, *event.MaxAttendees)
		}
		target = s.rng.IntBetween(1, max(limit, 1))
	}

	published := !event.PublishDate.After(s.now)
	ongoing := event.EndDate.After(s.now)

	plans := make([]attendance, 0, target)
	for _, user := range PickSubset(s.rng, users, target, target) {
		if !s.rng.Chance(0.8) && !(published && ongoing) {
			continue
		}

		status := models.TicketValid
		if s.rng.Float64() < 0.2 {
			status = models.TicketUsed
		} else if s.rng.Float64() < 0.1 {
			status = models.TicketCancelled
		}

		var payment *models.Payment
		if event.Price > 0 {
			payment = &models.Payment{
				Amount:        event.Price,
				Status:        models.PaymentCompleted,
				PaymentIntent: "pi_" + s.rng.Alphanumeric(24),
				UserID:        user.ID,
			}
		}

		plans = append(plans, attendance{
			attendee: models.EventAttendee{UserID: user.ID, EventID: event.ID},
			ticket:   models.Ticket{Status: status, UserID: user.ID, EventID: event.ID},
			payment:  payment,
		})
	}
	return plans
}

// persistAttendance writes one event's attendance in bounded batches. A
// failed attendee transaction is logged and skipped; the rest of the event
// keeps going.
func (s *Seeder) persistAttendance(ctx context.Context, eventID string, plans []attendance, counts *ticketCounts) {
	for start := 0; start < len(plans); start += attendeeBatchSize {
		end := min(start+attendeeBatchSize, len(plans))

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(plan *attendance) {
				defer wg.Done()
				if err := s.repos.Tickets.CreateAttendance(ctx, &plan.attendee, &plan.ticket, plan.payment); err != nil {
					s.log.Warn("Skipping attendee after failed transaction",
						"event_id", eventID, "user_id", plan.attendee.UserID, "error", err)
					return
				}
				counts.attendees.Add(1)
				counts.tickets.Add(1)
				if plan.payment != nil {
					counts.payments.Add(1)
				}
			}(&plans[i])
		}
		wg.Wait()
	}
}

type ticketCounts struct {
	attendees atomic.Int64
	tickets   atomic.Int64
	payments  atomic.Int64
}

func (s *Seeder) seedTickets(ctx context.Context, users []models.User, events []models.Event, counts *Counts) error {
	start := time.Now()
	s.log.Info("Creating attendees, tickets and payments...")

	type eventPlan struct {
		eventID string
		plans   []attendance
	}

	var planned []eventPlan
	for i := range events {
		if s.rng.Chance(eventSkipProb) {
			continue
		}
		planned = append(planned, eventPlan{
			eventID: events[i].ID,
			plans:   s.buildEventAttendance(&events[i], users),
		})
	}

	tc := &ticketCounts{}
	if s.dryRun {
		for _, ep := range planned {
			for i := range ep.plans {
				tc.attendees.Add(1)
				tc.tickets.Add(1)
				if ep.plans[i].payment != nil {
					tc.payments.Add(1)
				}
			}
		}
	} else {
		for batch := 0; batch < len(planned); batch += ticketEventBatchSize {
			end := min(batch+ticketEventBatchSize, len(planned))

			var wg sync.WaitGroup
			for i := batch; i < end; i++ {
				wg.Add(1)
				go func(ep *eventPlan) {
					defer wg.Done()
					s.persistAttendance(ctx, ep.eventID, ep.plans, tc)
				}(&planned[i])
			}
			wg.Wait()
		}
	}

	counts.Attendees = int(tc.attendees.Load())
	counts.Tickets = int(tc.tickets.Load())
	counts.Payments = int(tc.payments.Load())

	s.log.Info("Created attendees, tickets and payments",
		"attendees", counts.Attendees,
		"tickets", counts.Tickets,
		"payments", counts.Payments,
		"duration", time.Since(start).Round(time.Millisecond))
	return nil
}
