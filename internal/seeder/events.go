package seeder

import (
	"context"
	"fmt"
	"math"
	"time"

	"uevent/internal/models"
)

// eventHasLocationProb is the share of events that attempt to draw a venue;
// the rest are virtual from the start.
const eventHasLocationProb = 0.8

// companySkipProb leaves ~10% of companies without any events so downstream
// consumers see the empty-relation case.
const companySkipProb = 0.1

// estimateEventCount sizes the event-location pool before generation. The
// per-company draws here are independent from the ones made during
// generation, so the actual total drifts from the estimate; the drift is
// intentional and only affects how many surplus locations get seeded.
func (s *Seeder) estimateEventCount(companyCount int) int {
	total := 0
	for i := 0; i < companyCount; i++ {
		if s.rng.Float64() >= companySkipProb {
			total += s.rng.IntBetween(s.cfg.EventsPerCompany.Min, s.cfg.EventsPerCompany.Max)
		}
	}
	return total
}

// buildCompanyEvents generates the events of a single company. posterIndex
// seeds the poster URLs and advances across companies.
func (s *Seeder) buildCompanyEvents(company *models.Company, pool *locationPool, posterIndex *int) []models.Event {
	count := s.rng.IntBetween(s.cfg.EventsPerCompany.Min, s.cfg.EventsPerCompany.Max)
	events := make([]models.Event, 0, count)

	for i := 0; i < count; i++ {
		startDate := s.rng.EventDate(s.now)
		endDate := startDate.Add(time.Duration(s.rng.IntBetween(1, 8)) * time.Hour)
		publishDate := startDate.AddDate(0, 0, -s.rng.IntBetween(14, 60))

		// Most events must already be published; the remaining ~20% keep a
		// future publish date and act as scheduled events.
		if s.rng.Float64() > 0.2 && publishDate.After(s.now) {
			publishDate = s.now.AddDate(0, 0, -s.rng.IntBetween(1, 7))
		}

		price := 0.0
		if !s.rng.Chance(0.3) {
			price = math.Round((s.rng.Float64()*200+10)*100) / 100
		}

		var maxAttendees *int
		if s.rng.Chance(0.7) {
			n := s.rng.IntBetween(20, 1000)
			maxAttendees = &n
		}

		var stripeProductID, stripePriceID *string
		if price > 0 && company.IsVerified && company.StripeAccountID != nil {
			prod := "prod_" + s.rng.Alphanumeric(14)
			pr := "price_" + s.rng.Alphanumeric(14)
			stripeProductID = &prod
			stripePriceID = &pr
		}

		var locationID *string
		if s.rng.Chance(eventHasLocationProb) {
			if location, ok := pool.Next(); ok {
				locationID = &location.ID
			} else {
				s.log.Info("No more available event locations, creating virtual event instead")
			}
		}

		events = append(events, models.Event{
			Title:               s.rng.catchphrase(),
			Description:         s.rng.paragraphs(3),
			PosterURL:           eventPosterImage.url(s.rng, *posterIndex),
			StartDate:           startDate,
			EndDate:             endDate,
			PublishDate:         publishDate,
			Price:               price,
			MaxAttendees:        maxAttendees,
			ShowAttendeeList:    s.rng.Float64() > 0.2,
			NotifyOnNewAttendee: s.rng.Float64() > 0.5,
			Format:              PickAny(s.rng, models.EventFormats),
			Themes:              PickSubset(s.rng, models.EventThemes, 1, 3),
			StripeProductID:     stripeProductID,
			StripePriceID:       stripePriceID,
			CompanyID:           company.ID,
			CreatorID:           company.OwnerID,
			LocationID:          locationID,
		})
		*posterIndex++
	}
	return events
}

func (s *Seeder) seedEvents(ctx context.Context, companies []models.Company, counts *Counts) ([]models.Event, error) {
	start := time.Now()

	estimate := s.estimateEventCount(len(companies))
	s.log.Info("Creating events...", "estimated", estimate)

	locations, err := s.seedLocations(ctx, estimate)
	if err != nil {
		return nil, fmt.Errorf("event location stage failed: %w", err)
	}
	counts.Locations += len(locations)
	pool := newLocationPool(s.rng, locations)

	var events []models.Event
	posterIndex := 0
	for i := range companies {
		if s.rng.Chance(companySkipProb) {
			continue
		}
		events = append(events, s.buildCompanyEvents(&companies[i], pool, &posterIndex)...)
	}

	if s.dryRun {
		assignFakeIDs(events, func(e *models.Event, id string) { e.ID = id; e.CreatedAt = s.now })
	} else if err := createInBatches(ctx, events, eventBatchSize, s.repos.Events.Create); err != nil {
		return nil, err
	}

	s.log.Info("Created events", "count", len(events), "duration", time.Since(start).Round(time.Millisecond))
	return events, nil
}
