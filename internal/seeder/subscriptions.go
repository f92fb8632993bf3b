package seeder

import (
	"context"
	"time"

	"uevent/internal/models"
)

// subscriberSkipProb leaves ~10% of users with no subscriptions at all.
const subscriberSkipProb = 0.1

// buildEventSubscriptions draws, per user, a random subset of events to
// follow. The insert is idempotent so overlapping pairs are simply dropped.
func (s *Seeder) buildEventSubscriptions(users []models.User, events []models.Event) []models.EventSubscription {
	var subs []models.EventSubscription
	for i := range users {
		if s.rng.Chance(subscriberSkipProb) {
			continue
		}
		limit := min(s.cfg.SubscriptionsPerUser.Max, len(events))
		count := s.rng.IntBetween(s.cfg.SubscriptionsPerUser.Min, limit)
		for _, event := range PickSubset(s.rng, events, 0, count) {
			subs = append(subs, models.EventSubscription{UserID: users[i].ID, EventID: event.ID})
		}
	}
	return subs
}

func (s *Seeder) buildCompanySubscriptions(users []models.User, companies []models.Company) []models.CompanySubscription {
	var subs []models.CompanySubscription
	for i := range users {
		if s.rng.Chance(subscriberSkipProb) {
			continue
		}
		limit := min(s.cfg.SubscriptionsPerUser.Max, len(companies))
		count := s.rng.IntBetween(s.cfg.SubscriptionsPerUser.Min, limit)
		for _, company := range PickSubset(s.rng, companies, 0, count) {
			subs = append(subs, models.CompanySubscription{UserID: users[i].ID, CompanyID: company.ID})
		}
	}
	return subs
}

func (s *Seeder) seedEventSubscriptions(ctx context.Context, users []models.User, events []models.Event) (int, error) {
	start := time.Now()
	s.log.Info("Creating event subscriptions...")

	subs := s.buildEventSubscriptions(users, events)

	inserted := len(subs)
	if !s.dryRun {
		n, err := s.repos.Subscriptions.CreateEventSubscriptions(ctx, subs)
		if err != nil {
			return 0, err
		}
		inserted = int(n)
	}

	s.log.Info("Created event subscriptions", "count", inserted, "duration", time.Since(start).Round(time.Millisecond))
	return inserted, nil
}

func (s *Seeder) seedCompanySubscriptions(ctx context.Context, users []models.User, companies []models.Company) (int, error) {
	start := time.Now()
	s.log.Info("Creating company subscriptions...")

	subs := s.buildCompanySubscriptions(users, companies)

	inserted := len(subs)
	if !s.dryRun {
		n, err := s.repos.Subscriptions.CreateCompanySubscriptions(ctx, subs)
		if err != nil {
			return 0, err
		}
		inserted = int(n)
	}

	s.log.Info("Created company subscriptions", "count", inserted, "duration", time.Since(start).Round(time.Millisecond))
	return inserted, nil
}
