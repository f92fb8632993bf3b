package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"uevent/internal/config"
	"uevent/internal/repository"
)

// Batch sizes per stage. A batch of creates is issued concurrently and
// awaited before the next batch starts, which bounds in-flight transactions.
const (
	userBatchSize         = 50
	companyBatchSize      = 25
	eventBatchSize        = 50
	attendeeBatchSize     = 20
	commentBatchSize      = 100
	newsBatchSize         = 50
	notificationBatchSize = 100
)

// Seeder runs the full fixture-generation pipeline against a freshly
// truncated store. Stages run strictly in dependency order; each stage's
// committed output feeds the next stage.
type Seeder struct {
	cfg    config.Seed
	rng    *Rand
	repos  *repository.Repositories
	log    *slog.Logger
	dryRun bool
	now    time.Time
}

func New(cfg config.Seed, rng *Rand, repos *repository.Repositories, log *slog.Logger, dryRun bool) *Seeder {
	return &Seeder{
		cfg:    cfg,
		rng:    rng,
		repos:  repos,
		log:    log,
		dryRun: dryRun,
		now:    time.Now(),
	}
}

// Counts aggregates how many rows each stage produced.
type Counts struct {
	Locations            int
	Users                int
	Companies            int
	Events               int
	EventSubscriptions   int
	CompanySubscriptions int
	Attendees            int
	Tickets              int
	Payments             int
	Comments             int
	Reactions            int
	News                 int
	PromoCodes           int
	Notifications        int
}

// Run executes every stage in dependency order and returns the aggregate
// counts. Partial data from completed stages stays in place on failure.
func (s *Seeder) Run(ctx context.Context) (*Counts, error) {
	start := time.Now()
	counts := &Counts{}

	users, err := s.seedUsers(ctx)
	if err != nil {
		return counts, fmt.Errorf("user stage failed: %w", err)
	}
	counts.Users = len(users)

	companies, err := s.seedCompanies(ctx, users, counts)
	if err != nil {
		return counts, fmt.Errorf("company stage failed: %w", err)
	}
	counts.Companies = len(companies)

	events, err := s.seedEvents(ctx, companies, counts)
	if err != nil {
		return counts, fmt.Errorf("event stage failed: %w", err)
	}
	counts.Events = len(events)

	if counts.EventSubscriptions, err = s.seedEventSubscriptions(ctx, users, events); err != nil {
		return counts, fmt.Errorf("event subscription stage failed: %w", err)
	}

	if counts.CompanySubscriptions, err = s.seedCompanySubscriptions(ctx, users, companies); err != nil {
		return counts, fmt.Errorf("company subscription stage failed: %w", err)
	}

	if err = s.seedTickets(ctx, users, events, counts); err != nil {
		return counts, fmt.Errorf("ticket stage failed: %w", err)
	}

	eventComments, err := s.seedComments(ctx, eventTargets(events), users, "event comments")
	if err != nil {
		return counts, fmt.Errorf("event comment stage failed: %w", err)
	}
	counts.Comments += len(eventComments)

	reactions, err := s.seedReactions(ctx, eventComments, users, "reactions")
	if err != nil {
		return counts, fmt.Errorf("reaction stage failed: %w", err)
	}
	counts.Reactions += reactions

	news, err := s.seedNews(ctx, companies)
	if err != nil {
		return counts, fmt.Errorf("news stage failed: %w", err)
	}
	counts.News = len(news)

	newsComments, err := s.seedComments(ctx, newsTargets(news), users, "news comments")
	if err != nil {
		return counts, fmt.Errorf("news comment stage failed: %w", err)
	}
	counts.Comments += len(newsComments)

	newsReactions, err := s.seedReactions(ctx, newsComments, users, "news reactions")
	if err != nil {
		return counts, fmt.Errorf("news reaction stage failed: %w", err)
	}
	counts.Reactions += newsReactions

	if counts.PromoCodes, err = s.seedPromoCodes(ctx, companies); err != nil {
		return counts, fmt.Errorf("promo code stage failed: %w", err)
	}

	if counts.Notifications, err = s.seedNotifications(ctx, users, events, companies); err != nil {
		return counts, fmt.Errorf("notification stage failed: %w", err)
	}

	s.log.Info("Seeding completed",
		"duration", time.Since(start).Round(time.Millisecond),
		"locations", counts.Locations,
		"users", counts.Users,
		"companies", counts.Companies,
		"events", counts.Events,
		"event_subscriptions", counts.EventSubscriptions,
		"company_subscriptions", counts.CompanySubscriptions,
		"attendees", counts.Attendees,
		"tickets", counts.Tickets,
		"payments", counts.Payments,
		"comments", counts.Comments,
		"reactions", counts.Reactions,
		"news", counts.News,
		"promo_codes", counts.PromoCodes,
		"notifications", counts.Notifications)

	return counts, nil
}

// createInBatches persists items through create, issuing up to size calls
// concurrently and waiting for each batch to settle before starting the
// next. Input order is preserved because every goroutine writes only to its
// own element. The first error fails the stage.
func createInBatches[T any](ctx context.Context, items []T, size int, create func(context.Context, *T) error) error {
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))

		var wg sync.WaitGroup
		errCh := make(chan error, end-start)
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(item *T) {
				defer wg.Done()
				if err := create(ctx, item); err != nil {
					errCh <- err
				}
			}(&items[i])
		}
		wg.Wait()
		close(errCh)

		for err := range errCh {
			if err != nil {
				return err
			}
		}
	}
	return nil
}
