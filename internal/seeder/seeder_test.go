package seeder

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"uevent/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Seed {
	return config.Seed{
		Users:     250,
		Companies: 150,

		EventsPerCompany:     config.Range{Min: 2, Max: 15},
		CommentsPerTarget:    config.Range{Min: 0, Max: 15},
		ReactionsPerComment:  config.Range{Min: 0, Max: 8},
		PromoCodesPerCompany: config.Range{Min: 0, Max: 3},
		NewsPerCompany:       config.Range{Min: 0, Max: 5},
		SubscriptionsPerUser: config.Range{Min: 0, Max: 10},
		NotificationsPerUser: config.Range{Min: 0, Max: 15},
	}
}

// newTestSeeder returns a dry-run seeder with a fixed seed. All build phases
// are pure, so no repositories are needed.
func newTestSeeder(seed int64) *Seeder {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(testConfig(), NewRand(seed), nil, log, true)
}

func TestRunDryRunPipeline(t *testing.T) {
	s := newTestSeeder(42)

	counts, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, s.cfg.Users, counts.Users)
	assert.Equal(t, s.cfg.Companies, counts.Companies)
	assert.Positive(t, counts.Events)
	assert.GreaterOrEqual(t, counts.Locations, counts.Companies)
	assert.Positive(t, counts.EventSubscriptions)
	assert.Positive(t, counts.CompanySubscriptions)
	assert.Equal(t, counts.Attendees, counts.Tickets)
	assert.LessOrEqual(t, counts.Payments, counts.Tickets)
	assert.Positive(t, counts.Comments)
	assert.Positive(t, counts.Reactions)
	assert.Positive(t, counts.News)
	assert.Positive(t, counts.PromoCodes)
	assert.Positive(t, counts.Notifications)
}

func TestRunIsDeterministicForSameSeed(t *testing.T) {
	a, err := newTestSeeder(7).Run(context.Background())
	require.NoError(t, err)
	b, err := newTestSeeder(7).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
