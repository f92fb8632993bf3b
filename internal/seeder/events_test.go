package seeder

import (
	"context"
	"strings"
	"testing"
	"time"

	"uevent/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCompanies(t *testing.T, s *Seeder) []models.Company {
	t.Helper()
	users := testUsers(t, s)
	companies, err := s.seedCompanies(context.Background(), users, &Counts{})
	require.NoError(t, err)
	return companies
}

func testEvents(t *testing.T, s *Seeder, companies []models.Company) []models.Event {
	t.Helper()
	events, err := s.seedEvents(context.Background(), companies, &Counts{})
	require.NoError(t, err)
	return events
}

func TestBuildEvents(t *testing.T) {
	s := newTestSeeder(42)
	companies := testCompanies(t, s)
	events := testEvents(t, s, companies)
	require.NotEmpty(t, events)

	companyByID := map[string]*models.Company{}
	for i := range companies {
		companyByID[companies[i].ID] = &companies[i]
	}

	locationIDs := map[string]bool{}
	for _, e := range events {
		company, ok := companyByID[e.CompanyID]
		require.True(t, ok, "event references unknown company")
		assert.Equal(t, company.OwnerID, e.CreatorID)

		assert.True(t, e.EndDate.After(e.StartDate))
		duration := e.EndDate.Sub(e.StartDate)
		assert.GreaterOrEqual(t, duration, time.Hour)
		assert.LessOrEqual(t, duration, 8*time.Hour)

		assert.GreaterOrEqual(t, len(e.Themes), 1)
		assert.LessOrEqual(t, len(e.Themes), 3)

		assert.GreaterOrEqual(t, e.Price, 0.0)
		if e.MaxAttendees != nil {
			assert.GreaterOrEqual(t, *e.MaxAttendees, 20)
			assert.LessOrEqual(t, *e.MaxAttendees, 1000)
		}

		if e.StripeProductID != nil {
			require.NotNil(t, e.StripePriceID)
			assert.Positive(t, e.Price)
			assert.True(t, company.IsVerified)
			require.NotNil(t, company.StripeAccountID)
			assert.True(t, strings.HasPrefix(*e.StripeProductID, "prod_"))
			assert.True(t, strings.HasPrefix(*e.StripePriceID, "price_"))
		}

		// Billing objects are mandatory for paid events of billing-enabled
		// companies.
		if e.Price > 0 && company.IsVerified && company.StripeAccountID != nil {
			assert.NotNil(t, e.StripeProductID)
		}

		if e.LocationID != nil {
			assert.False(t, locationIDs[*e.LocationID], "location %s assigned twice", *e.LocationID)
			locationIDs[*e.LocationID] = true
		}
	}
}

func TestSomeCompaniesHaveNoEvents(t *testing.T) {
	s := newTestSeeder(42)
	companies := testCompanies(t, s)
	events := testEvents(t, s, companies)

	withEvents := map[string]bool{}
	for _, e := range events {
		withEvents[e.CompanyID] = true
	}

	assert.Less(t, len(withEvents), len(companies), "every company having events is implausible")
}

func TestMostEventsAlreadyPublished(t *testing.T) {
	s := newTestSeeder(42)
	companies := testCompanies(t, s)
	events := testEvents(t, s, companies)
	require.NotEmpty(t, events)

	published := 0
	for _, e := range events {
		if !e.PublishDate.After(s.now) {
			published++
		}
	}
	assert.Greater(t, float64(published)/float64(len(events)), 0.6)
}
