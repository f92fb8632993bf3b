package seeder

import (
	"context"
	"strings"
	"testing"

	"uevent/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUsers(t *testing.T, s *Seeder) []models.User {
	t.Helper()
	users, err := s.seedUsers(context.Background())
	require.NoError(t, err)
	return users
}

func testPool(s *Seeder, count int) *locationPool {
	locations := s.buildLocations(count)
	assignFakeIDs(locations, func(l *models.Location, id string) { l.ID = id })
	return newLocationPool(s.rng, locations)
}

func TestBuildCompanies(t *testing.T) {
	s := newTestSeeder(42)
	users := testUsers(t, s)

	companies := s.buildCompanies(users, testPool(s, s.cfg.Companies))
	require.Len(t, companies, s.cfg.Companies)

	userIDs := map[string]bool{}
	for _, u := range users {
		userIDs[u.ID] = true
	}

	locationIDs := map[string]bool{}
	for _, c := range companies {
		assert.True(t, userIDs[c.OwnerID], "owner must be a generated user")

		assert.False(t, locationIDs[c.LocationID], "location %s assigned twice", c.LocationID)
		locationIDs[c.LocationID] = true

		if c.IsVerified {
			require.NotNil(t, c.StripeAccountID)
			assert.True(t, strings.HasPrefix(*c.StripeAccountID, "acct_"))
			assert.Len(t, *c.StripeAccountID, len("acct_")+16)
		} else {
			assert.Nil(t, c.StripeAccountID, "unverified company must not have a billing account")
		}

		require.NotNil(t, c.Website)
		assert.True(t, strings.HasPrefix(*c.Website, "https://www."))
	}
}

func TestBuildCompaniesStopsWhenLocationsRunOut(t *testing.T) {
	s := newTestSeeder(42)
	users := testUsers(t, s)

	companies := s.buildCompanies(users, testPool(s, 10))
	assert.Len(t, companies, 10)
}
