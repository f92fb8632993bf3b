package seeder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEventSubscriptions(t *testing.T) {
	s := newTestSeeder(42)
	users := testUsers(t, s)
	companies := testCompanies(t, s)
	events := testEvents(t, s, companies)

	subs := s.buildEventSubscriptions(users, events)
	require.NotEmpty(t, subs)

	perUser := map[string]map[string]bool{}
	for _, sub := range subs {
		if perUser[sub.UserID] == nil {
			perUser[sub.UserID] = map[string]bool{}
		}
		assert.False(t, perUser[sub.UserID][sub.EventID], "duplicate subscription pair")
		perUser[sub.UserID][sub.EventID] = true
	}

	for _, followed := range perUser {
		assert.LessOrEqual(t, len(followed), s.cfg.SubscriptionsPerUser.Max)
	}

	assert.Less(t, len(perUser), len(users), "some users must have no subscriptions")
}

func TestBuildCompanySubscriptions(t *testing.T) {
	s := newTestSeeder(42)
	users := testUsers(t, s)
	companies := testCompanies(t, s)

	subs := s.buildCompanySubscriptions(users, companies)
	require.NotEmpty(t, subs)

	type pair struct{ user, company string }
	seen := map[pair]bool{}
	for _, sub := range subs {
		p := pair{sub.UserID, sub.CompanyID}
		assert.False(t, seen[p], "duplicate subscription pair")
		seen[p] = true
	}
}
