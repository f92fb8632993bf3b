package seeder

import (
	"strings"
	"testing"

	"uevent/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNotifications(t *testing.T) {
	s := newTestSeeder(42)
	users := testUsers(t, s)
	companies := testCompanies(t, s)
	events := testEvents(t, s, companies)

	notifications := s.buildNotifications(users, events, companies)
	require.NotEmpty(t, notifications)

	userIDs := map[string]bool{}
	for _, u := range users {
		userIDs[u.ID] = true
	}

	perUser := map[string]int{}
	for _, n := range notifications {
		assert.True(t, userIDs[n.UserID], "notification addressed to unknown user")
		assert.NotEmpty(t, n.Title)
		assert.NotEmpty(t, n.Content)
		assert.False(t, n.CreatedAt.After(s.now))
		assert.False(t, n.CreatedAt.Before(s.now.AddDate(0, 0, -30)))
		perUser[n.UserID]++

		switch n.Type {
		case models.NotifyEventReminder, models.NotifyEventUpdate:
			require.NotNil(t, n.Link)
			assert.True(t, strings.HasPrefix(*n.Link, "/events/"))
		case models.NotifyTicketPurchase:
			require.NotNil(t, n.Link)
			assert.True(t, strings.HasPrefix(*n.Link, "/users/"))
			assert.True(t, strings.HasSuffix(*n.Link, "/tickets"))
		case models.NotifyNewComment:
			require.NotNil(t, n.Link)
			assert.True(t, strings.HasSuffix(*n.Link, "#comments"))
			assert.NotNil(t, n.SentByID)
		case models.NotifyNewEventAttendee:
			require.NotNil(t, n.Link)
			assert.True(t, strings.HasSuffix(*n.Link, "#attendees"))
			assert.NotNil(t, n.SentByID)
		case models.NotifyCompanyUpdate:
			require.NotNil(t, n.Link)
			assert.True(t, strings.HasPrefix(*n.Link, "/companies/"))
			assert.NotNil(t, n.SentByID)
		case models.NotifyEventDelete:
			assert.Nil(t, n.Link, "cancelled events have no page to link")
			assert.NotNil(t, n.SentByID)
		}
	}

	for _, count := range perUser {
		assert.LessOrEqual(t, count, s.cfg.NotificationsPerUser.Max)
	}
	assert.Less(t, len(perUser), len(users), "some users must have an empty feed")
}

func TestBuildNotificationSkipsUnresolvableEventUpdate(t *testing.T) {
	s := newTestSeeder(42)
	user := models.User{ID: "u1", Name: "A B"}
	users := []models.User{user}
	events := []models.Event{{ID: "e1", Title: "Orphan", CompanyID: "missing"}}

	for i := 0; i < 200; i++ {
		n := s.buildNotification(&user, users, events, nil, map[string]*models.Company{})
		if n == nil {
			continue
		}
		assert.NotEqual(t, models.NotifyEventUpdate, n.Type,
			"update notifications need a resolvable company")
	}
}

func TestBuildNotificationWithoutEvents(t *testing.T) {
	s := newTestSeeder(42)
	user := models.User{ID: "u1", Name: "A B"}
	companies := []models.Company{{ID: "c1", Name: "Acme", OwnerID: "u2"}}
	companyByID := map[string]*models.Company{"c1": &companies[0]}

	eventTypes := map[models.NotificationType]bool{
		models.NotifyEventReminder:    true,
		models.NotifyTicketPurchase:   true,
		models.NotifyNewComment:       true,
		models.NotifyEventUpdate:      true,
		models.NotifyNewEventAttendee: true,
	}

	for i := 0; i < 200; i++ {
		n := s.buildNotification(&user, []models.User{user}, nil, companies, companyByID)
		if n == nil {
			continue
		}
		assert.False(t, eventTypes[n.Type], "event-backed notification without events")
	}
}
