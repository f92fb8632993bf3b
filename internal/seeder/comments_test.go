package seeder

import (
	"context"
	"testing"

	"uevent/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedEventComments(t *testing.T) {
	s := newTestSeeder(42)
	users := testUsers(t, s)
	companies := testCompanies(t, s)
	events := testEvents(t, s, companies)

	comments, err := s.seedComments(context.Background(), eventTargets(events), users, "event comments")
	require.NoError(t, err)
	require.NotEmpty(t, comments)

	byID := map[string]*models.Comment{}
	for i := range comments {
		byID[comments[i].ID] = &comments[i]
	}

	for _, c := range comments {
		require.NotNil(t, c.EventID)
		assert.Nil(t, c.NewsID, "event comments must not reference news")
		assert.False(t, c.CreatedAt.After(s.now))

		if c.ParentID == nil {
			continue
		}
		parent, ok := byID[*c.ParentID]
		require.True(t, ok, "reply references unknown parent")
		assert.Nil(t, parent.ParentID, "threads are one level deep")
		assert.Equal(t, *parent.EventID, *c.EventID, "reply must inherit the parent's target")
		assert.False(t, c.CreatedAt.Before(parent.CreatedAt), "reply predates its parent")
	}
}

func TestSeedNewsComments(t *testing.T) {
	s := newTestSeeder(42)
	users := testUsers(t, s)
	companies := testCompanies(t, s)

	news, err := s.seedNews(context.Background(), companies)
	require.NoError(t, err)
	require.NotEmpty(t, news)

	originByID := map[string]*models.CompanyNews{}
	for i := range news {
		originByID[news[i].ID] = &news[i]
	}

	comments, err := s.seedComments(context.Background(), newsTargets(news), users, "news comments")
	require.NoError(t, err)
	require.NotEmpty(t, comments)

	for _, c := range comments {
		require.NotNil(t, c.NewsID)
		assert.Nil(t, c.EventID, "news comments must not reference events")

		item, ok := originByID[*c.NewsID]
		require.True(t, ok)
		if c.ParentID == nil {
			assert.False(t, c.CreatedAt.Before(item.CreatedAt), "comment predates the news item")
		}
	}
}

func TestSomeTargetsHaveNoComments(t *testing.T) {
	s := newTestSeeder(42)
	users := testUsers(t, s)
	companies := testCompanies(t, s)
	events := testEvents(t, s, companies)

	comments, err := s.seedComments(context.Background(), eventTargets(events), users, "event comments")
	require.NoError(t, err)

	commented := map[string]bool{}
	for _, c := range comments {
		commented[*c.EventID] = true
	}
	assert.Less(t, len(commented), len(events))
}
