package seeder

import (
	"testing"

	"uevent/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReactions(t *testing.T) {
	s := newTestSeeder(42)
	users := testUsers(t, s)

	comments := make([]models.Comment, 200)
	assignFakeIDs(comments, func(c *models.Comment, id string) { c.ID = id })

	reactions := s.buildReactions(comments, users)
	require.NotEmpty(t, reactions)

	type pair struct{ user, comment string }
	seen := map[pair]bool{}
	perComment := map[string]int{}
	for _, r := range reactions {
		assert.Contains(t, models.ReactionTypes, r.Type)

		p := pair{r.UserID, r.CommentID}
		assert.False(t, seen[p], "duplicate (user, comment) reaction")
		seen[p] = true
		perComment[r.CommentID]++
	}

	for _, n := range perComment {
		assert.LessOrEqual(t, n, s.cfg.ReactionsPerComment.Max)
	}
	assert.Less(t, len(perComment), len(comments), "some comments must have no reactions")
}
