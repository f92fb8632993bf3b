package seeder

import (
	"context"
	"time"

	"uevent/internal/models"
)

// commentSkipProb leaves ~40% of comments without reactions.
const commentSkipProb = 0.4

// buildReactions draws a user subset per comment, one reaction each. The
// (user, comment) pair is unique by construction here, and the insert is
// idempotent anyway.
func (s *Seeder) buildReactions(comments []models.Comment, users []models.User) []models.Reaction {
	var reactions []models.Reaction
	for i := range comments {
		if s.rng.Chance(commentSkipProb) {
			continue
		}
		limit := min(s.cfg.ReactionsPerComment.Max, len(users))
		count := s.rng.IntBetween(s.cfg.ReactionsPerComment.Min, limit)
		for _, user := range PickSubset(s.rng, users, 0, count) {
			reactions = append(reactions, models.Reaction{
				Type:      PickAny(s.rng, models.ReactionTypes),
				UserID:    user.ID,
				CommentID: comments[i].ID,
			})
		}
	}
	return reactions
}

func (s *Seeder) seedReactions(ctx context.Context, comments []models.Comment, users []models.User, label string) (int, error) {
	start := time.Now()
	s.log.Info("Creating "+label+"...")

	reactions := s.buildReactions(comments, users)

	inserted := len(reactions)
	if !s.dryRun {
		n, err := s.repos.Reactions.CreateMany(ctx, reactions)
		if err != nil {
			return 0, err
		}
		inserted = int(n)
	}

	s.log.Info("Created "+label, "count", inserted, "duration", time.Since(start).Round(time.Millisecond))
	return inserted, nil
}
