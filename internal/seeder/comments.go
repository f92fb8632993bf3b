package seeder

import (
	"context"
	"time"

	"uevent/internal/models"
)

const (
	// targetSkipProb leaves ~30% of events and news items without comments.
	targetSkipProb = 0.3
	// replySkipProb keeps ~60% of root comments without replies.
	replySkipProb = 0.6
)

// commentTarget is the thing a comment thread hangs off: exactly one of an
// event or a news item. Origin is the earliest plausible comment time.
type commentTarget struct {
	EventID *string
	NewsID  *string
	Origin  time.Time
}

func eventTargets(events []models.Event) []commentTarget {
	targets := make([]commentTarget, len(events))
	for i := range events {
		targets[i] = commentTarget{EventID: &events[i].ID, Origin: events[i].PublishDate}
	}
	return targets
}

func newsTargets(news []models.CompanyNews) []commentTarget {
	targets := make([]commentTarget, len(news))
	for i := range news {
		targets[i] = commentTarget{NewsID: &news[i].ID, Origin: news[i].CreatedAt}
	}
	return targets
}

// buildRootComments drops a random number of top-level comments on each
// target. Scheduled events have a publish date in the future, so the date
// draw can collapse to now; DateBetween handles that.
func (s *Seeder) buildRootComments(targets []commentTarget, users []models.User) []models.Comment {
	var comments []models.Comment
	for _, target := range targets {
		if s.rng.Chance(targetSkipProb) {
			continue
		}
		count := s.rng.IntBetween(s.cfg.CommentsPerTarget.Min, s.cfg.CommentsPerTarget.Max)
		for i := 0; i < count; i++ {
			comments = append(comments, models.Comment{
				Content:   s.rng.sentences(s.rng.IntBetween(1, 3)),
				UserID:    PickAny(s.rng, users).ID,
				EventID:   target.EventID,
				NewsID:    target.NewsID,
				CreatedAt: s.rng.DateBetween(target.Origin, s.now),
			})
		}
	}
	return comments
}

// buildReplies threads a second level under some of the roots. Replies keep
// the parent's target and never nest further.
func (s *Seeder) buildReplies(roots []models.Comment, users []models.User) []models.Comment {
	var replies []models.Comment
	for i := range roots {
		if s.rng.Chance(replySkipProb) {
			continue
		}
		count := s.rng.IntBetween(0, 3)
		for j := 0; j < count; j++ {
			replies = append(replies, models.Comment{
				Content:   s.rng.sentences(s.rng.IntBetween(1, 3)),
				UserID:    PickAny(s.rng, users).ID,
				EventID:   roots[i].EventID,
				NewsID:    roots[i].NewsID,
				ParentID:  &roots[i].ID,
				CreatedAt: s.rng.DateBetween(roots[i].CreatedAt, s.now),
			})
		}
	}
	return replies
}

// seedComments runs the two-pass comment stage for one kind of target. Roots
// must be persisted before replies can reference them.
func (s *Seeder) seedComments(ctx context.Context, targets []commentTarget, users []models.User, label string) ([]models.Comment, error) {
	start := time.Now()
	s.log.Info("Creating "+label+"...", "targets", len(targets))

	roots := s.buildRootComments(targets, users)
	if s.dryRun {
		assignFakeIDs(roots, func(c *models.Comment, id string) { c.ID = id })
	} else if err := createInBatches(ctx, roots, commentBatchSize, s.repos.Comments.Create); err != nil {
		return nil, err
	}

	replies := s.buildReplies(roots, users)
	if s.dryRun {
		assignFakeIDs(replies, func(c *models.Comment, id string) { c.ID = id })
	} else if err := createInBatches(ctx, replies, commentBatchSize, s.repos.Comments.Create); err != nil {
		return nil, err
	}

	comments := append(roots, replies...)
	s.log.Info("Created "+label, "count", len(comments), "duration", time.Since(start).Round(time.Millisecond))
	return comments, nil
}
