package seeder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"uevent/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// Every password-auth account gets the same placeholder credential so that
// developers can log in as any seeded user.
const placeholderPassword = "Password123!"

// buildUsers synthesizes the full user plan: unique emails, ~20% external
// auth accounts without a password, settings for everyone, all pre-verified.
func (s *Seeder) buildUsers() ([]models.User, error) {
	// One hash for the whole run; bcrypt at cost 10 per user would dominate
	// the stage for no gain.
	hash, err := bcrypt.GenerateFromPassword([]byte(placeholderPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder password: %w", err)
	}
	passwordHash := string(hash)

	users := make([]models.User, s.cfg.Users)
	for i := range users {
		first, last := s.rng.fullName()
		email := fmt.Sprintf("%s.%s%d@%s",
			strings.ToLower(first), strings.ToLower(last), i, PickAny(s.rng, emailDomains))

		provider := models.AuthProviderEmail
		if s.rng.Float64() > 0.8 {
			provider = models.AuthProviderGoogle
		}

		var password *string
		if provider == models.AuthProviderEmail {
			password = &passwordHash
		}

		var bio *string
		if s.rng.Float64() > 0.3 {
			b := s.rng.sentence()
			bio = &b
		}

		color := s.rng.HexColor()
		users[i] = models.User{
			Name:          first + " " + last,
			Email:         email,
			PasswordHash:  password,
			Avatar:        avatarImage.url(s.rng, i),
			Bio:           bio,
			Role:          models.RoleUser,
			AuthProvider:  provider,
			EmailVerified: true,
			Settings: models.UserSettings{
				ShowInAttendeeList:    s.rng.Float64() > 0.2,
				ShowFollowingList:     s.rng.Float64() > 0.2,
				EventReminderChannel:  PickAny(s.rng, models.NotificationChannels),
				TicketPurchaseChannel: PickAny(s.rng, models.NotificationChannels),
				NewCommentChannel:     PickAny(s.rng, models.NotificationChannels),
				CompanyUpdateChannel:  PickAny(s.rng, models.NotificationChannels),
				ThemeMainColor:        &color,
			},
		}
	}
	return users, nil
}

func (s *Seeder) seedUsers(ctx context.Context) ([]models.User, error) {
	start := time.Now()
	s.log.Info("Creating users...", "count", s.cfg.Users)

	users, err := s.buildUsers()
	if err != nil {
		return nil, err
	}

	if s.dryRun {
		assignFakeIDs(users, func(u *models.User, id string) { u.ID = id })
	} else if err := createInBatches(ctx, users, userBatchSize, s.repos.Users.Create); err != nil {
		return nil, err
	}

	s.log.Info("Created users", "count", len(users), "duration", time.Since(start).Round(time.Millisecond))
	return users, nil
}
