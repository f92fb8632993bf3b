package seeder

import (
	"testing"

	"uevent/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBuildUsers(t *testing.T) {
	s := newTestSeeder(42)

	users, err := s.buildUsers()
	require.NoError(t, err)
	require.Len(t, users, s.cfg.Users)

	emails := map[string]bool{}
	googleCount := 0
	for _, u := range users {
		assert.False(t, emails[u.Email], "duplicate email %s", u.Email)
		emails[u.Email] = true

		assert.Equal(t, models.RoleUser, u.Role)
		assert.True(t, u.EmailVerified)

		switch u.AuthProvider {
		case models.AuthProviderEmail:
			assert.NotNil(t, u.PasswordHash, "password auth requires a hash")
		case models.AuthProviderGoogle:
			assert.Nil(t, u.PasswordHash, "external auth must not carry a hash")
			googleCount++
		default:
			t.Fatalf("unexpected auth provider %s", u.AuthProvider)
		}

		require.NotNil(t, u.Settings.ThemeMainColor)
		assert.Contains(t, models.NotificationChannels, u.Settings.EventReminderChannel)
	}

	// ~20% of accounts use external auth.
	assert.InDelta(t, 0.2, float64(googleCount)/float64(len(users)), 0.08)
}

func TestBuildUsersPlaceholderHash(t *testing.T) {
	s := newTestSeeder(42)

	users, err := s.buildUsers()
	require.NoError(t, err)

	for _, u := range users {
		if u.PasswordHash != nil {
			err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(placeholderPassword))
			assert.NoError(t, err)
			return
		}
	}
	t.Fatal("no password-auth user generated")
}
