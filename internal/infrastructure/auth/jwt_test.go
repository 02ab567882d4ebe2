package auth_test

import (
	"testing"
	"time"

	"github.com/boutique-bouquet/go-backend/internal/cfg"
	"github.com/boutique-bouquet/go-backend/internal/domain"
	"github.com/boutique-bouquet/go-backend/internal/infrastructure/auth"
	"github.com/boutique-bouquet/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(ttl time.Duration) *auth.JWTManager {
	return auth.NewJWTManager(&cfg.AuthCfg{
		JWTSecret: "test-secret",
		TokenTTL:  ttl,
	})
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	m := newManager(time.Hour)
	admin := &domain.Admin{ID: 7, Email: "admin@boutique.example"}

	token, err := m.Issue(admin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), identity.AdminID)
	assert.Equal(t, "admin@boutique.example", identity.Email)
}

func TestVerifyRejects(t *testing.T) {
	t.Parallel()

	t.Run("garbage token", func(t *testing.T) {
		t.Parallel()

		m := newManager(time.Hour)
		_, err := m.Verify("not-a-jwt")
		assert.ErrorIs(t, err, e.ErrUnauthorized)
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()

		token, err := newManager(time.Hour).Issue(&domain.Admin{ID: 1, Email: "a@b.c"})
		require.NoError(t, err)

		other := auth.NewJWTManager(&cfg.AuthCfg{JWTSecret: "other-secret", TokenTTL: time.Hour})
		_, err = other.Verify(token)
		assert.ErrorIs(t, err, e.ErrUnauthorized)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		m := newManager(-time.Minute)
		token, err := m.Issue(&domain.Admin{ID: 1, Email: "a@b.c"})
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, e.ErrUnauthorized)
	})
}
