package usecase_test

import (
	"context"
	"testing"

	"github.com/boutique-bouquet/go-backend/internal/domain"
	"github.com/boutique-bouquet/go-backend/internal/usecase"
	"github.com/boutique-bouquet/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminRepo struct {
	admins map[string]*domain.Admin
}

func (f *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	admin, ok := f.admins[email]
	if !ok {
		return nil, e.NotFound("Admin not found")
	}
	return admin, nil
}

type fakeTokenManager struct {
	issued string
}

func (f *fakeTokenManager) Issue(admin *domain.Admin) (string, error) {
	return f.issued, nil
}

func (f *fakeTokenManager) Verify(token string) (*usecase.Identity, error) {
	if token != f.issued {
		return nil, e.ErrInvalidToken
	}
	return usecase.NewIdentity(1, "admin@boutique.example"), nil
}

func newAuthFixture(t *testing.T, password string) (*usecase.AuthUseCase, *fakeTokenManager) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeAdminRepo{admins: map[string]*domain.Admin{
		"admin@boutique.example": {
			ID:           1,
			Email:        "admin@boutique.example",
			PasswordHash: string(hash),
		},
	}}
	tokens := &fakeTokenManager{issued: "token-123"}

	return usecase.NewAuthUC(repo, tokens, nopLogger{}), tokens
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		uc, _ := newAuthFixture(t, "correct horse")

		res, err := uc.Login(context.Background(), usecase.NewLoginReq("admin@boutique.example", "correct horse"))
		require.NoError(t, err)
		assert.Equal(t, "token-123", res.Token)
		assert.Equal(t, int64(1), res.Admin.ID)
		assert.Equal(t, "admin@boutique.example", res.Admin.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, _ := newAuthFixture(t, "correct horse")

		_, err := uc.Login(context.Background(), usecase.NewLoginReq("admin@boutique.example", "battery staple"))
		require.Error(t, err)
		assert.ErrorIs(t, err, e.ErrUnauthorized)
	})

	t.Run("unknown email indistinguishable from wrong password", func(t *testing.T) {
		uc, _ := newAuthFixture(t, "correct horse")

		_, errUnknown := uc.Login(context.Background(), usecase.NewLoginReq("nobody@boutique.example", "correct horse"))
		_, errWrongPass := uc.Login(context.Background(), usecase.NewLoginReq("admin@boutique.example", "wrong"))

		require.Error(t, errUnknown)
		require.Error(t, errWrongPass)

		msgUnknown, ok := e.Message(errUnknown)
		require.True(t, ok)
		msgWrongPass, ok := e.Message(errWrongPass)
		require.True(t, ok)
		assert.Equal(t, msgUnknown, msgWrongPass)
	})
}

func TestVerifyToken(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		uc, _ := newAuthFixture(t, "correct horse")

		identity, err := uc.VerifyToken("token-123")
		require.NoError(t, err)
		assert.Equal(t, int64(1), identity.AdminID)
	})

	t.Run("invalid token", func(t *testing.T) {
		uc, _ := newAuthFixture(t, "correct horse")

		_, err := uc.VerifyToken("forged")
		require.Error(t, err)
		assert.ErrorIs(t, err, e.ErrUnauthorized)
	})
}
