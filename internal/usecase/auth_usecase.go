package usecase

import (
	"context"
	"errors"

	"github.com/boutique-bouquet/go-backend/pkg/e"
	"github.com/boutique-bouquet/go-backend/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase реализует вход администратора и проверку bearer-токенов.
type AuthUseCase struct {
	adminRepo AdminRepository
	tokens    TokenManager
	logger    logger.Logger
}

func NewAuthUC(adminRepo AdminRepository, tokens TokenManager, logger logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		adminRepo: adminRepo,
		tokens:    tokens,
		logger:    logger,
	}
}

// Login проверяет учётные данные администратора и выпускает токен.
// Неизвестный email и неверный пароль неразличимы для клиента.
func (a *AuthUseCase) Login(ctx context.Context, req *LoginReq) (*LoginRes, error) {
	const op = "AuthUseCase.Login"

	admin, err := a.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.Wrap(op, e.ErrInvalidCredentials)
		}
		return nil, e.Wrap(op, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	token, err := a.tokens.Issue(admin)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &LoginRes{
		Token: token,
		Admin: AdminInfo{ID: admin.ID, Email: admin.Email},
	}, nil
}

// VerifyToken проверяет bearer-токен и возвращает личность администратора.
func (a *AuthUseCase) VerifyToken(token string) (*Identity, error) {
	const op = "AuthUseCase.VerifyToken"

	identity, err := a.tokens.Verify(token)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return identity, nil
}
