package auth

import (
	"fmt"
	"time"

	"github.com/boutique-bouquet/go-backend/internal/cfg"
	"github.com/boutique-bouquet/go-backend/internal/domain"
	"github.com/boutique-bouquet/go-backend/internal/usecase"
	"github.com/boutique-bouquet/go-backend/pkg/e"
	"github.com/golang-jwt/jwt/v5"
)

// JWTManager выпускает и проверяет JWT-токены администраторов (HS256).
type JWTManager struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewJWTManager(cfg *cfg.AuthCfg) *JWTManager {
	return &JWTManager{
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: cfg.TokenTTL,
	}
}

type adminClaims struct {
	AdminID int64 `json:"admin_id"`
	jwt.RegisteredClaims
}

// Issue выпускает токен с email администратора в subject.
func (m *JWTManager) Issue(admin *domain.Admin) (string, error) {
	now := time.Now()
	claims := adminClaims{
		AdminID: admin.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", e.Wrap("JWTManager.Issue", err)
	}

	return signed, nil
}

// Verify проверяет подпись и срок действия токена.
// Любая невалидность токена возвращается как e.ErrInvalidToken.
func (m *JWTManager) Verify(tokenStr string) (*usecase.Identity, error) {
	var claims adminClaims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, e.ErrInvalidToken
	}

	return usecase.NewIdentity(claims.AdminID, claims.Subject), nil
}
