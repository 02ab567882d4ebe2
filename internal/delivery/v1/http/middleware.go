package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/boutique-bouquet/go-backend/internal/usecase"
	"github.com/boutique-bouquet/go-backend/pkg/e"
	"github.com/boutique-bouquet/go-backend/pkg/logger"
)

type identityCtxKey struct{}

// AdminAuth проверяет bearer-токен администратора и кладёт подтверждённую
// личность в контекст запроса.
func AdminAuth(authUC usecase.AuthUC, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				WriteError(w, e.ErrMissingAuthHeader)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				WriteError(w, e.ErrInvalidAuthFormat)
				return
			}

			identity, err := authUC.VerifyToken(token)
			if err != nil {
				log.Debugf("token verification failed: %v", err)
				WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), identityCtxKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromCtx возвращает личность администратора из контекста запроса.
func IdentityFromCtx(ctx context.Context) (*usecase.Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(*usecase.Identity)
	return identity, ok
}
