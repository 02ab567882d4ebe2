package http

import (
	"net/http"

	"github.com/boutique-bouquet/go-backend/internal/usecase"
	"github.com/boutique-bouquet/go-backend/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, logger: logger}
}

// login
//
//	@Summary		Вход администратора
//	@Description	Возвращает bearer-токен для административного API
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Учётные данные"
//	@Success		200		{object}	LoginResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/admin/login [post]
func (a *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.authUsecase.Login(r.Context(), usecase.NewLoginReq(req.Email, req.Password))
	if err != nil {
		a.logger.Warnf("login failed for %s: %v", req.Email, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, LoginResponse{
		Token: res.Token,
		Admin: AdminResponse{ID: res.Admin.ID, Email: res.Admin.Email},
	})
}
