package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	cfg         *cfg.AuthCfg
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, cfg *cfg.AuthCfg, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, cfg: cfg, logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	UserID  int64  `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	Token   string `json:"token"`
}

func newAuthResponse(res *usecase.AuthRes) *authResponse {
	return &authResponse{
		UserID:  res.UserID,
		Email:   res.Email,
		IsAdmin: res.IsAdmin,
		Token:   res.Token,
	}
}

// register
//
//	@Summary		Регистрация пользователя
//	@Description	Создает учётную запись и пустую корзину, выдаёт токен сессии
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		credentialsRequest	true	"Email и пароль"
//	@Success		201		{object}	authResponse		"Успешная регистрация"
//	@Failure		400		{object}	ErrorResponse		"Ошибка валидации"
//	@Failure		409		{object}	ErrorResponse		"Email уже занят"
//	@Router			/auth/register [post]
func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	res, err := h.authUsecase.Register(r.Context(), usecase.NewRegisterReq(req.Email, req.Password))
	if err != nil {
		h.logger.Warnf("register failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	h.setSessionCookie(w, res.Token)
	WriteSuccess(w, http.StatusCreated, newAuthResponse(res))
}

// login
//
//	@Summary		Вход пользователя
//	@Description	Проверяет учётные данные и выдаёт токен сессии
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		credentialsRequest	true	"Email и пароль"
//	@Success		200		{object}	authResponse		"Успешный вход"
//	@Failure		401		{object}	ErrorResponse		"Неверные учётные данные"
//	@Router			/auth/login [post]
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	res, err := h.authUsecase.Login(r.Context(), usecase.NewLoginReq(req.Email, req.Password))
	if err != nil {
		h.logger.Warnf("login failed for %s: %s", req.Email, err.Error())
		WriteError(w, err)
		return
	}

	h.setSessionCookie(w, res.Token)
	WriteSuccess(w, http.StatusOK, newAuthResponse(res))
}

// logout
//
//	@Summary	Выход пользователя
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Router		/auth/logout [post]
func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	WriteSuccess(w, http.StatusOK, map[string]interface{}{"ok": true})
}

// me
//
//	@Summary	Текущий пользователь
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Failure	401	{object}	ErrorResponse
//	@Router		/auth/me [get]
func (h *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromCtx(r.Context())
	if !ok {
		WriteError(w, e.ErrUnauthenticated)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"user_id":  claims.UserID,
		"is_admin": claims.IsAdmin,
	})
}

type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// listUsers
//
//	@Summary	Список пользователей (админ)
//	@Tags		admin
//	@Produce	json
//	@Success	200	{array}		userResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	403	{object}	ErrorResponse
//	@Router		/admin/users [get]
func (h *AuthHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.authUsecase.ListUsers(r.Context())
	if err != nil {
		h.logger.Errorf(err, "list users failed")
		WriteError(w, err)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, userResponse{
			ID:        u.ID,
			Email:     u.Email,
			IsAdmin:   u.IsAdmin,
			CreatedAt: u.CreatedAt,
		})
	}

	WriteSuccess(w, http.StatusOK, resp)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.TokenTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
