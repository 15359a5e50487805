package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

type ctxKey int

const claimsCtxKey ctxKey = iota

// AuthMiddleware извлекает токен сессии из cookie или заголовка Authorization
// и кладёт проверенные claims в контекст запроса.
type AuthMiddleware struct {
	authUC usecase.AuthUC
	cfg    *cfg.AuthCfg
	logger logger.Logger
}

func NewAuthMiddleware(authUC usecase.AuthUC, cfg *cfg.AuthCfg, logger logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC, cfg: cfg, logger: logger}
}

// RequireAuth отклоняет запросы без валидного токена.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := m.extractToken(r)
		if token == "" {
			WriteError(w, e.ErrUnauthenticated)
			return
		}

		claims, err := m.authUC.Authenticate(r.Context(), token)
		if err != nil {
			m.logger.Debugf("auth failed: %v", err)
			WriteError(w, e.ErrUnauthenticated)
			return
		}

		ctx := context.WithValue(r.Context(), claimsCtxKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin пропускает только аутентифицированных администраторов.
// Должен стоять после RequireAuth.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromCtx(r.Context())
		if !ok {
			WriteError(w, e.ErrUnauthenticated)
			return
		}
		if !claims.IsAdmin {
			WriteError(w, e.ErrAdminRightsRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *AuthMiddleware) extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(m.cfg.CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return ""
}

// ClaimsFromCtx возвращает claims текущего запроса, положенные RequireAuth.
func ClaimsFromCtx(ctx context.Context) (*usecase.TokenClaims, bool) {
	claims, ok := ctx.Value(claimsCtxKey).(*usecase.TokenClaims)
	return claims, ok
}
