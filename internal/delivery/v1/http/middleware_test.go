package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{})        {}
func (nopLogger) Infof(string, ...interface{})         {}
func (nopLogger) Warnf(string, ...interface{})         {}
func (nopLogger) Errorf(error, string, ...interface{}) {}

// mockAuthUC принимает единственный валидный токен.
type mockAuthUC struct {
	token  string
	claims *usecase.TokenClaims
	users  []usecase.UserInfo
}

func (m *mockAuthUC) Register(context.Context, *usecase.RegisterReq) (*usecase.AuthRes, error) {
	return nil, nil
}

func (m *mockAuthUC) Login(context.Context, *usecase.LoginReq) (*usecase.AuthRes, error) {
	return nil, nil
}

func (m *mockAuthUC) ListUsers(context.Context) ([]usecase.UserInfo, error) {
	return m.users, nil
}

func (m *mockAuthUC) Authenticate(_ context.Context, token string) (*usecase.TokenClaims, error) {
	if token != m.token {
		return nil, e.ErrUnauthenticated
	}
	return m.claims, nil
}

func newTestMiddleware(isAdmin bool) *AuthMiddleware {
	authUC := &mockAuthUC{
		token:  "valid-token",
		claims: &usecase.TokenClaims{UserID: 42, IsAdmin: isAdmin},
	}
	return NewAuthMiddleware(authUC, &cfg.AuthCfg{CookieName: "token"}, nopLogger{})
}

func claimsEcho(t *testing.T) (http.Handler, *usecase.TokenClaims) {
	t.Helper()
	captured := &usecase.TokenClaims{}
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromCtx(r.Context())
		require.True(t, ok)
		*captured = *claims
		w.WriteHeader(http.StatusOK)
	})
	return handler, captured
}

func TestRequireAuth_Cookie(t *testing.T) {
	mw := newTestMiddleware(false)
	next, captured := claimsEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "valid-token"})
	rec := httptest.NewRecorder()

	mw.RequireAuth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), captured.UserID)
}

func TestRequireAuth_BearerHeader(t *testing.T) {
	mw := newTestMiddleware(false)
	next, captured := claimsEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	mw.RequireAuth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), captured.UserID)
}

func TestRequireAuth_Rejects(t *testing.T) {
	mw := newTestMiddleware(false)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler должен быть недостижим")
	})

	// Без токена
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	mw.RequireAuth(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// С мусорным токеном
	req = httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	mw.RequireAuth(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Обычный пользователь получает 403
	mw := newTestMiddleware(false)
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	mw.RequireAuth(mw.RequireAdmin(ok)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Администратор проходит
	mw = newTestMiddleware(true)
	req = httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec = httptest.NewRecorder()
	mw.RequireAuth(mw.RequireAdmin(ok)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
