package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsers_AdminPanel(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	authUC := &mockAuthUC{
		users: []usecase.UserInfo{
			{ID: 2, Email: "second@example.com", IsAdmin: false, CreatedAt: created.Add(time.Hour)},
			{ID: 1, Email: "first@example.com", IsAdmin: true, CreatedAt: created},
		},
	}
	h := NewAuthHandler(authUC, &cfg.AuthCfg{CookieName: "token"}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	rec := httptest.NewRecorder()
	h.listUsers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	var resp []userResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp, 2)

	assert.Equal(t, int64(2), resp[0].ID)
	assert.Equal(t, "second@example.com", resp[0].Email)
	assert.False(t, resp[0].IsAdmin)
	assert.Equal(t, int64(1), resp[1].ID)
	assert.True(t, resp[1].IsAdmin)

	// Хэш пароля не должен утекать в ответ админки.
	assert.NotContains(t, body, "password")
}

func TestListUsers_Empty(t *testing.T) {
	h := NewAuthHandler(&mockAuthUC{}, &cfg.AuthCfg{CookieName: "token"}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	rec := httptest.NewRecorder()
	h.listUsers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
