package token

import (
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	manager := NewJWTManager(&cfg.AuthCfg{JWTSecret: "test-secret", TokenTTL: time.Hour})

	issued, err := manager.Issue(42, true)
	require.NoError(t, err)
	require.NotEmpty(t, issued)

	claims, err := manager.Parse(issued)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestParse_WrongSecret(t *testing.T) {
	issuer := NewJWTManager(&cfg.AuthCfg{JWTSecret: "secret-a", TokenTTL: time.Hour})
	verifier := NewJWTManager(&cfg.AuthCfg{JWTSecret: "secret-b", TokenTTL: time.Hour})

	issued, err := issuer.Issue(42, false)
	require.NoError(t, err)

	_, err = verifier.Parse(issued)
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	manager := NewJWTManager(&cfg.AuthCfg{JWTSecret: "test-secret", TokenTTL: -time.Minute})

	issued, err := manager.Issue(42, false)
	require.NoError(t, err)

	_, err = manager.Parse(issued)
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	manager := NewJWTManager(&cfg.AuthCfg{JWTSecret: "test-secret", TokenTTL: time.Hour})

	_, err := manager.Parse("not-a-token")
	assert.Error(t, err)
}
