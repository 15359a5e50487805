package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUCForTest() (*AuthUseCase, *mockUserRepo, *mockCartRepo, *mockTokenManager) {
	userRepo := newMockUserRepo()
	cartRepo := newMockCartRepo()
	tokens := newMockTokenManager()
	authCfg := &cfg.AuthCfg{
		JWTSecret:  "test-secret",
		BcryptCost: bcrypt.MinCost,
		CookieName: "token",
	}

	uc := NewAuthUC(userRepo, cartRepo, tokens, &mockDB{}, authCfg, nopLogger{})
	return uc, userRepo, cartRepo, tokens
}

func TestRegister_CreatesUserAndCart(t *testing.T) {
	uc, userRepo, cartRepo, _ := newAuthUCForTest()
	ctx := context.Background()

	res, err := uc.Register(ctx, NewRegisterReq("  User@Example.COM ", "password123"))
	require.NoError(t, err)

	assert.Equal(t, "user@example.com", res.Email, "email нормализуется")
	assert.NotEmpty(t, res.Token)
	assert.False(t, res.IsAdmin)

	user, err := userRepo.GetByEmail(ctx, "user@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", user.PasswordHash, "пароль хранится только хэшем")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))

	// Корзина заводится сразу при регистрации
	cart, err := cartRepo.GetCart(ctx, res.UserID)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestRegister_Validation(t *testing.T) {
	uc, _, _, _ := newAuthUCForTest()
	ctx := context.Background()

	_, err := uc.Register(ctx, NewRegisterReq("", "password123"))
	assert.ErrorIs(t, err, e.ErrEmailRequired)

	_, err = uc.Register(ctx, NewRegisterReq("not-an-email", "password123"))
	assert.ErrorIs(t, err, e.ErrEmailRequired)

	_, err = uc.Register(ctx, NewRegisterReq("user@example.com", "short"))
	assert.ErrorIs(t, err, e.ErrPasswordTooShort)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _, _, _ := newAuthUCForTest()
	ctx := context.Background()

	_, err := uc.Register(ctx, NewRegisterReq("user@example.com", "password123"))
	require.NoError(t, err)

	_, err = uc.Register(ctx, NewRegisterReq("USER@example.com", "password456"))
	assert.ErrorIs(t, err, e.ErrEmailTaken, "регистр email не создаёт второго пользователя")
}

func TestLogin(t *testing.T) {
	uc, _, _, _ := newAuthUCForTest()
	ctx := context.Background()

	registered, err := uc.Register(ctx, NewRegisterReq("user@example.com", "password123"))
	require.NoError(t, err)

	res, err := uc.Login(ctx, NewLoginReq("User@Example.com", "password123"))
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, res.UserID)
	assert.NotEmpty(t, res.Token)

	// Неизвестный email и неверный пароль неразличимы
	_, err = uc.Login(ctx, NewLoginReq("user@example.com", "wrong-password"))
	assert.ErrorIs(t, err, e.ErrInvalidCredentials)

	_, err = uc.Login(ctx, NewLoginReq("ghost@example.com", "password123"))
	assert.ErrorIs(t, err, e.ErrInvalidCredentials)
}

func TestAuthenticate(t *testing.T) {
	uc, _, _, _ := newAuthUCForTest()
	ctx := context.Background()

	res, err := uc.Register(ctx, NewRegisterReq("user@example.com", "password123"))
	require.NoError(t, err)

	claims, err := uc.Authenticate(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.UserID, claims.UserID)

	_, err = uc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, e.ErrUnauthenticated)

	_, err = uc.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, e.ErrUnauthenticated)
}

func TestListUsers_NewestFirstWithoutHashes(t *testing.T) {
	uc, _, _, _ := newAuthUCForTest()
	ctx := context.Background()

	_, err := uc.Register(ctx, NewRegisterReq("first@example.com", "password123"))
	require.NoError(t, err)
	second, err := uc.Register(ctx, NewRegisterReq("second@example.com", "password123"))
	require.NoError(t, err)

	users, err := uc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, second.UserID, users[0].ID, "новые пользователи идут первыми")
	assert.Equal(t, "second@example.com", users[0].Email)
	assert.Equal(t, "first@example.com", users[1].Email)
	assert.False(t, users[0].IsAdmin)
	assert.False(t, users[0].CreatedAt.IsZero())
}

func TestListUsers_Empty(t *testing.T) {
	uc, _, _, _ := newAuthUCForTest()

	users, err := uc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}
