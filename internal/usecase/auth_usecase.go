package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 8

// AuthUseCase отвечает за регистрацию, вход и проверку токенов сессии.
// Ядро корзины и заказов получает от него только стабильный идентификатор
// пользователя, не зная ничего о формате токена.
type AuthUseCase struct {
	userRepo UserRepository
	cartRepo CartRepository
	tokens   TokenManager
	dbPool   transaction.Transactional
	cfg      *cfg.AuthCfg
	logger   logger.Logger
}

func NewAuthUC(
	userRepo UserRepository,
	cartRepo CartRepository,
	tokens TokenManager,
	dbPool transaction.Transactional,
	cfg *cfg.AuthCfg,
	logger logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		cartRepo: cartRepo,
		tokens:   tokens,
		dbPool:   dbPool,
		cfg:      cfg,
		logger:   logger,
	}
}

// Register создаёт пользователя и его пустую корзину в одной транзакции.
// Корзина заводится при регистрации, поэтому GetCart для валидного
// пользователя всегда находит запись.
func (a *AuthUseCase) Register(ctx context.Context, req *RegisterReq) (*AuthRes, error) {
	const op = "AuthUseCase.Register"

	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(req.Password) < minPasswordLen {
		return nil, e.Wrap(op, e.ErrPasswordTooShort)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.cfg.BcryptCost)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, a.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	user, err := a.userRepo.Create(ctx, domain.NewUser(email, string(hash)))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = a.cartRepo.CreateCart(ctx, user.ID); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	token, err := a.tokens.Issue(user.ID, user.IsAdmin)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &AuthRes{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		Token:   token,
	}, nil
}

// Login проверяет учётные данные и выпускает токен сессии.
// Неизвестный email и неверный пароль неразличимы для вызывающего.
func (a *AuthUseCase) Login(ctx context.Context, req *LoginReq) (*AuthRes, error) {
	const op = "AuthUseCase.Login"

	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	user, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	token, err := a.tokens.Issue(user.ID, user.IsAdmin)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &AuthRes{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		Token:   token,
	}, nil
}

// Authenticate разрешает токен запроса в стабильный идентификатор пользователя.
func (a *AuthUseCase) Authenticate(ctx context.Context, token string) (*TokenClaims, error) {
	const op = "AuthUseCase.Authenticate"

	if token == "" {
		return nil, e.Wrap(op, e.ErrUnauthenticated)
	}

	claims, err := a.tokens.Parse(token)
	if err != nil {
		return nil, e.Wrap(op, e.ErrUnauthenticated)
	}

	return claims, nil
}

// ListUsers возвращает всех пользователей для административной панели,
// новые первыми. Хэши паролей в ответ не попадают.
func (a *AuthUseCase) ListUsers(ctx context.Context) ([]UserInfo, error) {
	const op = "AuthUseCase.ListUsers"

	users, err := a.userRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	infos := make([]UserInfo, 0, len(users))
	for _, user := range users {
		infos = append(infos, UserInfo{
			ID:        user.ID,
			Email:     user.Email,
			IsAdmin:   user.IsAdmin,
			CreatedAt: user.CreatedAt,
		})
	}

	return infos, nil
}

// normalizeEmail приводит email к нижнему регистру и проверяет минимальную форму.
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", e.ErrEmailRequired
	}

	return email, nil
}
