package usecase

import "context"

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

// TokenManager выпускает и проверяет токены сессии.
// Формат и криптография токена скрыты за этим интерфейсом.
type TokenManager interface {
	Issue(userID int64, isAdmin bool) (string, error)
	Parse(token string) (*TokenClaims, error)
}
