package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse отображает доменные ошибки в HTTP-статусы.
// Неизвестные ошибки схлопываются в 500, чтобы не раскрывать детали клиенту.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest),
		errors.Is(err, e.ErrInvalidArgument),
		errors.Is(err, e.ErrInvalidQuantity),
		errors.Is(err, e.ErrInvalidProductID),
		errors.Is(err, e.ErrProductNameRequired),
		errors.Is(err, e.ErrPriceMustBePositive),
		errors.Is(err, e.ErrInvalidPrice),
		errors.Is(err, e.ErrPricePrecision),
		errors.Is(err, e.ErrEmailRequired),
		errors.Is(err, e.ErrPasswordTooShort):
		return http.StatusBadRequest, rootMessage(err)
	case errors.Is(err, e.ErrUnauthenticated),
		errors.Is(err, e.ErrInvalidCredentials):
		return http.StatusUnauthorized, rootMessage(err)
	case errors.Is(err, e.ErrAdminRightsRequired):
		return http.StatusForbidden, rootMessage(err)
	case errors.Is(err, e.ErrProductUnavailable),
		errors.Is(err, e.ErrOrderNotFound),
		errors.Is(err, e.ErrUserNotFound):
		return http.StatusNotFound, rootMessage(err)
	case errors.Is(err, e.ErrEmailTaken),
		errors.Is(err, e.ErrConflict),
		errors.Is(err, e.ErrInvalidTransition):
		return http.StatusConflict, rootMessage(err)
	case errors.Is(err, e.ErrEmptyCart),
		errors.Is(err, e.ErrInvalidCartState):
		return http.StatusUnprocessableEntity, rootMessage(err)
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

// rootMessage возвращает текст последней ошибки в цепочке,
// отбрасывая служебные префиксы обёрток.
func rootMessage(err error) string {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err.Error()
		}
		err = unwrapped
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parsePriceToCents converts a string like "599.99" or "600" to int64 cents.
// Returns error if:
// - invalid format
// - more than 2 decimal places
// - negative value
// - exceeds reasonable limit (e.g. 10^9 rubles)
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, errors.New("price is empty")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	// Reject negative
	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	// Enforce max value (e.g. 1 billion rubles = 100_000_000_000 cents)
	maxPrice := decimal.NewFromInt(1_000_000_000).Mul(decimal.NewFromInt(100)) // 1B rub in cents
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	// Check decimal places
	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision // "price must have at most 2 decimal places"
	}

	// Convert to cents: multiply by 100 and round
	cents := d.Mul(decimal.NewFromInt(100)).Round(0)

	return cents.IntPart(), nil
}
