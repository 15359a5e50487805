package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки
	ErrInternalServerError  = fmt.Errorf("internal server error")
	ErrCartNotFound         = fmt.Errorf("cart not found")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// 400 Bad Request
	ErrStatusBadRequest    = fmt.Errorf("bad request")
	ErrInvalidArgument     = fmt.Errorf("invalid argument")
	ErrInvalidQuantity     = fmt.Errorf("quantity must be a positive integer")
	ErrInvalidProductID    = fmt.Errorf("invalid product id")
	ErrProductNameRequired = fmt.Errorf("product name is required")
	ErrPriceMustBePositive = fmt.Errorf("price must be positive")
	ErrInvalidPrice        = fmt.Errorf("invalid price")
	ErrPricePrecision      = fmt.Errorf("price must have at most 2 decimal places")
	ErrEmailRequired       = fmt.Errorf("email is required")
	ErrPasswordTooShort    = fmt.Errorf("password is too short")

	// 401 Unauthorized / 403 Forbidden
	ErrUnauthenticated     = fmt.Errorf("unauthenticated")
	ErrInvalidCredentials  = fmt.Errorf("invalid email or password")
	ErrAdminRightsRequired = fmt.Errorf("admin rights required")

	// 404 Not Found
	ErrProductUnavailable = fmt.Errorf("product not found")
	ErrOrderNotFound      = fmt.Errorf("order not found")
	ErrUserNotFound       = fmt.Errorf("user not found")

	// 409 Conflict
	ErrEmailTaken        = fmt.Errorf("email already registered")
	ErrConflict          = fmt.Errorf("concurrent modification, retry")
	ErrInvalidTransition = fmt.Errorf("invalid order status transition")

	// 422 Unprocessable Entity
	ErrEmptyCart        = fmt.Errorf("cart is empty")
	ErrInvalidCartState = fmt.Errorf("cart contains unavailable products")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
