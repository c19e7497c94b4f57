package services

import "errors"

var (
	ErrOutOfStock         = errors.New("product is out of stock")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError reports a missing or malformed required field. The message
// is safe to surface to the client as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationError(message string) error {
	return &ValidationError{Message: message}
}
