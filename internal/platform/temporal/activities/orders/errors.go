package orders

import (
	"errors"

	"go.temporal.io/sdk/temporal"

	storeapp "github.com/Apurer/go-gin-shop-api/internal/domains/store/application"
	storeports "github.com/Apurer/go-gin-shop-api/internal/domains/store/ports"
	"github.com/Apurer/go-gin-shop-api/internal/platform/database"
)

// Application error types carried across the workflow boundary.
const (
	ErrorTypeInvalidInput        = "InvalidInput"
	ErrorTypeClientNotFound      = "ClientNotFound"
	ErrorTypeOutOfStock          = "OutOfStock"
	ErrorTypeIdempotencyConflict = "IdempotencyConflict"
	ErrorTypeUnavailable         = "Unavailable"
)

var errorTypes = []struct {
	name     string
	sentinel error
}{
	{ErrorTypeInvalidInput, storeapp.ErrInvalidInput},
	{ErrorTypeClientNotFound, storeports.ErrClientNotFound},
	{ErrorTypeOutOfStock, storeports.ErrOutOfStock},
	{ErrorTypeIdempotencyConflict, storeports.ErrIdempotencyConflict},
	{ErrorTypeUnavailable, database.ErrUnavailable},
}

// EncodeError converts a typed placement failure into a non-retryable
// application error. Unknown errors are returned unchanged.
func EncodeError(err error) error {
	if err == nil {
		return nil
	}
	for _, t := range errorTypes {
		if errors.Is(err, t.sentinel) {
			return temporal.NewNonRetryableApplicationError(err.Error(), t.name, err)
		}
	}
	return err
}

// DecodeError restores the sentinel error behind an application error
// produced by EncodeError, keeping the original message.
func DecodeError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *temporal.ApplicationError
	if !errors.As(err, &appErr) {
		return err
	}
	for _, t := range errorTypes {
		if appErr.Type() == t.name {
			return &decodedError{msg: appErr.Message(), sentinel: t.sentinel}
		}
	}
	return err
}

// decodedError keeps the activity's message while matching its sentinel with errors.Is.
type decodedError struct {
	msg      string
	sentinel error
}

func (e *decodedError) Error() string { return e.msg }

func (e *decodedError) Unwrap() error { return e.sentinel }
