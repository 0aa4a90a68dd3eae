package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-gin-shop-api/internal/domains/clients/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid client input")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyFirstName) ||
		errors.Is(err, domain.ErrEmptyLastName) ||
		errors.Is(err, domain.ErrEmptyPhone) ||
		errors.Is(err, domain.ErrPhoneTooLong) ||
		errors.Is(err, domain.ErrNameTooLong) ||
		errors.Is(err, domain.ErrInvalidEmail) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
