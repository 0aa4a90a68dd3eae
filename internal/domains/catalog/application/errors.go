package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-gin-shop-api/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/catalog/ports"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid catalog input")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrNameTooLong) ||
		errors.Is(err, domain.ErrInvalidCountry) ||
		errors.Is(err, domain.ErrInvalidManufacturer) ||
		errors.Is(err, domain.ErrInvalidCategory) ||
		errors.Is(err, domain.ErrInvalidEmployees) ||
		errors.Is(err, domain.ErrWebsiteTooLong) ||
		errors.Is(err, domain.ErrInvalidHomePage) ||
		errors.Is(err, domain.ErrInvalidPrice) ||
		errors.Is(err, ports.ErrConstraint) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
