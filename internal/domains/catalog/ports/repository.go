package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-shop-api/internal/domains/catalog/domain"
)

var (
	// ErrConflict reports a duplicate value for a unique column.
	ErrConflict = errors.New("catalog entry already exists")
	// ErrReferenceNotFound reports a country, manufacturer or category id with no row behind it.
	ErrReferenceNotFound = errors.New("referenced catalog entry does not exist")
	// ErrConstraint reports a value rejected by a store CHECK constraint.
	ErrConstraint = errors.New("catalog value rejected by store")
)

// ProductFilter narrows product listings.
type ProductFilter struct {
	InStockOnly bool
}

// Repository persists catalog entities.
type Repository interface {
	CreateCountry(ctx context.Context, country *domain.Country) (*domain.Country, error)
	ListCountries(ctx context.Context) ([]*domain.Country, error)
	CreateManufacturer(ctx context.Context, manufacturer *domain.Manufacturer) (*domain.Manufacturer, error)
	ListManufacturers(ctx context.Context) ([]*domain.Manufacturer, error)
	CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// ListProducts returns products newest first.
	ListProducts(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
}
