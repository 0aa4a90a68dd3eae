package ports

import (
	"context"

	"github.com/Apurer/go-gin-shop-api/internal/domains/catalog/domain"
)

// Service exposes catalog use cases to adapters.
type Service interface {
	CreateCountry(ctx context.Context, country *domain.Country) (*domain.Country, error)
	ListCountries(ctx context.Context) ([]*domain.Country, error)
	CreateManufacturer(ctx context.Context, manufacturer *domain.Manufacturer) (*domain.Manufacturer, error)
	ListManufacturers(ctx context.Context) ([]*domain.Manufacturer, error)
	CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
}
