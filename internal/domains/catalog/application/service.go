package application

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-shop-api/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/catalog/ports"
)

// Service orchestrates catalog use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateCountry(ctx context.Context, country *domain.Country) (*domain.Country, error) {
	if country == nil {
		return nil, errors.New("country is nil")
	}
	if err := country.Validate(); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.CreateCountry(ctx, country)
	return saved, mapError(err)
}

func (s *Service) ListCountries(ctx context.Context) ([]*domain.Country, error) {
	return s.repo.ListCountries(ctx)
}

func (s *Service) CreateManufacturer(ctx context.Context, manufacturer *domain.Manufacturer) (*domain.Manufacturer, error) {
	if manufacturer == nil {
		return nil, errors.New("manufacturer is nil")
	}
	if err := manufacturer.Validate(); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.CreateManufacturer(ctx, manufacturer)
	return saved, mapError(err)
}

func (s *Service) ListManufacturers(ctx context.Context) ([]*domain.Manufacturer, error) {
	return s.repo.ListManufacturers(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if category == nil {
		return nil, errors.New("category is nil")
	}
	if err := category.Validate(); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.CreateCategory(ctx, category)
	return saved, mapError(err)
}

func (s *Service) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

// CreateProduct stores a new product. New products are always in stock.
func (s *Service) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	product.InStock = true
	if err := product.Validate(); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.CreateProduct(ctx, product)
	return saved, mapError(err)
}

func (s *Service) ListProducts(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
	return s.repo.ListProducts(ctx, filter)
}

var _ ports.Service = (*Service)(nil)
