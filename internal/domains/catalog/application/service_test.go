package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-shop-api/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/catalog/ports"
)

type fakeCatalogRepo struct {
	countries []*domain.Country
	products  []*domain.Product
}

func (f *fakeCatalogRepo) CreateCountry(_ context.Context, c *domain.Country) (*domain.Country, error) {
	for _, existing := range f.countries {
		if existing.Name == c.Name {
			return nil, ports.ErrConflict
		}
	}
	copy := *c
	copy.ID = int64(len(f.countries) + 1)
	f.countries = append(f.countries, &copy)
	return &copy, nil
}

func (f *fakeCatalogRepo) ListCountries(context.Context) ([]*domain.Country, error) {
	return f.countries, nil
}

func (f *fakeCatalogRepo) CreateManufacturer(_ context.Context, m *domain.Manufacturer) (*domain.Manufacturer, error) {
	if m.CountryID > int64(len(f.countries)) {
		return nil, ports.ErrReferenceNotFound
	}
	copy := *m
	copy.ID = 1
	return &copy, nil
}

func (f *fakeCatalogRepo) ListManufacturers(context.Context) ([]*domain.Manufacturer, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) CreateCategory(_ context.Context, c *domain.Category) (*domain.Category, error) {
	copy := *c
	copy.ID = 1
	return &copy, nil
}

func (f *fakeCatalogRepo) ListCategories(context.Context) ([]*domain.Category, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) CreateProduct(_ context.Context, p *domain.Product) (*domain.Product, error) {
	copy := *p
	copy.ID = int64(len(f.products) + 1)
	f.products = append(f.products, &copy)
	return &copy, nil
}

func (f *fakeCatalogRepo) ListProducts(_ context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range f.products {
		if filter.InStockOnly && !p.InStock {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func TestCreateCountry_ValidatesAndPersists(t *testing.T) {
	svc := NewService(&fakeCatalogRepo{})

	saved, err := svc.CreateCountry(context.Background(), &domain.Country{Name: " Japan "})
	require.NoError(t, err)
	require.Equal(t, "Japan", saved.Name)
	require.EqualValues(t, 1, saved.ID)

	_, err = svc.CreateCountry(context.Background(), &domain.Country{Name: "Japan"})
	require.ErrorIs(t, err, ports.ErrConflict)
}

func TestCreateCountry_EmptyName(t *testing.T) {
	svc := NewService(&fakeCatalogRepo{})

	_, err := svc.CreateCountry(context.Background(), &domain.Country{})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrEmptyName)
}

func TestCreateManufacturer_UnknownCountry(t *testing.T) {
	svc := NewService(&fakeCatalogRepo{})

	_, err := svc.CreateManufacturer(context.Background(), &domain.Manufacturer{Name: "Acme", CountryID: 7})
	require.ErrorIs(t, err, ports.ErrReferenceNotFound)
}

func TestCreateProduct_AlwaysInStock(t *testing.T) {
	repo := &fakeCatalogRepo{}
	svc := NewService(repo)

	saved, err := svc.CreateProduct(context.Background(), &domain.Product{Name: "Gizmo", ManufacturerID: 1, CategoryID: 1, Price: 500})
	require.NoError(t, err)
	require.True(t, saved.InStock)

	_, err = svc.CreateProduct(context.Background(), &domain.Product{Name: "Free", ManufacturerID: 1, CategoryID: 1, Price: 0})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestCreateProduct_StoreConstraintIsInvalidInput(t *testing.T) {
	require.ErrorIs(t, mapError(ports.ErrConstraint), ErrInvalidInput)
}
