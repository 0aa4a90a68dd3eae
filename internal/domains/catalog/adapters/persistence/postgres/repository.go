package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Apurer/go-gin-shop-api/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/catalog/ports"
	"github.com/Apurer/go-gin-shop-api/internal/platform/database"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists the catalog through GORM. It runs against PostgreSQL
// and the embedded SQLite store alike. Schema is owned by platform/migrations.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a GORM-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type countryRecord struct {
	ID   int64  `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name"`
}

func (countryRecord) TableName() string { return "shop_country" }

type manufacturerRecord struct {
	ID                int64   `gorm:"primaryKey;column:id"`
	Name              string  `gorm:"column:name"`
	Website           *string `gorm:"column:website"`
	CountryID         int64   `gorm:"column:country_id"`
	AmountOfEmployees *int64  `gorm:"column:amount_of_employees"`
}

func (manufacturerRecord) TableName() string { return "shop_manufacturer" }

type manufacturerView struct {
	manufacturerRecord
	CountryName string `gorm:"column:country_name"`
}

type categoryRecord struct {
	ID   int64  `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name"`
}

func (categoryRecord) TableName() string { return "shop_category" }

type productRecord struct {
	ID             int64   `gorm:"primaryKey;column:id"`
	Name           string  `gorm:"column:name"`
	ManufacturerID int64   `gorm:"column:manufacturer_id"`
	CategoryID     int64   `gorm:"column:category_id"`
	HomePage       *string `gorm:"column:home_page"`
	Price          int64   `gorm:"column:price"`
	InStock        bool    `gorm:"column:in_stock"`
}

func (productRecord) TableName() string { return "shop_product" }

type productView struct {
	productRecord
	ManufacturerName string `gorm:"column:manufacturer_name"`
	CategoryName     string `gorm:"column:category_name"`
}

// CreateCountry inserts a country; duplicate names yield ports.ErrConflict.
func (r *Repository) CreateCountry(ctx context.Context, country *domain.Country) (*domain.Country, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := countryRecord{Name: country.Name}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("country %q", country.Name))
	}
	return &domain.Country{ID: record.ID, Name: record.Name}, nil
}

// ListCountries returns countries in insertion order.
func (r *Repository) ListCountries(ctx context.Context) ([]*domain.Country, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []countryRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, database.Classify(err)
	}
	countries := make([]*domain.Country, 0, len(records))
	for _, rec := range records {
		countries = append(countries, &domain.Country{ID: rec.ID, Name: rec.Name})
	}
	return countries, nil
}

// CreateManufacturer inserts a manufacturer; an unknown country yields ports.ErrReferenceNotFound.
func (r *Repository) CreateManufacturer(ctx context.Context, manufacturer *domain.Manufacturer) (*domain.Manufacturer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := manufacturerRecord{
		Name:              manufacturer.Name,
		Website:           manufacturer.Website,
		CountryID:         manufacturer.CountryID,
		AmountOfEmployees: manufacturer.AmountOfEmployees,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("manufacturer %q", manufacturer.Name))
	}
	return r.getManufacturer(ctx, record.ID)
}

// ListManufacturers returns manufacturers with their country names.
func (r *Repository) ListManufacturers(ctx context.Context) ([]*domain.Manufacturer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var views []manufacturerView
	if err := r.manufacturers(ctx).Order("m.id").Scan(&views).Error; err != nil {
		return nil, database.Classify(err)
	}
	result := make([]*domain.Manufacturer, 0, len(views))
	for i := range views {
		result = append(result, views[i].toDomain())
	}
	return result, nil
}

func (r *Repository) getManufacturer(ctx context.Context, id int64) (*domain.Manufacturer, error) {
	var view manufacturerView
	res := r.manufacturers(ctx).Where("m.id = ?", id).Scan(&view)
	if res.Error != nil {
		return nil, database.Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return view.toDomain(), nil
}

func (r *Repository) manufacturers(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("shop_manufacturer AS m").
		Select("m.id, m.name, m.website, m.country_id, m.amount_of_employees, c.name AS country_name").
		Joins("JOIN shop_country AS c ON c.id = m.country_id")
}

// CreateCategory inserts a category; duplicate names yield ports.ErrConflict.
func (r *Repository) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := categoryRecord{Name: category.Name}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("category %q", category.Name))
	}
	return &domain.Category{ID: record.ID, Name: record.Name}, nil
}

// ListCategories returns categories in insertion order.
func (r *Repository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []categoryRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, database.Classify(err)
	}
	categories := make([]*domain.Category, 0, len(records))
	for _, rec := range records {
		categories = append(categories, &domain.Category{ID: rec.ID, Name: rec.Name})
	}
	return categories, nil
}

// CreateProduct inserts an in-stock product.
func (r *Repository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := productRecord{
		Name:           product.Name,
		ManufacturerID: product.ManufacturerID,
		CategoryID:     product.CategoryID,
		HomePage:       product.HomePage,
		Price:          product.Price,
		InStock:        true,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("product %q", product.Name))
	}
	var view productView
	res := r.products(ctx).Where("p.id = ?", record.ID).Scan(&view)
	if res.Error != nil {
		return nil, database.Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return view.toDomain(), nil
}

// ListProducts returns products newest first, optionally only those in stock.
func (r *Repository) ListProducts(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	query := r.products(ctx)
	if filter.InStockOnly {
		query = query.Where("p.in_stock = ?", true)
	}
	var views []productView
	if err := query.Order("p.id DESC").Scan(&views).Error; err != nil {
		return nil, database.Classify(err)
	}
	result := make([]*domain.Product, 0, len(views))
	for i := range views {
		result = append(result, views[i].toDomain())
	}
	return result, nil
}

func (r *Repository) products(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("shop_product AS p").
		Select("p.id, p.name, p.manufacturer_id, p.category_id, p.home_page, p.price, p.in_stock, " +
			"m.name AS manufacturer_name, c.name AS category_name").
		Joins("JOIN shop_manufacturer AS m ON m.id = p.manufacturer_id").
		Joins("JOIN shop_category AS c ON c.id = p.category_id")
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("catalog repository not configured")
	}
	return nil
}

// translate maps driver constraint failures onto the catalog port errors.
func translate(err error, subject string) error {
	switch {
	case database.IsUniqueViolation(err):
		return fmt.Errorf("%w: %s", ports.ErrConflict, subject)
	case database.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %s", ports.ErrReferenceNotFound, subject)
	case database.IsCheckViolation(err):
		return fmt.Errorf("%w: %s", ports.ErrConstraint, subject)
	default:
		return database.Classify(err)
	}
}

func (v manufacturerView) toDomain() *domain.Manufacturer {
	return &domain.Manufacturer{
		ID:                v.ID,
		Name:              v.Name,
		Website:           v.Website,
		CountryID:         v.CountryID,
		CountryName:       v.CountryName,
		AmountOfEmployees: v.AmountOfEmployees,
	}
}

func (v productView) toDomain() *domain.Product {
	return &domain.Product{
		ID:               v.ID,
		Name:             v.Name,
		ManufacturerID:   v.ManufacturerID,
		ManufacturerName: v.ManufacturerName,
		CategoryID:       v.CategoryID,
		CategoryName:     v.CategoryName,
		HomePage:         v.HomePage,
		Price:            v.Price,
		InStock:          v.InStock,
	}
}
