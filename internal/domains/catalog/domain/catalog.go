package domain

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/Apurer/go-gin-shop-api/internal/shared/validation"
)

const (
	maxNameLength = 100
	maxURLLength  = 255
)

var (
	ErrEmptyName           = errors.New("name is required")
	ErrNameTooLong         = errors.New("name must be at most 100 characters")
	ErrInvalidCountry      = errors.New("country id must be greater than zero")
	ErrInvalidManufacturer = errors.New("manufacturer id must be greater than zero")
	ErrInvalidCategory     = errors.New("category id must be greater than zero")
	ErrInvalidEmployees    = errors.New("amount of employees must not be negative")
	ErrWebsiteTooLong      = errors.New("website must be at most 255 characters")
	ErrInvalidHomePage     = errors.New("home page must be an absolute http(s) URL of at most 255 characters")
	ErrInvalidPrice        = errors.New("price must be at least 1")
)

// Country is a manufacturer's home country.
type Country struct {
	ID   int64
	Name string
}

// NewCountry validates and constructs a Country.
func NewCountry(name string) (*Country, error) {
	c := &Country{Name: name}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate trims and checks the name.
func (c *Country) Validate() error {
	name, err := normalizeName(c.Name)
	if err != nil {
		return err
	}
	c.Name = name
	return nil
}

// Manufacturer produces products and belongs to a country.
type Manufacturer struct {
	ID                int64
	Name              string
	Website           *string
	CountryID         int64
	CountryName       string
	AmountOfEmployees *int64
}

// NewManufacturer validates and constructs a Manufacturer. Website is free text.
func NewManufacturer(name string, website *string, countryID int64, employees *int64) (*Manufacturer, error) {
	m := &Manufacturer{Name: name, Website: website, CountryID: countryID, AmountOfEmployees: employees}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manufacturer) Validate() error {
	name, err := normalizeName(m.Name)
	if err != nil {
		return err
	}
	m.Name = name
	m.Website = trimOptional(m.Website)
	if m.Website != nil && utf8.RuneCountInString(*m.Website) > maxURLLength {
		return ErrWebsiteTooLong
	}
	if m.CountryID <= 0 {
		return ErrInvalidCountry
	}
	if m.AmountOfEmployees != nil && *m.AmountOfEmployees < 0 {
		return ErrInvalidEmployees
	}
	return nil
}

// Category groups products.
type Category struct {
	ID   int64
	Name string
}

// NewCategory validates and constructs a Category.
func NewCategory(name string) (*Category, error) {
	c := &Category{Name: name}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Category) Validate() error {
	name, err := normalizeName(c.Name)
	if err != nil {
		return err
	}
	c.Name = name
	return nil
}

// Product is a sellable item. Price is in minor currency units (cents).
// InStock starts true and is cleared by order placement; it never returns to true.
type Product struct {
	ID               int64
	Name             string
	ManufacturerID   int64
	ManufacturerName string
	CategoryID       int64
	CategoryName     string
	HomePage         *string
	Price            int64
	InStock          bool
}

// NewProduct validates and constructs an in-stock Product.
func NewProduct(name string, manufacturerID, categoryID int64, homePage *string, price int64) (*Product, error) {
	p := &Product{
		Name:           name,
		ManufacturerID: manufacturerID,
		CategoryID:     categoryID,
		HomePage:       homePage,
		Price:          price,
		InStock:        true,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) Validate() error {
	name, err := normalizeName(p.Name)
	if err != nil {
		return err
	}
	p.Name = name
	if p.ManufacturerID <= 0 {
		return ErrInvalidManufacturer
	}
	if p.CategoryID <= 0 {
		return ErrInvalidCategory
	}
	p.HomePage = trimOptional(p.HomePage)
	if p.HomePage != nil && (utf8.RuneCountInString(*p.HomePage) > maxURLLength || !validation.URL(*p.HomePage)) {
		return ErrInvalidHomePage
	}
	if p.Price < 1 {
		return ErrInvalidPrice
	}
	return nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

// trimOptional turns blank optional text into nil.
func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
