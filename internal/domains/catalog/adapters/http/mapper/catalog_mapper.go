package mapper

import (
	"fmt"

	catalogdomain "github.com/Apurer/go-gin-shop-api/internal/domains/catalog/domain"
)

// CountryRequest is accepted as JSON or form data.
type CountryRequest struct {
	Name string `json:"name" form:"name" binding:"required"`
}

type ManufacturerRequest struct {
	Name              string  `json:"name" form:"name" binding:"required"`
	Website           *string `json:"website,omitempty" form:"website"`
	CountryID         int64   `json:"country_id" form:"country_id" binding:"required,gt=0"`
	AmountOfEmployees *int64  `json:"amount_of_employees,omitempty" form:"amount_of_employees" binding:"omitempty,gte=0"`
}

type CategoryRequest struct {
	Name string `json:"name" form:"name" binding:"required"`
}

type ProductRequest struct {
	Name           string  `json:"name" form:"name" binding:"required"`
	ManufacturerID int64   `json:"manufacturer_id" form:"manufacturer_id" binding:"required,gt=0"`
	CategoryID     int64   `json:"category_id" form:"category_id" binding:"required,gt=0"`
	HomePage       *string `json:"home_page,omitempty" form:"home_page"`
	Price          int64   `json:"price" form:"price" binding:"gte=1"`
}

type Country struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Manufacturer struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Website           *string `json:"website,omitempty"`
	CountryID         int64   `json:"country_id"`
	Country           string  `json:"country,omitempty"`
	AmountOfEmployees *int64  `json:"amount_of_employees,omitempty"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Label          string  `json:"label"`
	ManufacturerID int64   `json:"manufacturer_id"`
	Manufacturer   string  `json:"manufacturer,omitempty"`
	CategoryID     int64   `json:"category_id"`
	Category       string  `json:"category,omitempty"`
	HomePage       *string `json:"home_page,omitempty"`
	Price          int64   `json:"price"`
	PriceDisplay   string  `json:"price_display"`
	InStock        bool    `json:"in_stock"`
}

// FormatPrice renders minor units as a US dollar amount, e.g. 500 -> "US$5.00".
func FormatPrice(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%sUS$%d.%02d", sign, cents/100, cents%100)
}

// ProductLabel renders a product as shown in selection lists: "Gizmo (US$5.00)".
func ProductLabel(p *catalogdomain.Product) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%s (%s)", p.Name, FormatPrice(p.Price))
}

func ToDomainCountry(req CountryRequest) *catalogdomain.Country {
	return &catalogdomain.Country{Name: req.Name}
}

func ToDomainManufacturer(req ManufacturerRequest) *catalogdomain.Manufacturer {
	return &catalogdomain.Manufacturer{
		Name:              req.Name,
		Website:           req.Website,
		CountryID:         req.CountryID,
		AmountOfEmployees: req.AmountOfEmployees,
	}
}

func ToDomainCategory(req CategoryRequest) *catalogdomain.Category {
	return &catalogdomain.Category{Name: req.Name}
}

func ToDomainProduct(req ProductRequest) *catalogdomain.Product {
	return &catalogdomain.Product{
		Name:           req.Name,
		ManufacturerID: req.ManufacturerID,
		CategoryID:     req.CategoryID,
		HomePage:       req.HomePage,
		Price:          req.Price,
		InStock:        true,
	}
}

func FromDomainCountry(c *catalogdomain.Country) Country {
	if c == nil {
		return Country{}
	}
	return Country{ID: c.ID, Name: c.Name}
}

func FromDomainCountries(list []*catalogdomain.Country) []Country {
	out := make([]Country, 0, len(list))
	for _, c := range list {
		out = append(out, FromDomainCountry(c))
	}
	return out
}

func FromDomainManufacturer(m *catalogdomain.Manufacturer) Manufacturer {
	if m == nil {
		return Manufacturer{}
	}
	return Manufacturer{
		ID:                m.ID,
		Name:              m.Name,
		Website:           m.Website,
		CountryID:         m.CountryID,
		Country:           m.CountryName,
		AmountOfEmployees: m.AmountOfEmployees,
	}
}

func FromDomainManufacturers(list []*catalogdomain.Manufacturer) []Manufacturer {
	out := make([]Manufacturer, 0, len(list))
	for _, m := range list {
		out = append(out, FromDomainManufacturer(m))
	}
	return out
}

func FromDomainCategory(c *catalogdomain.Category) Category {
	if c == nil {
		return Category{}
	}
	return Category{ID: c.ID, Name: c.Name}
}

func FromDomainCategories(list []*catalogdomain.Category) []Category {
	out := make([]Category, 0, len(list))
	for _, c := range list {
		out = append(out, FromDomainCategory(c))
	}
	return out
}

func FromDomainProduct(p *catalogdomain.Product) Product {
	if p == nil {
		return Product{}
	}
	return Product{
		ID:             p.ID,
		Name:           p.Name,
		Label:          ProductLabel(p),
		ManufacturerID: p.ManufacturerID,
		Manufacturer:   p.ManufacturerName,
		CategoryID:     p.CategoryID,
		Category:       p.CategoryName,
		HomePage:       p.HomePage,
		Price:          p.Price,
		PriceDisplay:   FormatPrice(p.Price),
		InStock:        p.InStock,
	}
}

func FromDomainProducts(list []*catalogdomain.Product) []Product {
	out := make([]Product, 0, len(list))
	for _, p := range list {
		out = append(out, FromDomainProduct(p))
	}
	return out
}
