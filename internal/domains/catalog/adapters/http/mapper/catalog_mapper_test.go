package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	catalogdomain "github.com/Apurer/go-gin-shop-api/internal/domains/catalog/domain"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "US$5.00", FormatPrice(500))
	assert.Equal(t, "US$0.01", FormatPrice(1))
	assert.Equal(t, "US$12.34", FormatPrice(1234))
	assert.Equal(t, "-US$0.50", FormatPrice(-50))
}

func TestProductLabel(t *testing.T) {
	p := &catalogdomain.Product{Name: "Gizmo", Price: 500}
	assert.Equal(t, "Gizmo (US$5.00)", ProductLabel(p))
	assert.Empty(t, ProductLabel(nil))
}

func TestFromDomainProduct(t *testing.T) {
	view := FromDomainProduct(&catalogdomain.Product{ID: 3, Name: "Gizmo", ManufacturerName: "Acme", CategoryName: "Widgets", Price: 250, InStock: true})
	assert.Equal(t, "US$2.50", view.PriceDisplay)
	assert.Equal(t, "Acme", view.Manufacturer)
	assert.True(t, view.InStock)
}
