package shopserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	catalogmapper "github.com/Apurer/go-gin-shop-api/internal/domains/catalog/adapters/http/mapper"
	catalogports "github.com/Apurer/go-gin-shop-api/internal/domains/catalog/ports"
)

// CatalogAPI wires HTTP transport with the catalog bounded context service.
type CatalogAPI struct {
	service catalogports.Service
}

// NewCatalogAPI creates a CatalogAPI backed by the provided service.
func NewCatalogAPI(service catalogports.Service) CatalogAPI {
	return CatalogAPI{service: service}
}

// Get /countries
func (api *CatalogAPI) ListCountries(c *gin.Context) {
	result, err := api.service.ListCountries(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogmapper.FromDomainCountries(result))
}

// Post /countries
func (api *CatalogAPI) CreateCountry(c *gin.Context) {
	var payload catalogmapper.CountryRequest
	if err := c.ShouldBind(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	created, err := api.service.CreateCountry(c.Request.Context(), catalogmapper.ToDomainCountry(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, catalogmapper.FromDomainCountry(created))
}

// Get /manufacturers
func (api *CatalogAPI) ListManufacturers(c *gin.Context) {
	result, err := api.service.ListManufacturers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogmapper.FromDomainManufacturers(result))
}

// Post /manufacturers
func (api *CatalogAPI) CreateManufacturer(c *gin.Context) {
	var payload catalogmapper.ManufacturerRequest
	if err := c.ShouldBind(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	created, err := api.service.CreateManufacturer(c.Request.Context(), catalogmapper.ToDomainManufacturer(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, catalogmapper.FromDomainManufacturer(created))
}

// Get /categories
func (api *CatalogAPI) ListCategories(c *gin.Context) {
	result, err := api.service.ListCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogmapper.FromDomainCategories(result))
}

// Post /categories
func (api *CatalogAPI) CreateCategory(c *gin.Context) {
	var payload catalogmapper.CategoryRequest
	if err := c.ShouldBind(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	created, err := api.service.CreateCategory(c.Request.Context(), catalogmapper.ToDomainCategory(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, catalogmapper.FromDomainCategory(created))
}

// Get /products
// Lists products newest first. ?in_stock=true restricts the list to unsold products.
func (api *CatalogAPI) ListProducts(c *gin.Context) {
	var inStock bool
	if err := runtime.BindQueryParameter("form", true, false, "in_stock", c.Request.URL.Query(), &inStock); err != nil {
		respondBindError(c, err)
		return
	}
	api.listProducts(c, catalogports.ProductFilter{InStockOnly: inStock})
}

// Get /stock
// Lists products still in stock, newest first.
func (api *CatalogAPI) ListStock(c *gin.Context) {
	api.listProducts(c, catalogports.ProductFilter{InStockOnly: true})
}

func (api *CatalogAPI) listProducts(c *gin.Context, filter catalogports.ProductFilter) {
	result, err := api.service.ListProducts(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogmapper.FromDomainProducts(result))
}

// Post /products
// New products are always in stock.
func (api *CatalogAPI) CreateProduct(c *gin.Context) {
	var payload catalogmapper.ProductRequest
	if err := c.ShouldBind(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	created, err := api.service.CreateProduct(c.Request.Context(), catalogmapper.ToDomainProduct(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, catalogmapper.FromDomainProduct(created))
}
