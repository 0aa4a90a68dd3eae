package shopserver

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Apurer/go-gin-shop-api/internal/shared/validation"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

var bindingNames sync.Once

// NewRouterWithGinEngine add routes to existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	bindingNames.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			validation.RegisterJSONTagNames(v)
		}
	})
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodPatch:
			router.PATCH(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}

	return router
}

// DefaultHandleFunc answers routes whose handler is not wired.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

type ApiHandleFunctions struct {
	// Routes for the CatalogAPI part of the API
	CatalogAPI CatalogAPI
	// Routes for the ClientAPI part of the API
	ClientAPI ClientAPI
	// Routes for the StoreAPI part of the API
	StoreAPI StoreAPI
	// Routes for the ReportAPI part of the API
	ReportAPI ReportAPI
	// Routes for the HealthAPI part of the API
	HealthAPI HealthAPI
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{
			"Home",
			http.MethodGet,
			"/",
			handleFunctions.ReportAPI.Home,
		},
		{
			"ListCountries",
			http.MethodGet,
			"/countries",
			handleFunctions.CatalogAPI.ListCountries,
		},
		{
			"CreateCountry",
			http.MethodPost,
			"/countries",
			handleFunctions.CatalogAPI.CreateCountry,
		},
		{
			"ListManufacturers",
			http.MethodGet,
			"/manufacturers",
			handleFunctions.CatalogAPI.ListManufacturers,
		},
		{
			"CreateManufacturer",
			http.MethodPost,
			"/manufacturers",
			handleFunctions.CatalogAPI.CreateManufacturer,
		},
		{
			"ListCategories",
			http.MethodGet,
			"/categories",
			handleFunctions.CatalogAPI.ListCategories,
		},
		{
			"CreateCategory",
			http.MethodPost,
			"/categories",
			handleFunctions.CatalogAPI.CreateCategory,
		},
		{
			"ListProducts",
			http.MethodGet,
			"/products",
			handleFunctions.CatalogAPI.ListProducts,
		},
		{
			"CreateProduct",
			http.MethodPost,
			"/products",
			handleFunctions.CatalogAPI.CreateProduct,
		},
		{
			"ListStock",
			http.MethodGet,
			"/stock",
			handleFunctions.CatalogAPI.ListStock,
		},
		{
			"ListClients",
			http.MethodGet,
			"/clients",
			handleFunctions.ClientAPI.ListClients,
		},
		{
			"CreateClient",
			http.MethodPost,
			"/clients",
			handleFunctions.ClientAPI.CreateClient,
		},
		{
			"ListOrders",
			http.MethodGet,
			"/orders",
			handleFunctions.StoreAPI.ListOrders,
		},
		{
			"PlaceOrder",
			http.MethodPost,
			"/orders",
			handleFunctions.StoreAPI.PlaceOrder,
		},
		{
			"GetOrderById",
			http.MethodGet,
			"/orders/:orderId",
			handleFunctions.StoreAPI.GetOrderById,
		},
		{
			"GetStats",
			http.MethodGet,
			"/stats",
			handleFunctions.ReportAPI.GetStats,
		},
		{
			"Healthz",
			http.MethodGet,
			"/healthz",
			handleFunctions.HealthAPI.Healthz,
		},
	}
}
