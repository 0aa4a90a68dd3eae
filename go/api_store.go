package shopserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	storemapper "github.com/Apurer/go-gin-shop-api/internal/domains/store/adapters/http/mapper"
	storedomain "github.com/Apurer/go-gin-shop-api/internal/domains/store/domain"
	storeports "github.com/Apurer/go-gin-shop-api/internal/domains/store/ports"
)

// IdempotencyKeyHeader lets a client retry an order placement without placing it twice.
const IdempotencyKeyHeader = "Idempotency-Key"

// StoreAPI wires HTTP transport with the order service and placement workflows.
type StoreAPI struct {
	service   storeports.Service
	workflows storeports.WorkflowOrchestrator
}

// NewStoreAPI creates a StoreAPI. A nil workflows places orders through the service directly.
func NewStoreAPI(service storeports.Service, workflows storeports.WorkflowOrchestrator) StoreAPI {
	return StoreAPI{service: service, workflows: workflows}
}

// Get /orders
// Lists orders, most recent first.
func (api *StoreAPI) ListOrders(c *gin.Context) {
	result, err := api.service.ListOrders(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, storemapper.FromDomainOrders(result))
}

// Post /orders
// Places an order. Unknown product ids are ignored; every resolved product is marked sold.
func (api *StoreAPI) PlaceOrder(c *gin.Context) {
	var payload storemapper.OrderRequest
	if err := c.ShouldBind(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	placement := storemapper.ToDomainPlacement(payload, c.GetHeader(IdempotencyKeyHeader))
	order, err := api.placeOrder(c.Request.Context(), placement)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, storemapper.FromDomainOrder(order))
}

func (api *StoreAPI) placeOrder(ctx context.Context, placement storedomain.Placement) (*storedomain.Order, error) {
	if api.workflows != nil {
		return api.workflows.PlaceOrder(ctx, placement)
	}
	return api.service.PlaceOrder(ctx, placement)
}

// Get /orders/:orderId
func (api *StoreAPI) GetOrderById(c *gin.Context) {
	var orderID int64
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", c.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		respondBindError(c, err)
		return
	}
	order, err := api.service.GetOrderByID(c.Request.Context(), orderID)
	if errors.Is(err, storeports.ErrNotFound) {
		responder.NotFound(c, "order", orderID)
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, storemapper.FromDomainOrder(order))
}
