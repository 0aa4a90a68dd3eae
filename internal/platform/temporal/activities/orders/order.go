package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	storedomain "github.com/Apurer/go-gin-shop-api/internal/domains/store/domain"
	storeports "github.com/Apurer/go-gin-shop-api/internal/domains/store/ports"
)

const (
	// PlaceOrderActivityName places an order in a single store transaction.
	PlaceOrderActivityName = "shop.activities.PlaceOrder"
)

// Activities groups activities that operate on the store bounded context.
type Activities struct {
	service storeports.Service
}

// NewActivities wires the order service into the Temporal activities bundle.
func NewActivities(service storeports.Service) *Activities {
	return &Activities{service: service}
}

// PlaceOrder runs the placement and returns the persisted order.
// Domain failures are returned as non-retryable application errors.
func (a *Activities) PlaceOrder(ctx context.Context, placement storedomain.Placement) (*storedomain.Order, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("place order activity not initialized", "clientId", placement.ClientID)
		return nil, errors.New("place order activity not initialized")
	}
	logger.Info("PlaceOrder activity started", "clientId", placement.ClientID, "products", len(placement.ProductIDs))
	order, err := a.service.PlaceOrder(ctx, placement)
	if err != nil {
		logger.Error("PlaceOrder activity failed", "clientId", placement.ClientID, "error", err)
		return nil, EncodeError(err)
	}
	logger.Info("PlaceOrder activity completed", "orderId", order.ID, "totalPrice", order.TotalPrice)
	return order, nil
}
