package ports

import (
	"context"

	"github.com/Apurer/go-gin-shop-api/internal/domains/store/domain"
)

// Service exposes order use cases to adapters.
type Service interface {
	PlaceOrder(ctx context.Context, placement domain.Placement) (*domain.Order, error)
	GetOrderByID(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
}

// PlacementListener is told about every committed order.
type PlacementListener interface {
	OrderPlaced(ctx context.Context, order *domain.Order) error
}

// PlacementListenerFunc adapts a function to PlacementListener.
type PlacementListenerFunc func(ctx context.Context, order *domain.Order) error

func (f PlacementListenerFunc) OrderPlaced(ctx context.Context, order *domain.Order) error {
	return f(ctx, order)
}
