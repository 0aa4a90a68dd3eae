package ports

import (
	"context"

	"github.com/Apurer/go-gin-shop-api/internal/domains/store/domain"
)

// WorkflowOrchestrator runs order placement either inline or on a durable workflow engine.
type WorkflowOrchestrator interface {
	PlaceOrder(ctx context.Context, placement domain.Placement) (*domain.Order, error)
}
