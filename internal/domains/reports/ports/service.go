package ports

import (
	"context"

	"github.com/Apurer/go-gin-shop-api/internal/domains/reports/domain"
)

// Service exposes the sales reports to adapters.
type Service interface {
	Summary(ctx context.Context) (*domain.Summary, error)
	// Invalidate drops any cached summary so the next read reflects new orders.
	Invalidate(ctx context.Context) error
}
