package ports

import (
	"context"

	"github.com/Apurer/go-gin-shop-api/internal/domains/clients/domain"
)

// Service exposes client use cases to adapters.
type Service interface {
	CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetClient(ctx context.Context, id int64) (*domain.Client, error)
	ListClients(ctx context.Context) ([]*domain.Client, error)
}
