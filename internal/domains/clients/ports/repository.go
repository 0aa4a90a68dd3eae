package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-shop-api/internal/domains/clients/domain"
)

var (
	ErrNotFound = errors.New("client not found")
	// ErrConflict reports a phone number or email already used by another client.
	ErrConflict = errors.New("client already exists")
)

// Repository persists clients.
type Repository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
}
