package application

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-shop-api/internal/domains/clients/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/clients/ports"
)

// Service exposes client use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if client == nil {
		return nil, errors.New("client is nil")
	}
	if err := client.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Create(ctx, client)
}

func (s *Service) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListClients(ctx context.Context) ([]*domain.Client, error) {
	return s.repo.List(ctx)
}

var _ ports.Service = (*Service)(nil)
