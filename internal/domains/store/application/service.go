package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Apurer/go-gin-shop-api/internal/domains/store/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/store/ports"
)

// Service orchestrates order use cases.
type Service struct {
	repo      ports.Repository
	policy    domain.StockPolicy
	listeners []ports.PlacementListener
	now       func() time.Time
	logger    *slog.Logger
}

// Option configures the order service.
type Option func(*Service)

// WithStockPolicy selects how placement treats products already sold.
func WithStockPolicy(policy domain.StockPolicy) Option {
	return func(s *Service) {
		if policy != "" {
			s.policy = policy
		}
	}
}

// WithPlacementListener registers a listener notified after each committed placement.
func WithPlacementListener(listener ports.PlacementListener) Option {
	return func(s *Service) {
		if listener != nil {
			s.listeners = append(s.listeners, listener)
		}
	}
}

// WithClock overrides the time source used to stamp orders.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger used for listener failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService wires the order service. The default stock policy is lenient.
func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, policy: domain.StockPolicyLenient, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// PlaceOrder resolves the requested products, records the order with its
// total, and marks the products sold, all in one transaction. Product ids with
// no matching row are dropped; if none resolve the order is stored with no
// products and a zero total.
func (s *Service) PlaceOrder(ctx context.Context, placement domain.Placement) (*domain.Order, error) {
	normalized, err := placement.Normalize(s.now)
	if err != nil {
		return nil, mapError(err)
	}

	var fingerprint string
	if normalized.IdempotencyKey != "" {
		fingerprint, err = FingerprintPlacement(normalized)
		if err != nil {
			return nil, err
		}
		if replayed, err := s.replay(ctx, normalized.IdempotencyKey, fingerprint); err != nil || replayed != nil {
			return replayed, err
		}
	}

	var placed *domain.Order
	err = s.repo.WithinTransaction(ctx, func(ctx context.Context, tx ports.Tx) error {
		exists, err := tx.ClientExists(ctx, normalized.ClientID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: id %d", ports.ErrClientNotFound, normalized.ClientID)
		}
		products, err := tx.FindProducts(ctx, normalized.ProductIDs)
		if err != nil {
			return err
		}
		order := domain.NewOrder(normalized.ClientID, normalized.PlacedAt, products)
		if err := tx.InsertOrder(ctx, order); err != nil {
			return err
		}
		if normalized.IdempotencyKey != "" {
			record := ports.IdempotencyRecord{
				Key:         normalized.IdempotencyKey,
				RequestHash: fingerprint,
				OrderID:     order.ID,
				CreatedAt:   normalized.PlacedAt,
			}
			if err := tx.SaveIdempotencyKey(ctx, record); err != nil {
				return err
			}
		}
		if err := s.depleteStock(ctx, tx, order.ProductIDs()); err != nil {
			return err
		}
		placed = order
		return nil
	})
	if err != nil {
		if errors.Is(err, ports.ErrIdempotencyKeyClaimed) {
			// a concurrent placement with the same key committed first
			replayed, replayErr := s.replay(ctx, normalized.IdempotencyKey, fingerprint)
			if replayErr != nil || replayed != nil {
				return replayed, replayErr
			}
		}
		return nil, mapError(err)
	}

	s.notify(ctx, placed)
	return placed, nil
}

func (s *Service) depleteStock(ctx context.Context, tx ports.Tx, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	strict := s.policy == domain.StockPolicyStrict
	changed, err := tx.MarkOutOfStock(ctx, ids, strict)
	if err != nil {
		return err
	}
	if strict && changed != int64(len(ids)) {
		return fmt.Errorf("%w: %d of %d products already sold", ports.ErrOutOfStock, int64(len(ids))-changed, len(ids))
	}
	return nil
}

// replay returns the order previously created under key, nil when the key is unused,
// or ports.ErrIdempotencyConflict when the key was used for a different request.
func (s *Service) replay(ctx context.Context, key, fingerprint string) (*domain.Order, error) {
	record, err := s.repo.FindIdempotencyKey(ctx, key)
	if err != nil || record == nil {
		return nil, err
	}
	if record.RequestHash != fingerprint {
		return nil, ports.ErrIdempotencyConflict
	}
	return s.repo.GetByID(ctx, record.OrderID)
}

func (s *Service) notify(ctx context.Context, order *domain.Order) {
	for _, listener := range s.listeners {
		if err := listener.OrderPlaced(ctx, order); err != nil && s.logger != nil {
			s.logger.WarnContext(ctx, "order placement listener failed",
				slog.Int64("order.id", order.ID), slog.String("error", err.Error()))
		}
	}
}

func (s *Service) GetOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// ListOrders returns orders newest first.
func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

var _ ports.Service = (*Service)(nil)
