package application

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/Apurer/go-gin-shop-api/internal/domains/reports/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/reports/ports"
)

// Service computes sales reports, reading through an optional cache.
type Service struct {
	repo   ports.Repository
	cache  ports.Cache
	now    func() time.Time
	logger *slog.Logger
	stale  atomic.Bool
}

// Option configures the report service.
type Option func(*Service)

// WithCache sets the summary cache. Without one every call hits the store.
func WithCache(cache ports.Cache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger used for cache failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService wires the report service.
func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Summary returns the three sales reports. A cache failure degrades to a store read.
func (s *Service) Summary(ctx context.Context) (*domain.Summary, error) {
	cached, generation, useCache := s.readCache(ctx)
	if cached != nil {
		return cached, nil
	}

	summary := &domain.Summary{}
	err := s.repo.Snapshot(ctx, func(ctx context.Context, q ports.Queries) error {
		var err error
		if summary.ByManufacturer, err = q.TotalsByManufacturer(ctx); err != nil {
			return err
		}
		if summary.ByCategory, err = q.TotalsByCategory(ctx); err != nil {
			return err
		}
		summary.ByMonth, err = q.TotalsByMonth(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	summary.GeneratedAt = s.now().UTC()

	if useCache {
		if err := s.cache.Set(ctx, generation, summary); err != nil {
			s.warn(ctx, "report cache write failed", err)
		}
	}
	return summary, nil
}

// readCache returns a cached summary, or the generation a fresh summary must
// be stored under. useCache is false when the cache cannot be trusted.
func (s *Service) readCache(ctx context.Context) (cached *domain.Summary, generation int64, useCache bool) {
	if s.cache == nil {
		return nil, 0, false
	}
	if s.stale.Load() {
		// a previous invalidation was lost; retry it before trusting the cache
		if err := s.cache.Invalidate(ctx); err != nil {
			s.warn(ctx, "report cache invalidation failed", err)
			return nil, 0, false
		}
		s.stale.Store(false)
	}
	cached, generation, err := s.cache.Get(ctx)
	if err != nil {
		s.warn(ctx, "report cache read failed", err)
		return nil, 0, false
	}
	return cached, generation, true
}

// Invalidate drops the cached summary. On failure the service stops serving
// from the cache until an invalidation succeeds.
func (s *Service) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.stale.Store(true)
		return err
	}
	s.stale.Store(false)
	return nil
}

func (s *Service) warn(ctx context.Context, msg string, err error) {
	if s.logger == nil {
		return
	}
	s.logger.WarnContext(ctx, msg, slog.String("error", err.Error()))
}

var _ ports.Service = (*Service)(nil)
