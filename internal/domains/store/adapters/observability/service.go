package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	storedomain "github.com/Apurer/go-gin-shop-api/internal/domains/store/domain"
	storeports "github.com/Apurer/go-gin-shop-api/internal/domains/store/ports"
)

const tracerName = "github.com/Apurer/go-gin-shop-api/internal/domains/store/adapters/observability/service"

// Service decorates the order service with tracing, logging, and metrics.
type Service struct {
	inner   storeports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core order service.
func New(inner storeports.Service, opts ...Option) storeports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) PlaceOrder(ctx context.Context, placement storedomain.Placement) (*storedomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "StoreService.PlaceOrder",
		trace.WithAttributes(
			attribute.Int64("order.client_id", placement.ClientID),
			attribute.Int("order.requested_products", len(placement.ProductIDs)),
			attribute.Bool("order.idempotent", placement.IdempotencyKey != ""),
		))
	defer span.End()

	s.logInfo(ctx, "placing order", slog.Int64("order.client_id", placement.ClientID), slog.Int("order.requested_products", len(placement.ProductIDs)))
	result, err := s.inner.PlaceOrder(ctx, placement)
	if err != nil {
		s.metrics.recordRejected(ctx)
		return nil, s.handleError(ctx, span, err, "failed to place order", slog.Int64("order.client_id", placement.ClientID))
	}
	span.SetAttributes(attribute.Int64("order.id", result.ID), attribute.Int64("order.total_price", result.TotalPrice))
	s.metrics.recordPlaced(ctx, result)
	s.logInfo(ctx, "order placed",
		slog.Int64("order.id", result.ID),
		slog.Int64("order.total_price", result.TotalPrice),
		slog.Int("order.products", len(result.Products)))
	return result, nil
}

func (s *Service) GetOrderByID(ctx context.Context, id int64) (*storedomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "StoreService.GetOrderByID", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	result, err := s.inner.GetOrderByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.Int64("order.id", id))
	}
	return result, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]*storedomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "StoreService.ListOrders")
	defer span.End()

	result, err := s.inner.ListOrders(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("order.count", len(result)))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	ordersPlaced   metric.Int64Counter
	ordersRejected metric.Int64Counter
	revenue        metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersPlaced, _ := m.Int64Counter("store.service.orders_placed", metric.WithDescription("Number of orders placed"))
	ordersRejected, _ := m.Int64Counter("store.service.orders_rejected", metric.WithDescription("Number of placements that failed"))
	revenue, _ := m.Int64Counter("store.service.revenue", metric.WithDescription("Sum of order totals"), metric.WithUnit("{cent}"))
	return serviceMetrics{ordersPlaced: ordersPlaced, ordersRejected: ordersRejected, revenue: revenue}
}

func (m serviceMetrics) recordPlaced(ctx context.Context, order *storedomain.Order) {
	if m.ordersPlaced != nil {
		m.ordersPlaced.Add(ctx, 1)
	}
	if m.revenue != nil {
		m.revenue.Add(ctx, order.TotalPrice)
	}
}

func (m serviceMetrics) recordRejected(ctx context.Context) {
	if m.ordersRejected != nil {
		m.ordersRejected.Add(ctx, 1)
	}
}

var _ storeports.Service = (*Service)(nil)
