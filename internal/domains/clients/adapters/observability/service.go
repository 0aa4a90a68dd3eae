package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	clientdomain "github.com/Apurer/go-gin-shop-api/internal/domains/clients/domain"
	clientports "github.com/Apurer/go-gin-shop-api/internal/domains/clients/ports"
)

const tracerName = "github.com/Apurer/go-gin-shop-api/internal/domains/clients/adapters/observability/service"

// Service decorates the clients service with tracing, logging, and metrics.
type Service struct {
	inner   clientports.Service
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

// New wraps the core clients service.
func New(inner clientports.Service, opts ...Option) clientports.Service {
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

func (s *Service) CreateClient(ctx context.Context, client *clientdomain.Client) (*clientdomain.Client, error) {
	ctx, span := s.tracer.Start(ctx, "ClientService.CreateClient")
	defer span.End()

	// contact details are not logged
	result, err := s.inner.CreateClient(ctx, client)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create client")
	}
	span.SetAttributes(attribute.Int64("client.id", result.ID))
	s.metrics.recordRegistered(ctx)
	s.logInfo(ctx, "client created", slog.Int64("client.id", result.ID))
	return result, nil
}

func (s *Service) GetClient(ctx context.Context, id int64) (*clientdomain.Client, error) {
	ctx, span := s.tracer.Start(ctx, "ClientService.GetClient", trace.WithAttributes(attribute.Int64("client.id", id)))
	defer span.End()

	result, err := s.inner.GetClient(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load client", slog.Int64("client.id", id))
	}
	return result, nil
}

func (s *Service) ListClients(ctx context.Context) ([]*clientdomain.Client, error) {
	ctx, span := s.tracer.Start(ctx, "ClientService.ListClients")
	defer span.End()

	result, err := s.inner.ListClients(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list clients")
	}
	span.SetAttributes(attribute.Int("client.count", len(result)))
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
	registered metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	registered, _ := m.Int64Counter("clients.service.registered", metric.WithDescription("Number of clients registered"))
	return serviceMetrics{registered: registered}
}

func (m serviceMetrics) recordRegistered(ctx context.Context) {
	if m.registered != nil {
		m.registered.Add(ctx, 1)
	}
}

var _ clientports.Service = (*Service)(nil)
