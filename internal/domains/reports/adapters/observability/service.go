package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	reportdomain "github.com/Apurer/go-gin-shop-api/internal/domains/reports/domain"
	reportports "github.com/Apurer/go-gin-shop-api/internal/domains/reports/ports"
)

const tracerName = "github.com/Apurer/go-gin-shop-api/internal/domains/reports/adapters/observability/service"

// Service decorates the report service with tracing, logging, and metrics.
type Service struct {
	inner   reportports.Service
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

// New wraps the core report service.
func New(inner reportports.Service, opts ...Option) reportports.Service {
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

func (s *Service) Summary(ctx context.Context) (*reportdomain.Summary, error) {
	ctx, span := s.tracer.Start(ctx, "ReportService.Summary")
	defer span.End()

	result, err := s.inner.Summary(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to build sales summary")
	}
	span.SetAttributes(
		attribute.Int("report.manufacturers", len(result.ByManufacturer)),
		attribute.Int("report.categories", len(result.ByCategory)),
		attribute.Int("report.months", len(result.ByMonth)),
	)
	s.metrics.recordSummary(ctx)
	return result, nil
}

func (s *Service) Invalidate(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "ReportService.Invalidate")
	defer span.End()

	if err := s.inner.Invalidate(ctx); err != nil {
		return s.handleError(ctx, span, err, "failed to invalidate sales summary")
	}
	s.metrics.recordInvalidation(ctx)
	return nil
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
	summaries     metric.Int64Counter
	invalidations metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	summaries, _ := m.Int64Counter("reports.service.summaries", metric.WithDescription("Number of sales summaries served"))
	invalidations, _ := m.Int64Counter("reports.service.invalidations", metric.WithDescription("Number of cache invalidations"))
	return serviceMetrics{summaries: summaries, invalidations: invalidations}
}

func (m serviceMetrics) recordSummary(ctx context.Context) {
	if m.summaries != nil {
		m.summaries.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordInvalidation(ctx context.Context) {
	if m.invalidations != nil {
		m.invalidations.Add(ctx, 1)
	}
}

var _ reportports.Service = (*Service)(nil)
