package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	catalogdomain "github.com/Apurer/go-gin-shop-api/internal/domains/catalog/domain"
	catalogports "github.com/Apurer/go-gin-shop-api/internal/domains/catalog/ports"
)

const tracerName = "github.com/Apurer/go-gin-shop-api/internal/domains/catalog/adapters/observability/service"

// Service decorates the catalog service with tracing, logging, and metrics.
type Service struct {
	inner   catalogports.Service
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

// New wraps the core catalog service.
func New(inner catalogports.Service, opts ...Option) catalogports.Service {
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

func (s *Service) CreateCountry(ctx context.Context, country *catalogdomain.Country) (*catalogdomain.Country, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.CreateCountry")
	defer span.End()

	result, err := s.inner.CreateCountry(ctx, country)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create country", slog.String("country.name", country.Name))
	}
	s.metrics.recordCreated(ctx, "country")
	s.logInfo(ctx, "country created", slog.Int64("country.id", result.ID), slog.String("country.name", result.Name))
	return result, nil
}

func (s *Service) ListCountries(ctx context.Context) ([]*catalogdomain.Country, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.ListCountries")
	defer span.End()

	result, err := s.inner.ListCountries(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list countries")
	}
	span.SetAttributes(attribute.Int("catalog.count", len(result)))
	return result, nil
}

func (s *Service) CreateManufacturer(ctx context.Context, manufacturer *catalogdomain.Manufacturer) (*catalogdomain.Manufacturer, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.CreateManufacturer",
		trace.WithAttributes(attribute.Int64("manufacturer.country_id", manufacturer.CountryID)))
	defer span.End()

	result, err := s.inner.CreateManufacturer(ctx, manufacturer)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create manufacturer",
			slog.String("manufacturer.name", manufacturer.Name), slog.Int64("manufacturer.country_id", manufacturer.CountryID))
	}
	s.metrics.recordCreated(ctx, "manufacturer")
	s.logInfo(ctx, "manufacturer created", slog.Int64("manufacturer.id", result.ID), slog.String("manufacturer.name", result.Name))
	return result, nil
}

func (s *Service) ListManufacturers(ctx context.Context) ([]*catalogdomain.Manufacturer, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.ListManufacturers")
	defer span.End()

	result, err := s.inner.ListManufacturers(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list manufacturers")
	}
	span.SetAttributes(attribute.Int("catalog.count", len(result)))
	return result, nil
}

func (s *Service) CreateCategory(ctx context.Context, category *catalogdomain.Category) (*catalogdomain.Category, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.CreateCategory")
	defer span.End()

	result, err := s.inner.CreateCategory(ctx, category)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create category", slog.String("category.name", category.Name))
	}
	s.metrics.recordCreated(ctx, "category")
	s.logInfo(ctx, "category created", slog.Int64("category.id", result.ID), slog.String("category.name", result.Name))
	return result, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]*catalogdomain.Category, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.ListCategories")
	defer span.End()

	result, err := s.inner.ListCategories(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list categories")
	}
	span.SetAttributes(attribute.Int("catalog.count", len(result)))
	return result, nil
}

func (s *Service) CreateProduct(ctx context.Context, product *catalogdomain.Product) (*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.CreateProduct",
		trace.WithAttributes(
			attribute.Int64("product.manufacturer_id", product.ManufacturerID),
			attribute.Int64("product.category_id", product.CategoryID),
		))
	defer span.End()

	result, err := s.inner.CreateProduct(ctx, product)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create product", slog.String("product.name", product.Name))
	}
	s.metrics.recordCreated(ctx, "product")
	s.logInfo(ctx, "product created", slog.Int64("product.id", result.ID), slog.Int64("product.price", result.Price))
	return result, nil
}

func (s *Service) ListProducts(ctx context.Context, filter catalogports.ProductFilter) ([]*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.ListProducts",
		trace.WithAttributes(attribute.Bool("filter.in_stock_only", filter.InStockOnly)))
	defer span.End()

	result, err := s.inner.ListProducts(ctx, filter)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list products")
	}
	span.SetAttributes(attribute.Int("catalog.count", len(result)))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
	}
	return err
}

type serviceMetrics struct {
	created metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("catalog.service.created", metric.WithDescription("Number of catalog entries created"))
	return serviceMetrics{created: created}
}

func (m serviceMetrics) recordCreated(ctx context.Context, kind string) {
	if m.created != nil {
		m.created.Add(ctx, 1, metric.WithAttributes(attribute.String("catalog.kind", kind)))
	}
}

var _ catalogports.Service = (*Service)(nil)
