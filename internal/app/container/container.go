// Package container assembles the shop services shared by the API, the worker, and the MCP server.
package container

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/Apurer/go-gin-shop-api/internal/app/config"
	catalogobs "github.com/Apurer/go-gin-shop-api/internal/domains/catalog/adapters/observability"
	catalogpostgres "github.com/Apurer/go-gin-shop-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/Apurer/go-gin-shop-api/internal/domains/catalog/application"
	catalogports "github.com/Apurer/go-gin-shop-api/internal/domains/catalog/ports"
	clientobs "github.com/Apurer/go-gin-shop-api/internal/domains/clients/adapters/observability"
	clientpostgres "github.com/Apurer/go-gin-shop-api/internal/domains/clients/adapters/persistence/postgres"
	clientapp "github.com/Apurer/go-gin-shop-api/internal/domains/clients/application"
	clientports "github.com/Apurer/go-gin-shop-api/internal/domains/clients/ports"
	reportcache "github.com/Apurer/go-gin-shop-api/internal/domains/reports/adapters/cache"
	reportobs "github.com/Apurer/go-gin-shop-api/internal/domains/reports/adapters/observability"
	reportpostgres "github.com/Apurer/go-gin-shop-api/internal/domains/reports/adapters/persistence/postgres"
	reportapp "github.com/Apurer/go-gin-shop-api/internal/domains/reports/application"
	reportports "github.com/Apurer/go-gin-shop-api/internal/domains/reports/ports"
	storeobs "github.com/Apurer/go-gin-shop-api/internal/domains/store/adapters/observability"
	storepostgres "github.com/Apurer/go-gin-shop-api/internal/domains/store/adapters/persistence/postgres"
	storeapp "github.com/Apurer/go-gin-shop-api/internal/domains/store/application"
	storedomain "github.com/Apurer/go-gin-shop-api/internal/domains/store/domain"
	storeports "github.com/Apurer/go-gin-shop-api/internal/domains/store/ports"
	"github.com/Apurer/go-gin-shop-api/internal/platform/database"
	"github.com/Apurer/go-gin-shop-api/internal/platform/migrations"
	platformobservability "github.com/Apurer/go-gin-shop-api/internal/platform/observability"
)

// Container holds the decorated services of every bounded context.
type Container struct {
	DB      *gorm.DB
	Catalog catalogports.Service
	Clients clientports.Service
	Store   storeports.Service
	Reports reportports.Service
}

// Ping reports whether the store answers.
func (c *Container) Ping(ctx context.Context) error {
	return database.Ping(ctx, c.DB)
}

// Build opens the store, applies the schema, and wires the services.
// The returned cleanup closes the store and the report cache.
func Build(ctx context.Context, cfg config.Config, instruments *platformobservability.Instruments) (*Container, func(), error) {
	logger := instruments.Logger
	db, closeDB, err := database.Open(ctx, logger, cfg.PostgresDSN, cfg.SQLitePath, database.Options{Debug: cfg.Debug})
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to open store: %w", err)
	}
	if err := migrations.Run(db); err != nil {
		closeDB()
		return nil, func() {}, fmt.Errorf("failed to migrate store: %w", err)
	}
	c, closeCache := New(ctx, db, cfg, instruments)
	return c, func() {
		closeCache()
		closeDB()
	}, nil
}

// New wires the services on an open, migrated store.
func New(ctx context.Context, db *gorm.DB, cfg config.Config, instruments *platformobservability.Instruments) (*Container, func()) {
	logger := instruments.Logger

	reportOpts := []reportapp.Option{reportapp.WithLogger(logger)}
	closeCache := func() {}
	if cfg.RedisURL != "" {
		redisCache, err := reportcache.NewRedisCache(ctx, cfg.RedisURL, cfg.ReportCacheTTL)
		if err != nil {
			logger.Warn("report cache unavailable, reading reports from the store", slog.String("error", err.Error()))
		} else {
			reportOpts = append(reportOpts, reportapp.WithCache(redisCache))
			closeCache = func() { _ = redisCache.Close() }
			logger.Info("report cache configured with redis", slog.Duration("ttl", cfg.ReportCacheTTL))
		}
	}
	reports := reportobs.New(
		reportapp.NewService(reportpostgres.NewRepository(db), reportOpts...),
		reportobs.WithLogger(logger),
		reportobs.WithTracer(instruments.Tracer("internal.reports.application")),
		reportobs.WithMeter(instruments.Meter("internal.reports.application")),
	)

	invalidateReports := storeports.PlacementListenerFunc(func(ctx context.Context, _ *storedomain.Order) error {
		return reports.Invalidate(ctx)
	})
	store := storeobs.New(
		storeapp.NewService(
			storepostgres.NewRepository(db),
			storeapp.WithStockPolicy(cfg.StockPolicy),
			storeapp.WithPlacementListener(invalidateReports),
			storeapp.WithLogger(logger),
		),
		storeobs.WithLogger(logger),
		storeobs.WithTracer(instruments.Tracer("internal.store.application")),
		storeobs.WithMeter(instruments.Meter("internal.store.application")),
	)

	catalog := catalogobs.New(
		catalogapp.NewService(catalogpostgres.NewRepository(db)),
		catalogobs.WithLogger(logger),
		catalogobs.WithTracer(instruments.Tracer("internal.catalog.application")),
		catalogobs.WithMeter(instruments.Meter("internal.catalog.application")),
	)
	clients := clientobs.New(
		clientapp.NewService(clientpostgres.NewRepository(db)),
		clientobs.WithLogger(logger),
		clientobs.WithTracer(instruments.Tracer("internal.clients.application")),
		clientobs.WithMeter(instruments.Meter("internal.clients.application")),
	)

	return &Container{
		DB:      db,
		Catalog: catalog,
		Clients: clients,
		Store:   store,
		Reports: reports,
	}, closeCache
}
