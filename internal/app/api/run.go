package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/sync/errgroup"

	shopserver "github.com/Apurer/go-gin-shop-api/go"
	"github.com/Apurer/go-gin-shop-api/internal/app/config"
	"github.com/Apurer/go-gin-shop-api/internal/app/container"
	storeworkflows "github.com/Apurer/go-gin-shop-api/internal/domains/store/adapters/workflows"
	storeports "github.com/Apurer/go-gin-shop-api/internal/domains/store/ports"
	platformobservability "github.com/Apurer/go-gin-shop-api/internal/platform/observability"
	platformtemporal "github.com/Apurer/go-gin-shop-api/internal/platform/temporal"
)

const (
	serviceName     = "shop-api"
	shutdownTimeout = 10 * time.Second
)

// Run boots the shop HTTP API and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	opts := []platformobservability.Option{}
	if cfg.Debug {
		opts = append(opts, platformobservability.WithLogLevel(slog.LevelDebug))
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName, opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	services, cleanup, err := container.Build(ctx, cfg, instruments)
	if err != nil {
		return err
	}
	defer cleanup()

	var orderWorkflows storeports.WorkflowOrchestrator = storeworkflows.NewInlineOrderWorkflows(services.Store)
	if temporalClient, err := platformtemporal.Dial(cfg, instruments, "temporal-client"); err != nil {
		logger.Warn("Temporal workflows unavailable, placing orders inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		orderWorkflows = storeworkflows.NewTemporalOrderWorkflows(temporalClient, cfg.SecretKey)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), otelgin.Middleware(serviceName))
	shopserver.NewRouterWithGinEngine(router, Handlers(services, orderWorkflows))

	return serve(ctx, logger, &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	})
}

// Handlers maps the container's services onto the HTTP handler groups.
func Handlers(services *container.Container, workflows storeports.WorkflowOrchestrator) shopserver.ApiHandleFunctions {
	return shopserver.ApiHandleFunctions{
		CatalogAPI: shopserver.NewCatalogAPI(services.Catalog),
		ClientAPI:  shopserver.NewClientAPI(services.Clients),
		StoreAPI:   shopserver.NewStoreAPI(services.Store, workflows),
		ReportAPI:  shopserver.NewReportAPI(services.Reports),
		HealthAPI:  shopserver.NewHealthAPI(services.Ping),
	}
}

func serve(ctx context.Context, logger *slog.Logger, srv *http.Server) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("shop API listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		logger.Error("shop API server exited", slog.String("addr", srv.Addr), slog.String("error", err.Error()))
		return err
	}
	logger.Info("shop API stopped")
	return nil
}
