package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Apurer/go-gin-shop-api/internal/app/config"
	"github.com/Apurer/go-gin-shop-api/internal/app/container"
	storeworkflows "github.com/Apurer/go-gin-shop-api/internal/domains/store/adapters/workflows"
	shopmcp "github.com/Apurer/go-gin-shop-api/internal/mcp"
	platformobservability "github.com/Apurer/go-gin-shop-api/internal/platform/observability"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	// stdout carries the MCP protocol
	instruments, shutdown, err := platformobservability.Init(ctx, shopmcp.ServerName, platformobservability.WithLogWriter(os.Stderr))
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdown(shutdownCtx)
	}()

	services, cleanup, err := container.Build(ctx, cfg, instruments)
	if err != nil {
		instruments.Logger.Error("failed to build services", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	server := shopmcp.NewServer(services.Catalog, storeworkflows.NewInlineOrderWorkflows(services.Store), services.Reports)
	if err := server.Serve(ctx); err != nil {
		instruments.Logger.Error("MCP server exited", slog.String("error", err.Error()))
	}
}
