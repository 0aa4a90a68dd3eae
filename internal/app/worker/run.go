// Package worker hosts the Temporal worker that executes order placement workflows.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/go-gin-shop-api/internal/app/config"
	"github.com/Apurer/go-gin-shop-api/internal/app/container"
	storeports "github.com/Apurer/go-gin-shop-api/internal/domains/store/ports"
	platformobservability "github.com/Apurer/go-gin-shop-api/internal/platform/observability"
	platformtemporal "github.com/Apurer/go-gin-shop-api/internal/platform/temporal"
	orderactivities "github.com/Apurer/go-gin-shop-api/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/Apurer/go-gin-shop-api/internal/platform/temporal/workflows/orders"
)

const serviceName = "shop-worker"

// Run connects to Temporal and processes order placements until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
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

	temporalClient, err := platformtemporal.Dial(cfg, instruments, "temporal-worker")
	if err != nil {
		return fmt.Errorf("failed to create Temporal client: %w", err)
	}
	defer temporalClient.Close()

	w := New(temporalClient, services.Store)
	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.OrderPlacementTaskQueue), slog.String("namespace", cfg.TemporalNamespace))
	if err := w.Run(interruptOn(ctx)); err != nil {
		return fmt.Errorf("temporal worker exited: %w", err)
	}
	logger.Info("Temporal worker stopped")
	return nil
}

// New registers the order placement workflow and its activity on a worker for the placement task queue.
func New(c client.Client, service storeports.Service) worker.Worker {
	w := worker.New(c, orderworkflows.OrderPlacementTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.OrderPlacementWorkflow, workflow.RegisterOptions{Name: orderworkflows.OrderPlacementWorkflowName})
	w.RegisterActivityWithOptions(orderactivities.NewActivities(service).PlaceOrder, activity.RegisterOptions{Name: orderactivities.PlaceOrderActivityName})
	return w
}

func interruptOn(ctx context.Context) <-chan interface{} {
	ch := make(chan interface{}, 1)
	go func() {
		<-ctx.Done()
		ch <- struct{}{}
	}()
	return ch
}
