package workflows

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/Apurer/go-gin-shop-api/internal/domains/store/application"
	"github.com/Apurer/go-gin-shop-api/internal/domains/store/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/store/ports"
	orderactivities "github.com/Apurer/go-gin-shop-api/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/Apurer/go-gin-shop-api/internal/platform/temporal/workflows/orders"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalOrderWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlineOrderWorkflows)(nil)
)

// TemporalOrderWorkflows starts order placement workflows on a Temporal cluster.
type TemporalOrderWorkflows struct {
	client    client.Client
	taskQueue string
	secret    []byte
}

// NewTemporalOrderWorkflows wires a Temporal client into the orchestrator.
// secret keys the hash that turns an idempotency key into a workflow id.
func NewTemporalOrderWorkflows(c client.Client, secret string) *TemporalOrderWorkflows {
	return &TemporalOrderWorkflows{client: c, taskQueue: orderworkflows.OrderPlacementTaskQueue, secret: []byte(secret)}
}

// PlaceOrder runs the placement workflow and waits for its result.
// Retrying with the same idempotency key and payload joins the first run.
// The same key with another payload starts its own run, where the order
// service rejects it with ports.ErrIdempotencyConflict.
func (o *TemporalOrderWorkflows) PlaceOrder(ctx context.Context, placement domain.Placement) (*domain.Order, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal order workflows not configured")
	}
	key := strings.TrimSpace(placement.IdempotencyKey)
	var fingerprint string
	if key != "" {
		var err error
		if fingerprint, err = application.FingerprintPlacement(placement); err != nil {
			return nil, err
		}
	}
	workflowID := o.workflowID(key, fingerprint)
	options := client.StartWorkflowOptions{
		ID:                                       workflowID,
		TaskQueue:                                o.taskQueue,
		WorkflowExecutionErrorWhenAlreadyStarted: true,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		orderworkflows.OrderPlacementWorkflow,
		orderworkflows.OrderPlacementWorkflowInput{Placement: placement, TraceID: workflowTraceID(ctx)},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) && key != "" {
			run = o.client.GetWorkflow(ctx, workflowID, alreadyStarted.RunId)
		} else {
			return nil, err
		}
	}
	var order domain.Order
	if err := run.Get(ctx, &order); err != nil {
		return nil, orderactivities.DecodeError(err)
	}
	return &order, nil
}

// workflowID derives a stable id from the idempotency key and the payload
// fingerprint, so only identical retries share a run.
func (o *TemporalOrderWorkflows) workflowID(key, fingerprint string) string {
	if key == "" {
		return fmt.Sprintf("order-placement-%s", uuid.NewString())
	}
	return fmt.Sprintf("order-placement-idem-%s", hashIdempotencyKey(o.secret, key, fingerprint))
}

// InlineOrderWorkflows executes the service directly without Temporal, useful for tests or dev fallbacks.
type InlineOrderWorkflows struct {
	service ports.Service
}

// NewInlineOrderWorkflows wraps the order service for synchronous execution.
func NewInlineOrderWorkflows(service ports.Service) *InlineOrderWorkflows {
	return &InlineOrderWorkflows{service: service}
}

// PlaceOrder delegates to the application service without durable orchestration.
func (o *InlineOrderWorkflows) PlaceOrder(ctx context.Context, placement domain.Placement) (*domain.Order, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline order workflows not configured")
	}
	return o.service.PlaceOrder(ctx, placement)
}

func hashIdempotencyKey(secret []byte, key, fingerprint string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(key))
	mac.Write([]byte{0})
	mac.Write([]byte(fingerprint))
	// first 16 hex chars keep workflow ids readable
	return hex.EncodeToString(mac.Sum(nil)[:8])
}

func workflowTraceID(ctx context.Context) string {
	spanCtx := oteltrace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
