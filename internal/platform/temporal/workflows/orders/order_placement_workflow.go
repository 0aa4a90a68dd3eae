package orders

import (
	"go.temporal.io/sdk/workflow"

	storedomain "github.com/Apurer/go-gin-shop-api/internal/domains/store/domain"
	"github.com/Apurer/go-gin-shop-api/internal/platform/temporal/sequences"
)

const (
	// OrderPlacementWorkflowName is the public identifier for registering the workflow.
	OrderPlacementWorkflowName = "shop.workflows.OrderPlacement"
	// OrderPlacementTaskQueue is the queue consumed by the worker processing order workflows.
	OrderPlacementTaskQueue = "ORDER_PLACEMENT"
)

// OrderPlacementWorkflowInput captures the placement request.
type OrderPlacementWorkflowInput struct {
	Placement storedomain.Placement
	TraceID   string
}

// OrderPlacementWorkflow places an order through the placement activity.
func OrderPlacementWorkflow(ctx workflow.Context, input OrderPlacementWorkflowInput) (*storedomain.Order, error) {
	logger := workflow.GetLogger(ctx)
	clientID := input.Placement.ClientID
	logger.Info("OrderPlacementWorkflow started", withTraceID(input.TraceID, "clientId", clientID)...)
	order, err := sequences.RunOrderPlacementSequence(ctx, input.Placement)
	if err != nil {
		logger.Error("OrderPlacementWorkflow failed", withTraceID(input.TraceID, "clientId", clientID, "error", err)...)
		return nil, err
	}
	logger.Info("OrderPlacementWorkflow completed", withTraceID(input.TraceID, "orderId", order.ID)...)
	return order, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
