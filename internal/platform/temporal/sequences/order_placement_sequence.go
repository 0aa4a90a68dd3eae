package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	storedomain "github.com/Apurer/go-gin-shop-api/internal/domains/store/domain"
	orderactivities "github.com/Apurer/go-gin-shop-api/internal/platform/temporal/activities/orders"
)

// RunOrderPlacementSequence executes the placement activity exactly once.
// A failed placement has already rolled back, so it is reported instead of retried.
func RunOrderPlacementSequence(ctx workflow.Context, placement storedomain.Placement) (*storedomain.Order, error) {
	logger := workflow.GetLogger(ctx)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}

	var order storedomain.Order
	err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, options), orderactivities.PlaceOrderActivityName, placement).Get(ctx, &order)
	if err != nil {
		logger.Error("order placement sequence failed", "clientId", placement.ClientID, "error", err)
		return nil, err
	}
	logger.Info("order placement sequence completed", "orderId", order.ID)
	return &order, nil
}
