package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	catalogmapper "github.com/Apurer/go-gin-shop-api/internal/domains/catalog/adapters/http/mapper"
	catalogports "github.com/Apurer/go-gin-shop-api/internal/domains/catalog/ports"
	reportmapper "github.com/Apurer/go-gin-shop-api/internal/domains/reports/adapters/http/mapper"
	storemapper "github.com/Apurer/go-gin-shop-api/internal/domains/store/adapters/http/mapper"
	storeapp "github.com/Apurer/go-gin-shop-api/internal/domains/store/application"
	storedomain "github.com/Apurer/go-gin-shop-api/internal/domains/store/domain"
	storeports "github.com/Apurer/go-gin-shop-api/internal/domains/store/ports"
)

var errInvalidArguments = errors.New("invalid arguments")

func salesReportTool() mcp.Tool {
	return mcp.Tool{
		Name:        "sales_report",
		Description: "Totals of sold products by manufacturer and by category, and order totals by month (YYYY-MM), largest first. Amounts are in cents.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

func listStockTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_stock",
		Description: "Products that are still in stock, newest first",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

func placeOrderTool() mcp.Tool {
	return mcp.Tool{
		Name:        "place_order",
		Description: "Place an order for a client. Unknown product ids are ignored and every ordered product is marked sold.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"client_id": map[string]interface{}{
					"type":        "integer",
					"description": "Id of the ordering client",
					"minimum":     1,
				},
				"product_ids": map[string]interface{}{
					"type":        "array",
					"description": "Ids of the products to order",
					"minItems":    1,
					"items": map[string]interface{}{
						"type":    "integer",
						"minimum": 1,
					},
				},
				"idempotency_key": map[string]interface{}{
					"type":        "string",
					"description": "Optional key; retrying with the same key returns the first order",
				},
			},
			Required: []string{"client_id", "product_ids"},
		},
	}
}

func (s *Server) handleSalesReport(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summary, err := s.reports.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build sales report: %w", err)
	}
	return jsonResult(reportmapper.FromDomainSummary(summary))
}

func (s *Server) handleListStock(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	products, err := s.catalog.ListProducts(ctx, catalogports.ProductFilter{InStockOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list stock: %w", err)
	}
	return jsonResult(catalogmapper.FromDomainProducts(products))
}

func (s *Server) handlePlaceOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	placement, err := placementFromArguments(request.Params.Arguments)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	order, err := s.orders.PlaceOrder(ctx, placement)
	switch {
	case err == nil:
		return jsonResult(storemapper.FromDomainOrder(order))
	case errors.Is(err, storeapp.ErrInvalidInput),
		errors.Is(err, storeports.ErrClientNotFound),
		errors.Is(err, storeports.ErrOutOfStock),
		errors.Is(err, storeports.ErrIdempotencyConflict):
		// rejected placements are reported to the caller rather than as protocol errors
		return mcp.NewToolResultError(err.Error()), nil
	default:
		return nil, fmt.Errorf("failed to place order: %w", err)
	}
}

func placementFromArguments(raw any) (storedomain.Placement, error) {
	args, ok := raw.(map[string]interface{})
	if !ok {
		return storedomain.Placement{}, errInvalidArguments
	}
	clientID, ok := toID(args["client_id"])
	if !ok {
		return storedomain.Placement{}, fmt.Errorf("%w: client_id must be a positive integer", errInvalidArguments)
	}
	rawIDs, ok := args["product_ids"].([]interface{})
	if !ok || len(rawIDs) == 0 {
		return storedomain.Placement{}, fmt.Errorf("%w: product_ids must be a non-empty array", errInvalidArguments)
	}
	productIDs := make([]int64, 0, len(rawIDs))
	for _, v := range rawIDs {
		id, ok := toID(v)
		if !ok {
			return storedomain.Placement{}, fmt.Errorf("%w: product_ids must hold positive integers", errInvalidArguments)
		}
		productIDs = append(productIDs, id)
	}
	key, _ := args["idempotency_key"].(string)
	return storedomain.Placement{ClientID: clientID, ProductIDs: productIDs, IdempotencyKey: key}, nil
}

// toID accepts JSON numbers, which decode as float64, holding a positive whole value.
func toID(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if n < 1 || n != math.Trunc(n) || n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case int64:
		return n, n > 0
	case int:
		return int64(n), n > 0
	}
	return 0, false
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}
