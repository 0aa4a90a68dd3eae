package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-shop-api/internal/app/config"
	"github.com/Apurer/go-gin-shop-api/internal/app/container"
	catalogdomain "github.com/Apurer/go-gin-shop-api/internal/domains/catalog/domain"
	clientdomain "github.com/Apurer/go-gin-shop-api/internal/domains/clients/domain"
	storeworkflows "github.com/Apurer/go-gin-shop-api/internal/domains/store/adapters/workflows"
	"github.com/Apurer/go-gin-shop-api/internal/platform/database/dbtest"
	platformobservability "github.com/Apurer/go-gin-shop-api/internal/platform/observability"
)

type fixture struct {
	server   *Server
	clientID int64
	gizmoID  int64
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	instruments := &platformobservability.Instruments{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	services, cleanup := container.New(ctx, dbtest.Open(t), config.Config{}, instruments)
	t.Cleanup(cleanup)

	country, err := services.Catalog.CreateCountry(ctx, &catalogdomain.Country{Name: "Japan"})
	require.NoError(t, err)
	maker, err := services.Catalog.CreateManufacturer(ctx, &catalogdomain.Manufacturer{Name: "Acme", CountryID: country.ID})
	require.NoError(t, err)
	category, err := services.Catalog.CreateCategory(ctx, &catalogdomain.Category{Name: "Widgets"})
	require.NoError(t, err)
	gizmo, err := services.Catalog.CreateProduct(ctx, &catalogdomain.Product{Name: "Gizmo", ManufacturerID: maker.ID, CategoryID: category.ID, Price: 500})
	require.NoError(t, err)
	client, err := services.Clients.CreateClient(ctx, &clientdomain.Client{FirstName: "Jane", LastName: "Doe", PhoneNumber: "555-0100", Email: "jane@example.com"})
	require.NoError(t, err)

	server := NewServer(services.Catalog, storeworkflows.NewInlineOrderWorkflows(services.Store), services.Reports)
	return fixture{server: server, clientID: client.ID, gizmoID: gizmo.ID}
}

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestPlaceOrderTool(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, err := f.server.handlePlaceOrder(ctx, callRequest("place_order", map[string]interface{}{
		"client_id":   float64(f.clientID),
		"product_ids": []interface{}{float64(f.gizmoID), float64(999)},
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, resultText(t, result))

	var order struct {
		TotalPrice int64 `json:"total_price"`
		Products   []struct {
			ID int64 `json:"id"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &order))
	assert.EqualValues(t, 500, order.TotalPrice)
	assert.Len(t, order.Products, 1)

	stock, err := f.server.handleListStock(ctx, callRequest("list_stock", nil))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", resultText(t, stock))

	report, err := f.server.handleSalesReport(ctx, callRequest("sales_report", nil))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, report), `"label": "Acme"`)
}

func TestPlaceOrderTool_RejectsBadArguments(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{name: "missing client", args: map[string]interface{}{"product_ids": []interface{}{float64(1)}}},
		{name: "fractional client", args: map[string]interface{}{"client_id": 1.5, "product_ids": []interface{}{float64(1)}}},
		{name: "empty products", args: map[string]interface{}{"client_id": float64(f.clientID), "product_ids": []interface{}{}}},
		{name: "negative product", args: map[string]interface{}{"client_id": float64(f.clientID), "product_ids": []interface{}{float64(-2)}}},
		{name: "unknown client", args: map[string]interface{}{"client_id": float64(4242), "product_ids": []interface{}{float64(f.gizmoID)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.server.handlePlaceOrder(context.Background(), callRequest("place_order", tt.args))
			require.NoError(t, err)
			assert.True(t, result.IsError)
		})
	}
}
