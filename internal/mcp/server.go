// Package mcp exposes shop operations as Model Context Protocol tools over stdio.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	catalogports "github.com/Apurer/go-gin-shop-api/internal/domains/catalog/ports"
	reportports "github.com/Apurer/go-gin-shop-api/internal/domains/reports/ports"
	storeports "github.com/Apurer/go-gin-shop-api/internal/domains/store/ports"
)

const (
	// ServerName is the MCP server name
	ServerName = "shop-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with the shop services its tools call.
type Server struct {
	mcp     *server.MCPServer
	catalog catalogports.Service
	orders  storeports.WorkflowOrchestrator
	reports reportports.Service
}

// NewServer registers the shop tools. orders places orders inline or through Temporal.
func NewServer(catalog catalogports.Service, orders storeports.WorkflowOrchestrator, reports reportports.Service) *Server {
	s := &Server{
		mcp:     server.NewMCPServer(ServerName, ServerVersion, server.WithToolCapabilities(false)),
		catalog: catalog,
		orders:  orders,
		reports: reports,
	}
	s.mcp.AddTool(salesReportTool(), s.handleSalesReport)
	s.mcp.AddTool(listStockTool(), s.handleListStock)
	s.mcp.AddTool(placeOrderTool(), s.handlePlaceOrder)
	return s
}

// Serve runs the server on stdio and blocks until stdin closes.
func (s *Server) Serve(_ context.Context) error {
	return server.ServeStdio(s.mcp)
}
