package container

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-shop-api/internal/app/config"
	catalogdomain "github.com/Apurer/go-gin-shop-api/internal/domains/catalog/domain"
	clientdomain "github.com/Apurer/go-gin-shop-api/internal/domains/clients/domain"
	storedomain "github.com/Apurer/go-gin-shop-api/internal/domains/store/domain"
	"github.com/Apurer/go-gin-shop-api/internal/platform/database/dbtest"
	platformobservability "github.com/Apurer/go-gin-shop-api/internal/platform/observability"
)

func testInstruments() *platformobservability.Instruments {
	return &platformobservability.Instruments{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestNew_PlacementRefreshesCachedReports(t *testing.T) {
	ctx := context.Background()
	redisServer := miniredis.RunT(t)
	cfg := config.Config{
		RedisURL:       "redis://" + redisServer.Addr(),
		ReportCacheTTL: time.Hour,
		StockPolicy:    storedomain.StockPolicyLenient,
	}
	c, cleanup := New(ctx, dbtest.Open(t), cfg, testInstruments())
	t.Cleanup(cleanup)

	country, err := c.Catalog.CreateCountry(ctx, &catalogdomain.Country{Name: "Japan"})
	require.NoError(t, err)
	maker, err := c.Catalog.CreateManufacturer(ctx, &catalogdomain.Manufacturer{Name: "Acme", CountryID: country.ID})
	require.NoError(t, err)
	category, err := c.Catalog.CreateCategory(ctx, &catalogdomain.Category{Name: "Widgets"})
	require.NoError(t, err)
	product, err := c.Catalog.CreateProduct(ctx, &catalogdomain.Product{Name: "Gizmo", ManufacturerID: maker.ID, CategoryID: category.ID, Price: 500})
	require.NoError(t, err)
	client, err := c.Clients.CreateClient(ctx, &clientdomain.Client{FirstName: "Jane", LastName: "Doe", PhoneNumber: "555-0100", Email: "jane@example.com"})
	require.NoError(t, err)

	before, err := c.Reports.Summary(ctx)
	require.NoError(t, err)
	assert.Empty(t, before.ByManufacturer)
	assert.True(t, redisServer.Exists("shop:reports:summary"))

	_, err = c.Store.PlaceOrder(ctx, storedomain.Placement{ClientID: client.ID, ProductIDs: []int64{product.ID}})
	require.NoError(t, err)
	assert.False(t, redisServer.Exists("shop:reports:summary"))
	generation, err := redisServer.Get("shop:reports:generation")
	require.NoError(t, err)
	assert.Equal(t, "1", generation)

	after, err := c.Reports.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, after.ByManufacturer, 1)
	assert.Equal(t, "Acme", after.ByManufacturer[0].Label)
	assert.EqualValues(t, 500, after.ByManufacturer[0].Amount)
	assert.NoError(t, c.Ping(ctx))
}

func TestNew_UnreachableRedisFallsBackToStore(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{RedisURL: "redis://127.0.0.1:1", ReportCacheTTL: time.Minute}
	c, cleanup := New(ctx, dbtest.Open(t), cfg, testInstruments())
	t.Cleanup(cleanup)

	summary, err := c.Reports.Summary(ctx)
	require.NoError(t, err)
	assert.Empty(t, summary.ByMonth)
}

func TestBuild_OpensSQLiteStore(t *testing.T) {
	cfg := config.Config{SQLitePath: t.TempDir() + "/shop.db"}
	c, cleanup, err := Build(context.Background(), cfg, testInstruments())
	require.NoError(t, err)
	t.Cleanup(cleanup)

	countries, err := c.Catalog.ListCountries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, countries)
}
