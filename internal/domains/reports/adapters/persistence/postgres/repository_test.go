package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Apurer/go-gin-shop-api/internal/domains/reports/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/reports/ports"
	"github.com/Apurer/go-gin-shop-api/internal/platform/database/dbtest"
)

func seed(t *testing.T, db *gorm.DB, stmts ...string) {
	t.Helper()
	for _, stmt := range stmts {
		require.NoError(t, db.Exec(stmt).Error, stmt)
	}
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	seed(t, db,
		"INSERT INTO shop_country (id, name) VALUES (1, 'Japan')",
		"INSERT INTO shop_manufacturer (id, name, country_id) VALUES (1, 'Acme', 1), (2, 'Globex', 1), (3, 'Initech', 1)",
		"INSERT INTO shop_category (id, name) VALUES (1, 'Widgets'), (2, 'Gadgets')",
		"INSERT INTO shop_client (id, first_name, last_name, phone_number, email) VALUES (1, 'Jane', 'Doe', '555-0100', 'jane@example.com')",
	)
}

func insertProduct(t *testing.T, db *gorm.DB, id, manufacturer, category, price int64, inStock bool) {
	t.Helper()
	require.NoError(t, db.Exec(
		"INSERT INTO shop_product (id, name, manufacturer_id, category_id, price, in_stock) VALUES (?, ?, ?, ?, ?, ?)",
		id, "product", manufacturer, category, price, inStock,
	).Error)
}

func insertOrder(t *testing.T, db *gorm.DB, placedAt time.Time, total int64) {
	t.Helper()
	require.NoError(t, db.Table("shop_order").Create(map[string]any{
		"date_and_time": placedAt.UTC(),
		"client_id":     1,
		"total_price":   total,
	}).Error)
}

func TestRepository_SoldTotalsOnlyCountSoldProducts(t *testing.T) {
	db := dbtest.Open(t)
	seedCatalog(t, db)
	insertProduct(t, db, 1, 1, 1, 500, false)
	insertProduct(t, db, 2, 1, 2, 250, false)
	insertProduct(t, db, 3, 2, 2, 900, false)
	insertProduct(t, db, 4, 3, 1, 10000, true)

	repo := NewRepository(db)
	ctx := context.Background()

	byManufacturer, err := repo.TotalsByManufacturer(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Total{{Label: "Globex", Amount: 900}, {Label: "Acme", Amount: 750}}, byManufacturer)

	byCategory, err := repo.TotalsByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Total{{Label: "Gadgets", Amount: 1150}, {Label: "Widgets", Amount: 500}}, byCategory)
}

func TestRepository_SoldTotalsBreakTiesByName(t *testing.T) {
	db := dbtest.Open(t)
	seedCatalog(t, db)
	insertProduct(t, db, 1, 3, 1, 400, false)
	insertProduct(t, db, 2, 2, 1, 400, false)
	insertProduct(t, db, 3, 1, 1, 400, false)

	byManufacturer, err := NewRepository(db).TotalsByManufacturer(context.Background())
	require.NoError(t, err)
	require.Len(t, byManufacturer, 3)
	assert.Equal(t, []string{"Acme", "Globex", "Initech"},
		[]string{byManufacturer[0].Label, byManufacturer[1].Label, byManufacturer[2].Label})
}

func TestRepository_EmptyStore(t *testing.T) {
	repo := NewRepository(dbtest.Open(t))
	ctx := context.Background()

	for _, fn := range []func(context.Context) ([]domain.Total, error){repo.TotalsByManufacturer, repo.TotalsByCategory, repo.TotalsByMonth} {
		totals, err := fn(ctx)
		require.NoError(t, err)
		assert.NotNil(t, totals)
		assert.Empty(t, totals)
	}
}

func TestRepository_TotalsByMonth(t *testing.T) {
	db := dbtest.Open(t)
	seedCatalog(t, db)
	jan := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC)
	insertOrder(t, db, jan, 500)
	insertOrder(t, db, jan.Add(24*time.Hour), 300)
	insertOrder(t, db, mar, 1200)
	insertOrder(t, db, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), 0)

	totals, err := NewRepository(db).TotalsByMonth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Total{
		{Label: domain.MonthLabel(mar), Amount: 1200},
		{Label: domain.MonthLabel(jan), Amount: 800},
		{Label: "2023-12", Amount: 0},
	}, totals)
}

func TestRepository_SnapshotRunsAllAggregates(t *testing.T) {
	db := dbtest.Open(t)
	seedCatalog(t, db)
	insertProduct(t, db, 1, 1, 1, 500, false)
	placedAt := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	insertOrder(t, db, placedAt, 500)

	var byManufacturer, byCategory, byMonth []domain.Total
	err := NewRepository(db).Snapshot(context.Background(), func(ctx context.Context, q ports.Queries) error {
		var err error
		if byManufacturer, err = q.TotalsByManufacturer(ctx); err != nil {
			return err
		}
		if byCategory, err = q.TotalsByCategory(ctx); err != nil {
			return err
		}
		byMonth, err = q.TotalsByMonth(ctx)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.Total{{Label: "Acme", Amount: 500}}, byManufacturer)
	assert.Equal(t, []domain.Total{{Label: "Widgets", Amount: 500}}, byCategory)
	assert.Equal(t, []domain.Total{{Label: "2024-03", Amount: 500}}, byMonth)
}

func TestRepository_SnapshotReturnsCallbackError(t *testing.T) {
	boom := errors.New("boom")
	err := NewRepository(dbtest.Open(t)).Snapshot(context.Background(), func(context.Context, ports.Queries) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
}

func TestRepository_Unconfigured(t *testing.T) {
	var repo *Repository
	_, err := repo.TotalsByMonth(context.Background())
	require.Error(t, err)
	require.Error(t, repo.Snapshot(context.Background(), func(context.Context, ports.Queries) error { return nil }))
}
