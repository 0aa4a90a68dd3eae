package postgres

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/Apurer/go-gin-shop-api/internal/domains/reports/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/reports/ports"
	"github.com/Apurer/go-gin-shop-api/internal/platform/database"
)

var _ ports.Repository = (*Repository)(nil)

// Repository runs report aggregates through GORM. Caller manages DB lifecycle.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a GORM-backed report repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Snapshot runs fn in one read-only transaction. On Postgres the transaction
// is REPEATABLE READ so all aggregates see the same commits; SQLite serializes
// on its single connection.
func (r *Repository) Snapshot(ctx context.Context, fn func(ctx context.Context, q ports.Queries) error) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	var opts []*sql.TxOptions
	if database.Dialect(r.db) == database.DialectPostgres {
		opts = append(opts, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &Repository{db: tx})
	}, opts...)
	if err != nil {
		return database.Classify(err)
	}
	return nil
}

type totalRow struct {
	Label  string `gorm:"column:label"`
	Amount int64  `gorm:"column:amount"`
}

// TotalsByManufacturer sums prices of products no longer in stock, grouped by manufacturer.
// Equal totals are ordered by manufacturer name.
func (r *Repository) TotalsByManufacturer(ctx context.Context) ([]domain.Total, error) {
	return r.soldTotals(ctx, "shop_manufacturer", "p.manufacturer_id")
}

// TotalsByCategory sums prices of products no longer in stock, grouped by category.
func (r *Repository) TotalsByCategory(ctx context.Context) ([]domain.Total, error) {
	return r.soldTotals(ctx, "shop_category", "p.category_id")
}

func (r *Repository) soldTotals(ctx context.Context, ownerTable, ownerColumn string) ([]domain.Total, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var rows []totalRow
	err := r.db.WithContext(ctx).
		Table("shop_product AS p").
		Select("g.name AS label, CAST(SUM(p.price) AS BIGINT) AS amount").
		Joins("JOIN "+ownerTable+" AS g ON g.id = "+ownerColumn).
		Where("p.in_stock = ?", false).
		Group("g.id, g.name").
		Order("amount DESC").
		Order("g.name").
		Order("g.id").
		Scan(&rows).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	return toTotals(rows), nil
}

// TotalsByMonth sums every order total per UTC calendar month, most recent month first.
func (r *Repository) TotalsByMonth(ctx context.Context) ([]domain.Total, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	bucket := database.MonthBucket(r.db, "o.date_and_time")
	var rows []totalRow
	err := r.db.WithContext(ctx).
		Table("shop_order AS o").
		Select(bucket + " AS label, CAST(SUM(o.total_price) AS BIGINT) AS amount").
		Group(bucket).
		Order("label DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	return toTotals(rows), nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("report repository not configured")
	}
	return nil
}

func toTotals(rows []totalRow) []domain.Total {
	totals := make([]domain.Total, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, domain.Total{Label: row.Label, Amount: row.Amount})
	}
	return totals
}
