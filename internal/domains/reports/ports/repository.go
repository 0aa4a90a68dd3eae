package ports

import (
	"context"

	"github.com/Apurer/go-gin-shop-api/internal/domains/reports/domain"
)

// Queries are the aggregate queries behind the sales reports.
type Queries interface {
	// TotalsByManufacturer sums prices of sold products per manufacturer, highest first.
	TotalsByManufacturer(ctx context.Context) ([]domain.Total, error)
	// TotalsByCategory sums prices of sold products per category, highest first.
	TotalsByCategory(ctx context.Context) ([]domain.Total, error)
	// TotalsByMonth sums order totals per UTC calendar month, most recent first.
	TotalsByMonth(ctx context.Context) ([]domain.Total, error)
}

// Repository runs report queries, alone or against one consistent snapshot.
type Repository interface {
	Queries
	// Snapshot runs fn inside a read-only transaction so every query in fn
	// observes the same committed state.
	Snapshot(ctx context.Context, fn func(ctx context.Context, q Queries) error) error
}

// Cache stores the last computed summary, scoped to a generation.
// Invalidate moves the cache to a new generation; a Set carrying an older
// generation than the current one is dropped.
type Cache interface {
	// Get returns the cached summary (nil on a miss) and the current generation.
	Get(ctx context.Context) (*domain.Summary, int64, error)
	// Set stores summary if generation is still current.
	Set(ctx context.Context, generation int64, summary *domain.Summary) error
	Invalidate(ctx context.Context) error
}
