package ports

import (
	"context"
	"errors"
	"time"

	"github.com/Apurer/go-gin-shop-api/internal/domains/store/domain"
)

var (
	ErrNotFound = errors.New("order not found")
	// ErrClientNotFound reports a placement for a client id with no row behind it.
	ErrClientNotFound = errors.New("client does not exist")
	// ErrOutOfStock reports a strict placement that found a product already sold.
	ErrOutOfStock = errors.New("product is no longer in stock")
	// ErrIdempotencyConflict indicates the same key was used with a different order request.
	ErrIdempotencyConflict = errors.New("idempotency key reused for a different order")
	// ErrIdempotencyKeyClaimed is returned by Tx.SaveIdempotencyKey when another placement owns the key.
	ErrIdempotencyKeyClaimed = errors.New("idempotency key already claimed")
)

// IdempotencyRecord ties a caller-supplied key to the order it produced.
type IdempotencyRecord struct {
	Key         string
	RequestHash string
	OrderID     int64
	CreatedAt   time.Time
}

// Repository persists orders. Placement runs through WithinTransaction.
type Repository interface {
	// WithinTransaction runs fn in one store transaction. Returning an error rolls back every write made through tx.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	// List returns orders newest first.
	List(ctx context.Context) ([]*domain.Order, error)
	// FindIdempotencyKey returns the stored record for key, or nil when unknown.
	FindIdempotencyKey(ctx context.Context, key string) (*IdempotencyRecord, error)
}

// Tx is the set of writes and reads available inside a placement transaction.
type Tx interface {
	ClientExists(ctx context.Context, clientID int64) (bool, error)
	// FindProducts resolves ids to products. Unknown ids are absent from the result.
	FindProducts(ctx context.Context, ids []int64) ([]domain.OrderedProduct, error)
	// InsertOrder stores the order and one association row per product, assigning order.ID.
	InsertOrder(ctx context.Context, order *domain.Order) error
	// MarkOutOfStock clears in_stock for ids and returns the number of rows changed.
	// With onlyInStock set, rows already sold are left untouched and not counted.
	MarkOutOfStock(ctx context.Context, ids []int64, onlyInStock bool) (int64, error)
	SaveIdempotencyKey(ctx context.Context, record IdempotencyRecord) error
}
