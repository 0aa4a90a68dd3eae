package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidClientID    = errors.New("client id must be greater than zero")
	ErrNoProducts         = errors.New("at least one product must be selected")
	ErrInvalidProductID   = errors.New("product ids must be greater than zero")
	ErrInvalidStockPolicy = errors.New("stock policy must be lenient or strict")
)

// OrderedProduct is the snapshot of a product taken when the order was placed.
type OrderedProduct struct {
	ID    int64
	Name  string
	Price int64
}

// Order is a client's purchase of one or more products.
// TotalPrice is fixed at placement and never recomputed from later product prices.
type Order struct {
	ID         int64
	ClientID   int64
	ClientName string
	PlacedAt   time.Time
	TotalPrice int64
	Products   []OrderedProduct
}

// NewOrder builds an order whose total is the sum of the given product prices.
func NewOrder(clientID int64, placedAt time.Time, products []OrderedProduct) *Order {
	order := &Order{
		ClientID: clientID,
		PlacedAt: placedAt,
		Products: append([]OrderedProduct(nil), products...),
	}
	for _, p := range products {
		order.TotalPrice += p.Price
	}
	return order
}

// ProductIDs lists the identifiers of the ordered products.
func (o *Order) ProductIDs() []int64 {
	ids := make([]int64, 0, len(o.Products))
	for _, p := range o.Products {
		ids = append(ids, p.ID)
	}
	return ids
}

// Placement is a request to place an order.
type Placement struct {
	ClientID   int64
	ProductIDs []int64
	// PlacedAt defaults to the time of placement when zero.
	PlacedAt time.Time
	// IdempotencyKey lets a caller retry a placement without creating a second order.
	IdempotencyKey string
}

// Normalize validates the placement, removes duplicate product ids keeping
// first occurrence, and stamps PlacedAt in UTC at microsecond precision.
func (p Placement) Normalize(now func() time.Time) (Placement, error) {
	if p.ClientID <= 0 {
		return Placement{}, ErrInvalidClientID
	}
	if len(p.ProductIDs) == 0 {
		return Placement{}, ErrNoProducts
	}
	seen := make(map[int64]struct{}, len(p.ProductIDs))
	ids := make([]int64, 0, len(p.ProductIDs))
	for _, id := range p.ProductIDs {
		if id <= 0 {
			return Placement{}, fmt.Errorf("%w: got %d", ErrInvalidProductID, id)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	placedAt := p.PlacedAt
	if placedAt.IsZero() {
		if now == nil {
			now = time.Now
		}
		placedAt = now()
	}
	return Placement{
		ClientID:       p.ClientID,
		ProductIDs:     ids,
		PlacedAt:       placedAt.UTC().Truncate(time.Microsecond),
		IdempotencyKey: strings.TrimSpace(p.IdempotencyKey),
	}, nil
}

// StockPolicy decides how placement treats products that are already sold.
type StockPolicy string

const (
	// StockPolicyLenient marks products sold without checking their current state.
	StockPolicyLenient StockPolicy = "lenient"
	// StockPolicyStrict fails the placement when any resolved product is already sold.
	StockPolicyStrict StockPolicy = "strict"
)

// ParseStockPolicy accepts "lenient", "strict" or empty (lenient).
func ParseStockPolicy(value string) (StockPolicy, error) {
	switch StockPolicy(strings.ToLower(strings.TrimSpace(value))) {
	case "", StockPolicyLenient:
		return StockPolicyLenient, nil
	case StockPolicyStrict:
		return StockPolicyStrict, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStockPolicy, value)
	}
}
