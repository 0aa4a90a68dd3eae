package mapper

import (
	"time"

	catalogmapper "github.com/Apurer/go-gin-shop-api/internal/domains/catalog/adapters/http/mapper"
	storedomain "github.com/Apurer/go-gin-shop-api/internal/domains/store/domain"
)

// OrderRequest is accepted as JSON or form data. A form posts product_ids once per selected product.
type OrderRequest struct {
	ClientID   int64   `json:"client_id" form:"client_id" binding:"required,gt=0"`
	ProductIDs []int64 `json:"product_ids" form:"product_ids" binding:"required,min=1,dive,gt=0"`
}

// OrderedProduct is the transport view of a product line in an order.
type OrderedProduct struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	PriceDisplay string `json:"price_display"`
}

// Order is the transport view of an order.
type Order struct {
	ID           int64            `json:"id"`
	DateAndTime  time.Time        `json:"date_and_time"`
	ClientID     int64            `json:"client_id"`
	Client       string           `json:"client,omitempty"`
	TotalPrice   int64            `json:"total_price"`
	PriceDisplay string           `json:"price_display"`
	Products     []OrderedProduct `json:"products"`
}

// ToDomainPlacement converts a request into a placement. key is the optional Idempotency-Key header.
func ToDomainPlacement(req OrderRequest, key string) storedomain.Placement {
	return storedomain.Placement{
		ClientID:       req.ClientID,
		ProductIDs:     append([]int64(nil), req.ProductIDs...),
		IdempotencyKey: key,
	}
}

func FromDomainOrder(order *storedomain.Order) Order {
	if order == nil {
		return Order{}
	}
	products := make([]OrderedProduct, 0, len(order.Products))
	for _, p := range order.Products {
		products = append(products, OrderedProduct{
			ID:           p.ID,
			Name:         p.Name,
			Price:        p.Price,
			PriceDisplay: catalogmapper.FormatPrice(p.Price),
		})
	}
	return Order{
		ID:           order.ID,
		DateAndTime:  order.PlacedAt,
		ClientID:     order.ClientID,
		Client:       order.ClientName,
		TotalPrice:   order.TotalPrice,
		PriceDisplay: catalogmapper.FormatPrice(order.TotalPrice),
		Products:     products,
	}
}

func FromDomainOrders(list []*storedomain.Order) []Order {
	out := make([]Order, 0, len(list))
	for _, o := range list {
		out = append(out, FromDomainOrder(o))
	}
	return out
}
