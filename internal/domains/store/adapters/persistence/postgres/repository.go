package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Apurer/go-gin-shop-api/internal/domains/store/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/store/ports"
	"github.com/Apurer/go-gin-shop-api/internal/platform/database"
)

var (
	_ ports.Repository = (*Repository)(nil)
	_ ports.Tx         = (*txRepository)(nil)
)

// Repository persists orders through GORM. Caller manages DB lifecycle.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a GORM-backed order repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// orderRecord maps the order aggregate to shop_order.
type orderRecord struct {
	ID          int64     `gorm:"primaryKey;column:id"`
	DateAndTime time.Time `gorm:"column:date_and_time"`
	ClientID    int64     `gorm:"column:client_id"`
	TotalPrice  int64     `gorm:"column:total_price"`
}

func (orderRecord) TableName() string { return "shop_order" }

type orderView struct {
	orderRecord
	ClientFirstName string `gorm:"column:client_first_name"`
	ClientLastName  string `gorm:"column:client_last_name"`
}

type orderProductRecord struct {
	ID        int64 `gorm:"primaryKey;column:id"`
	OrderID   int64 `gorm:"column:order_id"`
	ProductID int64 `gorm:"column:product_id"`
}

func (orderProductRecord) TableName() string { return "shop_order_product" }

type orderedProductRow struct {
	OrderID int64  `gorm:"column:order_id"`
	ID      int64  `gorm:"column:id"`
	Name    string `gorm:"column:name"`
	Price   int64  `gorm:"column:price"`
}

type productRecord struct {
	ID      int64  `gorm:"primaryKey;column:id"`
	Name    string `gorm:"column:name"`
	Price   int64  `gorm:"column:price"`
	InStock bool   `gorm:"column:in_stock"`
}

func (productRecord) TableName() string { return "shop_product" }

type idempotencyRecord struct {
	Key         string    `gorm:"primaryKey;column:idempotency_key"`
	RequestHash string    `gorm:"column:request_hash"`
	OrderID     int64     `gorm:"column:order_id"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (idempotencyRecord) TableName() string { return "shop_order_idempotency" }

// WithinTransaction runs fn inside a single database transaction.
func (r *Repository) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx ports.Tx) error) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).Transaction(func(gtx *gorm.DB) error {
		return fn(ctx, &txRepository{db: gtx})
	})
	return database.Classify(err)
}

// GetByID fetches an order with its products.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var views []orderView
	if err := r.orders(ctx).Where("o.id = ?", id).Limit(1).Scan(&views).Error; err != nil {
		return nil, database.Classify(err)
	}
	if len(views) == 0 {
		return nil, ports.ErrNotFound
	}
	orders, err := r.attachProducts(ctx, views)
	if err != nil {
		return nil, err
	}
	return orders[0], nil
}

// List returns all orders newest first; orders placed at the same instant are ordered by id descending.
func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var views []orderView
	if err := r.orders(ctx).Order("o.date_and_time DESC").Order("o.id DESC").Scan(&views).Error; err != nil {
		return nil, database.Classify(err)
	}
	return r.attachProducts(ctx, views)
}

// FindIdempotencyKey loads a record by key, returning nil when absent.
func (r *Repository) FindIdempotencyKey(ctx context.Context, key string) (*ports.IdempotencyRecord, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record idempotencyRecord
	if err := r.db.WithContext(ctx).First(&record, "idempotency_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, database.Classify(err)
	}
	return &ports.IdempotencyRecord{
		Key:         record.Key,
		RequestHash: record.RequestHash,
		OrderID:     record.OrderID,
		CreatedAt:   record.CreatedAt,
	}, nil
}

func (r *Repository) orders(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("shop_order AS o").
		Select("o.id, o.date_and_time, o.client_id, o.total_price, " +
			"c.first_name AS client_first_name, c.last_name AS client_last_name").
		Joins("JOIN shop_client AS c ON c.id = o.client_id")
}

func (r *Repository) attachProducts(ctx context.Context, views []orderView) ([]*domain.Order, error) {
	orders := make([]*domain.Order, 0, len(views))
	if len(views) == 0 {
		return orders, nil
	}
	ids := make([]int64, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	var rows []orderedProductRow
	err := r.db.WithContext(ctx).
		Table("shop_order_product AS op").
		Select("op.order_id, p.id, p.name, p.price").
		Joins("JOIN shop_product AS p ON p.id = op.product_id").
		Scopes(database.IDIn("op.order_id", ids)).
		Order("op.id").
		Scan(&rows).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	byOrder := make(map[int64][]domain.OrderedProduct, len(views))
	for _, row := range rows {
		byOrder[row.OrderID] = append(byOrder[row.OrderID], domain.OrderedProduct{ID: row.ID, Name: row.Name, Price: row.Price})
	}
	for _, v := range views {
		order := v.toDomain()
		order.Products = byOrder[v.ID]
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("order repository not configured")
	}
	return nil
}

// txRepository performs placement reads and writes on an open transaction.
type txRepository struct {
	db *gorm.DB
}

func (t *txRepository) ClientExists(ctx context.Context, clientID int64) (bool, error) {
	var count int64
	if err := t.db.WithContext(ctx).Table("shop_client").Where("id = ?", clientID).Count(&count).Error; err != nil {
		return false, database.Classify(err)
	}
	return count > 0, nil
}

func (t *txRepository) FindProducts(ctx context.Context, ids []int64) ([]domain.OrderedProduct, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var records []productRecord
	if err := t.db.WithContext(ctx).Scopes(database.IDIn("id", ids)).Order("id").Find(&records).Error; err != nil {
		return nil, database.Classify(err)
	}
	products := make([]domain.OrderedProduct, 0, len(records))
	for _, rec := range records {
		products = append(products, domain.OrderedProduct{ID: rec.ID, Name: rec.Name, Price: rec.Price})
	}
	return products, nil
}

func (t *txRepository) InsertOrder(ctx context.Context, order *domain.Order) error {
	if order == nil {
		return errors.New("order is nil")
	}
	record := orderRecord{
		DateAndTime: order.PlacedAt,
		ClientID:    order.ClientID,
		TotalPrice:  order.TotalPrice,
	}
	if err := t.db.WithContext(ctx).Create(&record).Error; err != nil {
		return translateInsert(err, "client")
	}
	order.ID = record.ID
	if len(order.Products) == 0 {
		return nil
	}
	links := make([]orderProductRecord, 0, len(order.Products))
	for _, p := range order.Products {
		links = append(links, orderProductRecord{OrderID: record.ID, ProductID: p.ID})
	}
	if err := t.db.WithContext(ctx).Create(&links).Error; err != nil {
		return translateInsert(err, "product")
	}
	return nil
}

func (t *txRepository) MarkOutOfStock(ctx context.Context, ids []int64, onlyInStock bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query := t.db.WithContext(ctx).Model(&productRecord{}).Scopes(database.IDIn("id", ids))
	if onlyInStock {
		query = query.Where("in_stock = ?", true)
	}
	result := query.Update("in_stock", false)
	if result.Error != nil {
		return 0, database.Classify(result.Error)
	}
	return result.RowsAffected, nil
}

func (t *txRepository) SaveIdempotencyKey(ctx context.Context, record ports.IdempotencyRecord) error {
	dbRecord := idempotencyRecord{
		Key:         record.Key,
		RequestHash: record.RequestHash,
		OrderID:     record.OrderID,
		CreatedAt:   record.CreatedAt,
	}
	if err := t.db.WithContext(ctx).Create(&dbRecord).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return ports.ErrIdempotencyKeyClaimed
		}
		return database.Classify(err)
	}
	return nil
}

// translateInsert maps a foreign key failure on an order insert to the missing side.
func translateInsert(err error, reference string) error {
	if database.IsForeignKeyViolation(err) {
		if reference == "client" {
			return fmt.Errorf("%w: %w", ports.ErrClientNotFound, err)
		}
		return fmt.Errorf("order references a missing %s: %w", reference, err)
	}
	return database.Classify(err)
}

func (v orderView) toDomain() *domain.Order {
	return &domain.Order{
		ID:         v.ID,
		ClientID:   v.ClientID,
		ClientName: strings.TrimSpace(v.ClientFirstName + " " + v.ClientLastName),
		PlacedAt:   v.DateAndTime.UTC(),
		TotalPrice: v.TotalPrice,
	}
}
