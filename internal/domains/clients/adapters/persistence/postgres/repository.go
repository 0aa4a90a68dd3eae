package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Apurer/go-gin-shop-api/internal/domains/clients/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/clients/ports"
	"github.com/Apurer/go-gin-shop-api/internal/platform/database"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists clients through GORM. Caller manages DB lifecycle.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type clientRecord struct {
	ID          int64  `gorm:"primaryKey;column:id"`
	FirstName   string `gorm:"column:first_name"`
	LastName    string `gorm:"column:last_name"`
	PhoneNumber string `gorm:"column:phone_number"`
	Email       string `gorm:"column:email"`
}

func (clientRecord) TableName() string { return "shop_client" }

// Create inserts a client. A reused phone number or email yields ports.ErrConflict.
func (r *Repository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errors.New("client is nil")
	}
	record := toRecord(client)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: phone number or email already registered", ports.ErrConflict)
		}
		return nil, database.Classify(err)
	}
	return record.toDomain(), nil
}

// GetByID fetches a client by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record clientRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, database.Classify(err)
	}
	return record.toDomain(), nil
}

// List returns clients in registration order.
func (r *Repository) List(ctx context.Context) ([]*domain.Client, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []clientRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, database.Classify(err)
	}
	clients := make([]*domain.Client, 0, len(records))
	for i := range records {
		clients = append(clients, records[i].toDomain())
	}
	return clients, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("client repository not configured")
	}
	return nil
}

func toRecord(client *domain.Client) clientRecord {
	return clientRecord{
		ID:          client.ID,
		FirstName:   client.FirstName,
		LastName:    client.LastName,
		PhoneNumber: client.PhoneNumber,
		Email:       client.Email,
	}
}

func (r clientRecord) toDomain() *domain.Client {
	return &domain.Client{
		ID:          r.ID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
		Email:       r.Email,
	}
}
