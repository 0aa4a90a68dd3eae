package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the shop schema. Parents are created before the tables referencing them.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&countryRecord{},
		&manufacturerRecord{},
		&categoryRecord{},
		&productRecord{},
		&clientRecord{},
		&orderRecord{},
		&orderProductRecord{},
		&orderIdempotencyRecord{},
	)
}

// Reset drops every shop table. Used by tests that need a clean store.
func Reset(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.Migrator().DropTable(
		&orderIdempotencyRecord{},
		&orderProductRecord{},
		&orderRecord{},
		&clientRecord{},
		&productRecord{},
		&categoryRecord{},
		&manufacturerRecord{},
		&countryRecord{},
	)
}

type countryRecord struct {
	ID   int64  `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;size:100;not null;uniqueIndex"`
}

func (countryRecord) TableName() string { return "shop_country" }

type manufacturerRecord struct {
	ID                int64         `gorm:"primaryKey;column:id"`
	Name              string        `gorm:"column:name;size:100;not null;uniqueIndex"`
	Website           *string       `gorm:"column:website;size:255"`
	CountryID         int64         `gorm:"column:country_id;not null;index"`
	Country           countryRecord `gorm:"foreignKey:CountryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	AmountOfEmployees *int64        `gorm:"column:amount_of_employees;check:chk_shop_manufacturer_employees,amount_of_employees >= 0"`
}

func (manufacturerRecord) TableName() string { return "shop_manufacturer" }

type categoryRecord struct {
	ID   int64  `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;size:100;not null;uniqueIndex"`
}

func (categoryRecord) TableName() string { return "shop_category" }

type productRecord struct {
	ID             int64              `gorm:"primaryKey;column:id"`
	Name           string             `gorm:"column:name;size:100;not null"`
	ManufacturerID int64              `gorm:"column:manufacturer_id;not null;index"`
	Manufacturer   manufacturerRecord `gorm:"foreignKey:ManufacturerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CategoryID     int64              `gorm:"column:category_id;not null;index"`
	Category       categoryRecord     `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	HomePage       *string            `gorm:"column:home_page;size:255"`
	Price          int64              `gorm:"column:price;not null;check:chk_shop_product_price,price >= 1"`
	InStock        bool               `gorm:"column:in_stock;not null;default:true;index"`
}

func (productRecord) TableName() string { return "shop_product" }

type clientRecord struct {
	ID          int64  `gorm:"primaryKey;column:id"`
	FirstName   string `gorm:"column:first_name;size:100;not null"`
	LastName    string `gorm:"column:last_name;size:100;not null"`
	PhoneNumber string `gorm:"column:phone_number;size:20;not null;uniqueIndex"`
	Email       string `gorm:"column:email;size:100;not null;uniqueIndex"`
}

func (clientRecord) TableName() string { return "shop_client" }

type orderRecord struct {
	ID          int64        `gorm:"primaryKey;column:id"`
	DateAndTime time.Time    `gorm:"column:date_and_time;not null;index"`
	ClientID    int64        `gorm:"column:client_id;not null;index"`
	Client      clientRecord `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	TotalPrice  int64        `gorm:"column:total_price;not null"`
}

func (orderRecord) TableName() string { return "shop_order" }

type orderProductRecord struct {
	ID        int64         `gorm:"primaryKey;column:id"`
	OrderID   int64         `gorm:"column:order_id;not null;index"`
	Order     orderRecord   `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ProductID int64         `gorm:"column:product_id;not null;index"`
	Product   productRecord `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (orderProductRecord) TableName() string { return "shop_order_product" }

// orderIdempotencyRecord maps a caller-supplied Idempotency-Key to the order it created.
type orderIdempotencyRecord struct {
	Key         string      `gorm:"primaryKey;column:idempotency_key;size:255"`
	RequestHash string      `gorm:"column:request_hash;size:128;not null"`
	OrderID     int64       `gorm:"column:order_id;not null;index"`
	Order       orderRecord `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt   time.Time   `gorm:"column:created_at"`
}

func (orderIdempotencyRecord) TableName() string { return "shop_order_idempotency" }
