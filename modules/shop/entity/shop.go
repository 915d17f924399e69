package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"pickleball-api/core/entity"

	"github.com/google/uuid"
)

// Order statuses. Pending orders can move to paid or cancelled, nothing else.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
)

type Product struct {
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Category    string `db:"category" json:"category"`
	Price       int    `db:"price" json:"price"`
	Stock       int    `db:"stock" json:"stock"`
	ImageKey    string `db:"image_key" json:"image_key"`
	entity.BaseEntity
}

// OrderItem is a line captured at order time. Price is a snapshot so later
// product edits do not rewrite order history.
type OrderItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     int       `json:"price"`
	Quantity  int       `json:"quantity"`
}

type OrderItems []OrderItem

func (a OrderItems) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *OrderItems) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &a)
}

type Order struct {
	UserID uuid.UUID  `db:"user_id" json:"user_id"`
	Ref    string     `db:"ref" json:"ref"`
	Items  OrderItems `db:"items" json:"items"`
	Total  int        `db:"total" json:"total"`
	Status string     `db:"status" json:"status"`
	entity.BaseEntity
}

type PaginatedProductEntity = entity.Pagination[Product]
