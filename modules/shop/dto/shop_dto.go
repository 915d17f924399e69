package dto

import (
	"time"

	"pickleball-api/modules/shop/entity"

	"github.com/google/uuid"
)

type SaveProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       int    `json:"price" validate:"required,min=1"`
	Stock       int    `json:"stock"`
	ImageKey    string `json:"image_key"`
}

type OrderLineRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	Items []OrderLineRequest `json:"items" validate:"required,min=1"`
}

type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       int       `json:"price"`
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"image_url,omitempty"`
}

type OrderResponse struct {
	ID        uuid.UUID          `json:"id"`
	Ref       string             `json:"ref"`
	Items     []entity.OrderItem `json:"items"`
	Total     int                `json:"total"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

func ToProductResponse(p *entity.Product, imageURL string) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    imageURL,
	}
}

func ToOrderResponse(o *entity.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		Ref:       o.Ref,
		Items:     o.Items,
		Total:     o.Total,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}
