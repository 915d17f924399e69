package repository

import (
	"context"
	"database/sql"

	"pickleball-api/core/database"
	"pickleball-api/core/logger"
	"pickleball-api/core/params"
	"pickleball-api/modules/shop/entity"

	"github.com/google/uuid"
)

type ShopRepository struct {
	db database.IDatabase
}

func NewShopRepository(db database.IDatabase) *ShopRepository {
	return &ShopRepository{db: db}
}

// ShopRepositoryInterface defines the repository contract
type ShopRepositoryInterface interface {
	CreateProduct(ctx context.Context, product *entity.Product) error
	GetProducts(ctx context.Context, params params.QueryParams) (*entity.PaginatedProductEntity, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (bool, error)
	CreateOrder(ctx context.Context, order *entity.Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetOrdersByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to string) (bool, error)
}

const productColumns = `id, name, description, category, price, stock, image_key, created_at, updated_at`

const orderColumns = `id, user_id, ref, items, total, status, created_at, updated_at`

func (r *ShopRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, category, price, stock, image_key)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.GetContext(ctx, product, query,
		product.Name, product.Description, product.Category, product.Price, product.Stock, product.ImageKey)
	if err != nil {
		logger.Error("ShopRepository:CreateProduct", err)
		return err
	}
	return nil
}

func (r *ShopRepository) GetProducts(ctx context.Context, params params.QueryParams) (*entity.PaginatedProductEntity, error) {
	offset := (params.PageNumber - 1) * params.PageSize

	var totalItems int
	err := r.db.GetContext(ctx, &totalItems, `SELECT COUNT(*) FROM products`)
	if err != nil {
		logger.Error("ShopRepository:GetProducts:Count", err)
		return nil, err
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY category ASC, name ASC
		LIMIT $1 OFFSET $2
	`

	var products []entity.Product
	err = r.db.SelectContext(ctx, &products, query, params.PageSize, offset)
	if err != nil {
		logger.Error("ShopRepository:GetProducts:Select", err)
		return nil, err
	}

	return &entity.PaginatedProductEntity{
		Items:      products,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}

func (r *ShopRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var product entity.Product
	err := r.db.GetContext(ctx, &product, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ShopRepository:GetProductByID", err)
		return nil, err
	}
	return &product, nil
}

// DecrementStock reserves stock for an order line. The WHERE guard rejects
// the decrement when remaining stock is insufficient.
func (r *ShopRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (bool, error) {
	query := `
		UPDATE products
		SET stock = stock - $2, updated_at = NOW()
		WHERE id = $1 AND stock >= $2
	`
	result, err := r.db.SQLx().ExecContext(ctx, query, id, quantity)
	if err != nil {
		logger.Error("ShopRepository:DecrementStock", err)
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("ShopRepository:DecrementStock - RowsAffected", err)
		return false, err
	}
	return rowsAffected > 0, nil
}

func (r *ShopRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (user_id, ref, items, total, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.GetContext(ctx, order, query,
		order.UserID, order.Ref, order.Items, order.Total, order.Status)
	if err != nil {
		logger.Error("ShopRepository:CreateOrder", err)
		return err
	}
	return nil
}

func (r *ShopRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	var order entity.Order
	err := r.db.GetContext(ctx, &order, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ShopRepository:GetOrderByID", err)
		return nil, err
	}
	return &order, nil
}

func (r *ShopRepository) GetOrdersByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var orders []entity.Order
	err := r.db.SelectContext(ctx, &orders, query, userID)
	if err != nil {
		logger.Error("ShopRepository:GetOrdersByUserID", err)
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus moves an order between statuses. The WHERE guard keeps
// transitions one-way: only an order still in the expected status is touched.
func (r *ShopRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to string) (bool, error) {
	query := `
		UPDATE orders
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`
	result, err := r.db.SQLx().ExecContext(ctx, query, id, from, to)
	if err != nil {
		logger.Error("ShopRepository:UpdateOrderStatus", err)
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("ShopRepository:UpdateOrderStatus - RowsAffected", err)
		return false, err
	}
	return rowsAffected > 0, nil
}
