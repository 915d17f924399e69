package service

import (
	"context"

	"pickleball-api/core/errors"
	"pickleball-api/core/logger"
	"pickleball-api/core/params"
	"pickleball-api/core/storage"
	"pickleball-api/core/utils"
	"pickleball-api/modules/shop/dto"
	"pickleball-api/modules/shop/entity"
	"pickleball-api/modules/shop/repository"

	"github.com/google/uuid"
)

type ShopServiceInterface interface {
	CreateProduct(ctx context.Context, req *dto.SaveProductRequest) (*dto.ProductResponse, *errors.AppError)
	ListProducts(ctx context.Context, queryParams params.QueryParams) ([]dto.ProductResponse, int, *errors.AppError)
	CreateOrder(ctx context.Context, userID uuid.UUID, req *dto.CreateOrderRequest) (*dto.OrderResponse, *errors.AppError)
	GetMyOrders(ctx context.Context, userID uuid.UUID) ([]dto.OrderResponse, *errors.AppError)
	PayOrder(ctx context.Context, userID, orderID uuid.UUID) (*dto.OrderResponse, *errors.AppError)
	CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*dto.OrderResponse, *errors.AppError)
}

type ShopService struct {
	repo    repository.ShopRepositoryInterface
	storage storage.IStorage
}

func NewShopService(repo repository.ShopRepositoryInterface, st storage.IStorage) *ShopService {
	return &ShopService{repo: repo, storage: st}
}

func (s *ShopService) CreateProduct(ctx context.Context, req *dto.SaveProductRequest) (*dto.ProductResponse, *errors.AppError) {
	if req.Name == "" || req.Price < 1 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "name and a positive price are required", nil)
	}

	product := &entity.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageKey:    req.ImageKey,
	}
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create product", err)
	}

	logger.Info("ShopService:CreateProduct:Success", "product_id", product.ID, "name", product.Name)
	resp := dto.ToProductResponse(product, s.resolveImage(ctx, product.ImageKey))
	return &resp, nil
}

func (s *ShopService) ListProducts(ctx context.Context, queryParams params.QueryParams) ([]dto.ProductResponse, int, *errors.AppError) {
	page, err := s.repo.GetProducts(ctx, queryParams)
	if err != nil {
		return nil, 0, errors.NewAppError(errors.ErrInternalServer, "failed to list products", err)
	}

	responses := make([]dto.ProductResponse, 0, len(page.Items))
	for i := range page.Items {
		p := &page.Items[i]
		responses = append(responses, dto.ToProductResponse(p, s.resolveImage(ctx, p.ImageKey)))
	}
	return responses, page.TotalItems, nil
}

// CreateOrder prices every line from the live product record, never from the
// client, and reserves stock before the order row is written.
func (s *ShopService) CreateOrder(ctx context.Context, userID uuid.UUID, req *dto.CreateOrderRequest) (*dto.OrderResponse, *errors.AppError) {
	if len(req.Items) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "order must contain at least one item", nil)
	}

	var items entity.OrderItems
	total := 0
	for _, line := range req.Items {
		if line.Quantity < 1 {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "quantity must be at least 1", nil)
		}

		product, err := s.repo.GetProductByID(ctx, line.ProductID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load product", err)
		}
		if product == nil {
			return nil, errors.NewAppError(errors.ErrNotFound, "product not found", nil)
		}

		ok, err := s.repo.DecrementStock(ctx, line.ProductID, line.Quantity)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to reserve stock", err)
		}
		if !ok {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "insufficient stock for "+product.Name, nil)
		}

		items = append(items, entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  line.Quantity,
		})
		total += product.Price * line.Quantity
	}

	order := &entity.Order{
		UserID: userID,
		Ref:    utils.GenerateOrderRef(),
		Items:  items,
		Total:  total,
		Status: entity.OrderStatusPending,
	}
	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create order", err)
	}

	logger.Info("ShopService:CreateOrder:Success",
		"order_id", order.ID,
		"ref", order.Ref,
		"user_id", userID,
		"total", total,
	)
	resp := dto.ToOrderResponse(order)
	return &resp, nil
}

func (s *ShopService) GetMyOrders(ctx context.Context, userID uuid.UUID) ([]dto.OrderResponse, *errors.AppError) {
	orders, err := s.repo.GetOrdersByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list orders", err)
	}

	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, dto.ToOrderResponse(&orders[i]))
	}
	return responses, nil
}

func (s *ShopService) PayOrder(ctx context.Context, userID, orderID uuid.UUID) (*dto.OrderResponse, *errors.AppError) {
	return s.transition(ctx, userID, orderID, entity.OrderStatusPaid)
}

func (s *ShopService) CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*dto.OrderResponse, *errors.AppError) {
	return s.transition(ctx, userID, orderID, entity.OrderStatusCancelled)
}

func (s *ShopService) transition(ctx context.Context, userID, orderID uuid.UUID, to string) (*dto.OrderResponse, *errors.AppError) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load order", err)
	}
	if order == nil || order.UserID != userID {
		return nil, errors.NewAppError(errors.ErrNotFound, "order not found", nil)
	}
	if order.Status != entity.OrderStatusPending {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "only pending orders can be updated", nil)
	}

	ok, err := s.repo.UpdateOrderStatus(ctx, orderID, entity.OrderStatusPending, to)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update order", err)
	}
	if !ok {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "only pending orders can be updated", nil)
	}

	order.Status = to
	resp := dto.ToOrderResponse(order)
	return &resp, nil
}

func (s *ShopService) resolveImage(ctx context.Context, key string) string {
	if key == "" || s.storage == nil {
		return ""
	}
	url, err := s.storage.ResolveImageURL(ctx, key)
	if err != nil {
		return ""
	}
	return url
}
