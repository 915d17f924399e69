package service

import (
	"context"
	"testing"

	"pickleball-api/core/errors"
	"pickleball-api/core/params"
	"pickleball-api/modules/shop/dto"
	"pickleball-api/modules/shop/entity"

	"github.com/google/uuid"
)

type fakeShopRepo struct {
	products map[uuid.UUID]*entity.Product
	orders   map[uuid.UUID]*entity.Order
}

func newFakeShopRepo() *fakeShopRepo {
	return &fakeShopRepo{
		products: map[uuid.UUID]*entity.Product{},
		orders:   map[uuid.UUID]*entity.Order{},
	}
}

func (r *fakeShopRepo) CreateProduct(ctx context.Context, p *entity.Product) error {
	p.ID = uuid.New()
	r.products[p.ID] = p
	return nil
}

func (r *fakeShopRepo) GetProducts(ctx context.Context, qp params.QueryParams) (*entity.PaginatedProductEntity, error) {
	var items []entity.Product
	for _, p := range r.products {
		items = append(items, *p)
	}
	return &entity.PaginatedProductEntity{
		Items:      items,
		TotalItems: len(items),
		PageNumber: qp.PageNumber,
		PageSize:   qp.PageSize,
	}, nil
}

func (r *fakeShopRepo) GetProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *fakeShopRepo) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (bool, error) {
	p := r.products[id]
	if p.Stock < quantity {
		return false, nil
	}
	p.Stock -= quantity
	return true, nil
}

func (r *fakeShopRepo) CreateOrder(ctx context.Context, o *entity.Order) error {
	o.ID = uuid.New()
	r.orders[o.ID] = o
	return nil
}

func (r *fakeShopRepo) GetOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return o, nil
}

func (r *fakeShopRepo) GetOrdersByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeShopRepo) UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to string) (bool, error) {
	o := r.orders[id]
	if o.Status != from {
		return false, nil
	}
	o.Status = to
	return true, nil
}

func (r *fakeShopRepo) addProduct(name string, price, stock int) uuid.UUID {
	p := &entity.Product{Name: name, Price: price, Stock: stock}
	p.ID = uuid.New()
	r.products[p.ID] = p
	return p.ID
}

func TestCreateOrderComputesTotalServerSide(t *testing.T) {
	repo := newFakeShopRepo()
	svc := NewShopService(repo, nil)

	paddle := repo.addProduct("Paddle", 80, 10)
	balls := repo.addProduct("Ball Tube", 12, 50)

	order, appErr := svc.CreateOrder(context.Background(), uuid.New(), &dto.CreateOrderRequest{
		Items: []dto.OrderLineRequest{
			{ProductID: paddle, Quantity: 1},
			{ProductID: balls, Quantity: 3},
		},
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	if order.Total != 80+3*12 {
		t.Errorf("total = %d, want %d", order.Total, 80+3*12)
	}
	if order.Status != entity.OrderStatusPending {
		t.Errorf("status = %q, want pending", order.Status)
	}
	if order.Ref == "" {
		t.Error("expected a generated order ref")
	}
	if repo.products[balls].Stock != 47 {
		t.Errorf("stock = %d, want 47", repo.products[balls].Stock)
	}
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	repo := newFakeShopRepo()
	svc := NewShopService(repo, nil)

	paddle := repo.addProduct("Paddle", 80, 1)

	_, appErr := svc.CreateOrder(context.Background(), uuid.New(), &dto.CreateOrderRequest{
		Items: []dto.OrderLineRequest{{ProductID: paddle, Quantity: 2}},
	})
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("expected stock rejection, got %v", appErr)
	}
}

func TestOrderStatusOneWay(t *testing.T) {
	repo := newFakeShopRepo()
	svc := NewShopService(repo, nil)
	userID := uuid.New()

	paddle := repo.addProduct("Paddle", 80, 5)
	order, appErr := svc.CreateOrder(context.Background(), userID, &dto.CreateOrderRequest{
		Items: []dto.OrderLineRequest{{ProductID: paddle, Quantity: 1}},
	})
	if appErr != nil {
		t.Fatalf("setup order failed: %v", appErr)
	}

	paid, appErr := svc.PayOrder(context.Background(), userID, order.ID)
	if appErr != nil {
		t.Fatalf("pay failed: %v", appErr)
	}
	if paid.Status != entity.OrderStatusPaid {
		t.Errorf("status = %q, want paid", paid.Status)
	}

	// a paid order cannot be cancelled
	_, appErr = svc.CancelOrder(context.Background(), userID, order.ID)
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("expected rejection of cancel-after-pay, got %v", appErr)
	}
}

func TestOrderHiddenFromOtherUsers(t *testing.T) {
	repo := newFakeShopRepo()
	svc := NewShopService(repo, nil)
	owner := uuid.New()

	paddle := repo.addProduct("Paddle", 80, 5)
	order, appErr := svc.CreateOrder(context.Background(), owner, &dto.CreateOrderRequest{
		Items: []dto.OrderLineRequest{{ProductID: paddle, Quantity: 1}},
	})
	if appErr != nil {
		t.Fatalf("setup order failed: %v", appErr)
	}

	_, appErr = svc.PayOrder(context.Background(), uuid.New(), order.ID)
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("expected not-found for foreign order, got %v", appErr)
	}
}
