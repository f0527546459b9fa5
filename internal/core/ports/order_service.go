package ports

import (
	"context"

	"github.com/orderdesk/orders-admin/internal/core/domain"
)

// CreateOrderInput carries the data for a new order.
type CreateOrderInput struct {
	OrderNumber string
	ProductName string
	Price       float64
	Quantity    int
	PlacedBy    string
}

// UpdateOrderInput carries the editable fields of an existing order.
type UpdateOrderInput struct {
	ID          string
	OrderNumber string
	ProductName string
	Price       float64
	Quantity    int
}

// OrderService defines the order management use cases.
type OrderService interface {
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	UpdateOrder(ctx context.Context, input UpdateOrderInput) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string) (bool, error)
}

// OrderListCache is an optional read-through cache for the full order
// listing. Implementations fail soft: a cache problem degrades to a
// repository read, never an error for the caller.
type OrderListCache interface {
	Get(ctx context.Context) ([]*domain.Order, bool)
	Set(ctx context.Context, orders []*domain.Order)
	Invalidate(ctx context.Context)
}
