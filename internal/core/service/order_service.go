package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/orderdesk/orders-admin/internal/core/domain"
	"github.com/orderdesk/orders-admin/internal/core/ports"
)

// OrderService implements the order management screens. The full listing is
// served through an optional Redis-backed cache that order writes
// invalidate.
type OrderService struct {
	repo   ports.OrderRepository
	cache  ports.OrderListCache
	logger zerolog.Logger
}

// NewOrderService creates an OrderService. cache may be nil, in which case
// every listing hits the repository.
func NewOrderService(repo ports.OrderRepository, cache ports.OrderListCache, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, cache: cache, logger: logger}
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrderService) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	if s.cache != nil {
		if orders, ok := s.cache.Get(ctx); ok {
			return orders, nil
		}
	}

	orders, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, orders)
	}
	return orders, nil
}

func (s *OrderService) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	now := time.Now().UTC()
	order := &domain.Order{
		OrderNumber: input.OrderNumber,
		ProductName: input.ProductName,
		Price:       input.Price,
		Quantity:    input.Quantity,
		PlacedBy:    input.PlacedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("id", created.ID).Str("order_number", created.OrderNumber).Msg("order created")
	return created, nil
}

func (s *OrderService) UpdateOrder(ctx context.Context, input ports.UpdateOrderInput) (*domain.Order, error) {
	existing, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	existing.OrderNumber = input.OrderNumber
	existing.ProductName = input.ProductName
	existing.Price = input.Price
	existing.Quantity = input.Quantity
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return updated, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.invalidate(ctx)
		s.logger.Info().Str("id", id).Msg("order deleted")
	}
	return deleted, nil
}

func (s *OrderService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
