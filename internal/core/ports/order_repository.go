package ports

import (
	"context"

	"github.com/orderdesk/orders-admin/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	// Create persists a new order and assigns its id, ignoring any id
	// present on the draft.
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// Update returns domain.ErrOrderNotFound when the id does not exist.
	Update(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// DeleteByID is idempotent and reports whether a record was removed.
	DeleteByID(ctx context.Context, id string) (bool, error)
	GetAll(ctx context.Context) ([]*domain.Order, error)
	// CountByAccount reports how many orders reference the given account id.
	CountByAccount(ctx context.Context, accountID string) (int64, error)
}
