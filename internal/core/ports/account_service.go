package ports

import (
	"context"

	"github.com/orderdesk/orders-admin/internal/core/domain"
)

// UpdateAccountInput carries the fields the admin edit screen may change.
// The password hash is deliberately absent: this path can never touch it.
type UpdateAccountInput struct {
	ID       string
	Username string
	Role     domain.Role
	Enabled  bool
}

// AccountService defines the administrative account management use cases.
type AccountService interface {
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
	UpdateAccount(ctx context.Context, input UpdateAccountInput) (*domain.Account, error)
	// DeleteAccount reports whether an account was removed; deleting an
	// account that owns orders fails with domain.ErrConstraintViolation.
	DeleteAccount(ctx context.Context, id string) (bool, error)
}
