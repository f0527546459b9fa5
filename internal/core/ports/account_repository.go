package ports

import (
	"context"

	"github.com/orderdesk/orders-admin/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
//
// Uniqueness of usernames is enforced by the implementation atomically (a
// storage-level unique constraint), not by check-then-insert at the caller;
// Create and Update return domain.ErrDuplicateUsername on collision.
type AccountRepository interface {
	// FindByUsername performs an exact-match lookup.
	// Returns domain.ErrAccountNotFound when no account exists; callers
	// treat that as absence, not failure.
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	// Create persists a new account and assigns its id. Any id present on
	// the draft is ignored.
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	// Update persists changes to an existing account.
	// Returns domain.ErrAccountNotFound when the id does not exist.
	Update(ctx context.Context, account *domain.Account) (*domain.Account, error)
	// DeleteByID removes an account. It is idempotent and reports whether a
	// record was actually removed. Returns domain.ErrConstraintViolation
	// when dependent data references the account.
	DeleteByID(ctx context.Context, id string) (bool, error)
	// GetAll returns every account in a stable, store-defined order.
	GetAll(ctx context.Context) ([]*domain.Account, error)
}
