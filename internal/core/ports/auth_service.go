package ports

import (
	"context"

	"github.com/orderdesk/orders-admin/internal/core/domain"
)

// AuthService implements the credential lifecycle: registering new accounts
// and authenticating submitted credentials.
type AuthService interface {
	// Register validates the inputs in order (missing fields, password
	// confirmation, username availability), hashes the password and creates
	// a USER account. The returned account never carries the hash.
	Register(ctx context.Context, username, password, confirmPassword string) (*domain.Account, error)
	// Authenticate verifies credentials and returns the principal. All
	// rejections (unknown username, wrong password, disabled account)
	// surface as domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (*domain.Principal, error)
}
