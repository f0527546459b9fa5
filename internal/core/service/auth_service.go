package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/orderdesk/orders-admin/internal/core/domain"
	"github.com/orderdesk/orders-admin/internal/core/ports"
)

// dummyDigest is verified against when a username does not exist, so a
// lookup miss costs the same as a password mismatch. It is not a credential;
// the caller is rejected regardless of the comparison's outcome.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService implements registration and credential verification.
type AuthService struct {
	repo   ports.AccountRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, logger: logger}
}

// Register validates and creates a new account. Validation order is fixed:
// missing fields, then password confirmation, then username availability.
// The store's unique constraint is the real uniqueness guard; the pre-check
// only exists to report the failure before paying for a hash, and a
// duplicate slipping past it (concurrent registration) is converted to the
// same taken error.
func (s *AuthService) Register(ctx context.Context, username, password, confirmPassword string) (*domain.Account, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingFields
	}
	if password != confirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	// CPU-bound; runs before and outside any store interaction.
	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Username:     username,
		PasswordHash: digest,
		Role:         domain.RoleUser,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("account registered")

	public := *created
	public.PasswordHash = ""
	return &public, nil
}

// Authenticate verifies the submitted credentials and returns the
// principal. Unknown username, wrong password and disabled account all
// collapse into ErrInvalidCredentials so the caller cannot tell which
// field was wrong or whether the account exists.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.Principal, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			// Burn the same hashing cost as the found path.
			s.hasher.Verify(password, dummyDigest)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	if !account.Enabled {
		s.logger.Info().Str("username", username).Msg("login rejected: account disabled")
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.Principal{Username: account.Username, Role: account.Role}, nil
}
