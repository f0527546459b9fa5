package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/orderdesk/orders-admin/internal/core/domain"
	"github.com/orderdesk/orders-admin/internal/core/ports"
)

// AccountService implements the administrative user management screens.
// Updates through this path never touch the password hash.
type AccountService struct {
	repo   ports.AccountRepository
	logger zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

func (s *AccountService) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return s.repo.GetAll(ctx)
}

// UpdateAccount loads the existing record and applies only username, role
// and enabled, preserving the stored hash and creation time.
func (s *AccountService) UpdateAccount(ctx context.Context, input ports.UpdateAccountInput) (*domain.Account, error) {
	existing, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	existing.Username = input.Username
	existing.Role = input.Role
	existing.Enabled = input.Enabled
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", updated.ID).Str("username", updated.Username).Str("role", string(updated.Role)).Msg("account updated")
	return updated, nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.Info().Str("id", id).Msg("account deleted")
	}
	return deleted, nil
}
