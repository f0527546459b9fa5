package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/orderdesk/orders-admin/internal/core/domain"
	"github.com/orderdesk/orders-admin/internal/pkg/hash"
)

// stubAccountRepo is an in-memory AccountRepository. Uniqueness is enforced
// under a mutex, mirroring the atomic unique index of the real store.
type stubAccountRepo struct {
	mu        sync.Mutex
	seq       int
	accounts  map[string]*domain.Account // keyed by id
	dependent map[string]int             // orders referencing an account id
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{
		accounts:  make(map[string]*domain.Account),
		dependent: make(map[string]int),
	}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Username == username {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.accounts[id]; ok {
		return cloneAccount(a), nil
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Username == account.Username {
			return nil, domain.ErrDuplicateUsername
		}
	}
	copy := cloneAccount(account)
	r.seq++
	copy.ID = fmt.Sprintf("acc-%d", r.seq)
	r.accounts[copy.ID] = cloneAccount(copy)
	return copy, nil
}

func (r *stubAccountRepo) Update(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[account.ID]; !ok {
		return nil, domain.ErrAccountNotFound
	}
	for id, a := range r.accounts {
		if id != account.ID && a.Username == account.Username {
			return nil, domain.ErrDuplicateUsername
		}
	}
	r.accounts[account.ID] = cloneAccount(account)
	return cloneAccount(account), nil
}

func (r *stubAccountRepo) DeleteByID(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[id]; !ok {
		return false, nil
	}
	if r.dependent[id] > 0 {
		return false, domain.ErrConstraintViolation
	}
	delete(r.accounts, id)
	return true, nil
}

func (r *stubAccountRepo) GetAll(_ context.Context) ([]*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.accounts))
	for id := range r.accounts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*domain.Account, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneAccount(r.accounts[id]))
	}
	return out, nil
}

func (r *stubAccountRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.accounts)
}

func newTestAuthService(repo *stubAccountRepo) *AuthService {
	return NewAuthService(repo, hash.NewBcryptHasher(bcrypt.MinCost), zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	account, err := svc.Register(context.Background(), "alice", "pw1", "pw1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if account.ID == "" {
		t.Fatalf("expected store-assigned id")
	}
	if account.Role != domain.RoleUser {
		t.Fatalf("expected role USER, got %s", account.Role)
	}
	if !account.Enabled {
		t.Fatalf("new accounts must be enabled")
	}
	if account.PasswordHash != "" {
		t.Fatalf("returned account must not carry the hash")
	}

	stored, err := repo.FindByID(context.Background(), account.ID)
	if err != nil {
		t.Fatalf("stored account missing: %v", err)
	}
	if stored.PasswordHash == "" || stored.PasswordHash == "pw1" {
		t.Fatalf("stored hash must be a non-empty transform, got %q", stored.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "", "pw", "pw"); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields for empty username, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", "", ""); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields for empty password, got %v", err)
	}
	if repo.count() != 0 {
		t.Fatalf("no account may be created on validation failure")
	}
}

func TestAuthService_Register_PasswordMismatch(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "alice", "pw1", "pw2"); !errors.Is(err, domain.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	if repo.count() != 0 {
		t.Fatalf("no account may be created on validation failure")
	}
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "alice", "pw1", "pw1"); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", "pw2", "pw2"); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if repo.count() != 1 {
		t.Fatalf("store must contain exactly one alice account, has %d", repo.count())
	}
}

func TestAuthService_Register_ConcurrentSameUsername(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(context.Background(), "alice", "pw1", "pw1")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	successes := 0
	for err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, domain.ErrUsernameTaken):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly one successful registration, got %d", successes)
	}
	if repo.count() != 1 {
		t.Fatalf("store must contain exactly one account, has %d", repo.count())
	}
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "alice", "pw1", "pw1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	p, err := svc.Authenticate(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if p.Username != "alice" || p.Role != domain.RoleUser {
		t.Fatalf("unexpected principal: %+v", p)
	}
}

func TestAuthService_Authenticate_Rejections(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "alice", "pw1", "pw1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Wrong password and unknown username must be indistinguishable.
	if _, err := svc.Authenticate(context.Background(), "alice", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "bob", "pw1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty credentials, got %v", err)
	}
}

func TestAuthService_Authenticate_DisabledAccount(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	created, err := svc.Register(context.Background(), "alice", "pw1", "pw1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), created.ID)
	stored.Enabled = false
	if _, err := repo.Update(context.Background(), stored); err != nil {
		t.Fatalf("disable failed: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), "alice", "pw1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("disabled account with correct password must be rejected, got %v", err)
	}
}
