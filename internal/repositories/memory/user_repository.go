package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/finsim/bank_ledger_app/internal/apperrors"
	"github.com/finsim/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/finsim/bank_ledger_app/internal/core/ports/repositories"
)

// UserRepository stores registered users keyed by username.
type UserRepository struct {
	mu         sync.Mutex
	byUsername map[string]domain.User
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{byUsername: make(map[string]domain.User)}
}

var _ portsrepo.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[user.Username]; exists {
		return fmt.Errorf("username %s: %w", user.Username, apperrors.ErrDuplicate)
	}
	r.byUsername[user.Username] = user
	return nil
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byUsername[username]
	if !ok {
		return nil, fmt.Errorf("username %s: %w", username, apperrors.ErrNotFound)
	}
	cp := user
	return &cp, nil
}
