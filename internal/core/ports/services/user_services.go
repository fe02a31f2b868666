package services

import (
	"context"

	"github.com/finsim/bank_ledger_app/internal/core/domain"
	"github.com/finsim/bank_ledger_app/internal/dto"
)

// UserSvc defines registration and authentication operations.
type UserSvc interface {
	// Register creates a new user with a unique username and hashed password.
	Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// Authenticate verifies a username/password pair and returns the user.
	Authenticate(ctx context.Context, username string, password string) (*domain.User, error)
}
