package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finsim/bank_ledger_app/internal/apperrors"
	"github.com/finsim/bank_ledger_app/internal/core/domain"
	"github.com/finsim/bank_ledger_app/internal/core/ports"
	portsrepo "github.com/finsim/bank_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/finsim/bank_ledger_app/internal/core/ports/services"
	"github.com/finsim/bank_ledger_app/internal/dto"
	"github.com/finsim/bank_ledger_app/internal/utils"
)

// userService implements registration and login against the user repository.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
	clock    ports.Clock
}

// UserServiceOption is a functional option for configuring the user service.
type UserServiceOption func(*userService)

// WithUserClock substitutes the clock used for registration timestamps.
func WithUserClock(clock ports.Clock) UserServiceOption {
	return func(s *userService) {
		s.clock = clock
	}
}

// NewUserService creates a new user service with the provided options.
func NewUserService(repo portsrepo.UserRepository, options ...UserServiceOption) portssvc.UserSvc {
	svc := &userService{
		userRepo: repo,
		clock:    utils.SystemClock{},
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.UserSvc = (*userService)(nil)

func (s *userService) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	_, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err == nil {
		return nil, fmt.Errorf("username %s: %w", req.Username, apperrors.ErrDuplicate)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check username availability",
			slog.String("username", req.Username))
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user",
			slog.String("username", req.Username))
		return nil, err
	}

	s.LogInfo(ctx, "User registered",
		slog.String("user_id", user.UserID),
		slog.String("username", user.Username))
	return &user, nil
}

func (s *userService) Authenticate(ctx context.Context, username string, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Uniform failure for unknown user and bad password.
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user",
			slog.String("username", username))
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	s.LogInfo(ctx, "User authenticated",
		slog.String("user_id", user.UserID),
		slog.String("username", user.Username))
	return user, nil
}
