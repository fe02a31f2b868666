package services_test

import (
	"context"
	"testing"

	"github.com/finsim/bank_ledger_app/internal/apperrors"
	"github.com/finsim/bank_ledger_app/internal/core/services"
	"github.com/finsim/bank_ledger_app/internal/dto"
	"github.com/finsim/bank_ledger_app/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService() (*memory.UserRepository, context.Context) {
	return memory.NewUserRepository(), context.Background()
}

func TestRegisterAndAuthenticate(t *testing.T) {
	repo, ctx := newUserService()
	svc := services.NewUserService(repo)

	user, err := svc.Register(ctx, dto.RegisterUserRequest{Username: "alice", Password: "Str0ng!pass"})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.UserID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "Str0ng!pass", user.PasswordHash)

	authed, err := svc.Authenticate(ctx, "alice", "Str0ng!pass")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, authed.UserID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo, ctx := newUserService()
	svc := services.NewUserService(repo)

	_, err := svc.Register(ctx, dto.RegisterUserRequest{Username: "alice", Password: "Str0ng!pass"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, dto.RegisterUserRequest{Username: "alice", Password: "0ther!Pass"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestAuthenticateFailures(t *testing.T) {
	repo, ctx := newUserService()
	svc := services.NewUserService(repo)

	_, err := svc.Register(ctx, dto.RegisterUserRequest{Username: "alice", Password: "Str0ng!pass"})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "alice", "wrong-password")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.Authenticate(ctx, "nobody", "Str0ng!pass")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
