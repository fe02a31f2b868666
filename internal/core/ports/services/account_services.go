package services

import (
	"context"

	"github.com/finsim/bank_ledger_app/internal/core/domain"
	"github.com/finsim/bank_ledger_app/internal/dto"
)

// AccountReaderSvc defines read operations over a user's account registry.
type AccountReaderSvc interface {
	// GetAccount retrieves one of the user's accounts by account number.
	GetAccount(ctx context.Context, userID string, accountNumber string) (*domain.Account, error)

	// ListAccounts retrieves all of the user's accounts in insertion order.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations over a user's account registry.
type AccountWriterSvc interface {
	// OpenAccount creates a new account for the user with a fresh account number.
	OpenAccount(ctx context.Context, userID string, req dto.OpenAccountRequest) (*domain.Account, error)
}

// AccountSvc combines all account-registry service interfaces.
type AccountSvc interface {
	AccountReaderSvc
	AccountWriterSvc
}
