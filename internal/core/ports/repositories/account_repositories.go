package repositories

import (
	"context"

	"github.com/finsim/bank_ledger_app/internal/core/domain"
)

// AccountReader defines read operations for account data.
// Every lookup is scoped by the owning user's ID; an account number issued to
// another user must behave exactly like a number that was never issued.
type AccountReader interface {
	// FindAccountByNumber retrieves one of the owner's accounts by its number.
	FindAccountByNumber(ctx context.Context, ownerUserID string, accountNumber string) (*domain.Account, error)

	// ListAccounts retrieves all of the owner's accounts in insertion order.
	ListAccounts(ctx context.Context, ownerUserID string) ([]domain.Account, error)

	// ListTransactions retrieves an account's transactions in chronological
	// (insertion) order. An account with no transactions yields an empty slice.
	ListTransactions(ctx context.Context, ownerUserID string, accountNumber string) ([]domain.Transaction, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// AppendTransaction persists the account's updated balance and appends the
	// transaction record as one atomic step; partial application must never be
	// observable.
	AppendTransaction(ctx context.Context, account domain.Account, txn domain.Transaction) error
}

// AccountRepository combines all account-related repository interfaces.
type AccountRepository interface {
	AccountReader
	AccountWriter
}
