package services

import (
	"context"

	"github.com/finsim/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerProcessorSvc defines the balance-mutating ledger operations. Each
// operation either applies the balance change and appends a transaction
// record, or leaves the account completely untouched.
type LedgerProcessorSvc interface {
	// Deposit adds a positive amount to the account's balance.
	Deposit(ctx context.Context, userID string, accountNumber string, amount decimal.Decimal) (*domain.Account, error)

	// Withdraw subtracts a positive amount not exceeding the current balance.
	Withdraw(ctx context.Context, userID string, accountNumber string, amount decimal.Decimal) (*domain.Account, error)

	// PostMonthlyInterest posts interest to a savings account, throttled to at
	// most one posting per configured interval. Returns the updated account and
	// the interest transaction that was recorded.
	PostMonthlyInterest(ctx context.Context, userID string, accountNumber string) (*domain.Account, *domain.Transaction, error)
}

// LedgerReporterSvc defines the read-only projections over an account's ledger.
type LedgerReporterSvc interface {
	// GetStatement retrieves the account's transactions in chronological order.
	// An account with no transactions yields an empty slice, not an error.
	GetStatement(ctx context.Context, userID string, accountNumber string) ([]domain.Transaction, error)

	// GetBalance retrieves the account's current balance.
	GetBalance(ctx context.Context, userID string, accountNumber string) (decimal.Decimal, error)
}

// LedgerSvc combines the transaction processor and statement reporter interfaces.
type LedgerSvc interface {
	LedgerProcessorSvc
	LedgerReporterSvc
}
