package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finsim/bank_ledger_app/internal/core/domain"
	"github.com/finsim/bank_ledger_app/internal/core/ports"
	portsrepo "github.com/finsim/bank_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/finsim/bank_ledger_app/internal/core/ports/services"
	"github.com/finsim/bank_ledger_app/internal/utils"
)

var (
	// ErrInsufficientFunds indicates a withdrawal amount exceeding the current balance.
	ErrInsufficientFunds = errors.New("withdrawal amount exceeds the current balance")

	// ErrNotSavingsAccount indicates an interest posting requested on a non-savings account.
	ErrNotSavingsAccount = errors.New("interest can only be posted to savings accounts")

	// ErrInterestAlreadyPosted indicates an interest posting requested before the
	// configured interval has elapsed since the previous posting.
	ErrInterestAlreadyPosted = errors.New("interest already posted within the current interval")
)

// ledgerService applies deposits, withdrawals and interest postings to an
// account and appends the matching transaction record, and serves the
// read-only statement and balance projections. Balance mutation and record
// append happen through a single repository call so neither is ever observed
// without the other.
type ledgerService struct {
	BaseService
	accountRepo      portsrepo.AccountRepository
	clock            ports.Clock
	interestRate     decimal.Decimal
	interestInterval time.Duration
}

// LedgerServiceOption is a functional option for configuring the ledger service.
type LedgerServiceOption func(*ledgerService)

// WithLedgerClock substitutes the clock used for transaction timestamps and
// the interest throttle.
func WithLedgerClock(clock ports.Clock) LedgerServiceOption {
	return func(s *ledgerService) {
		s.clock = clock
	}
}

// NewLedgerService creates a new ledger service. interestRate is the per-posting
// rate applied to the balance; interestIntervalDays is the minimum number of
// elapsed days between two postings on the same account.
func NewLedgerService(repo portsrepo.AccountRepository, interestRate decimal.Decimal, interestIntervalDays int, options ...LedgerServiceOption) portssvc.LedgerSvc {
	svc := &ledgerService{
		accountRepo:      repo,
		clock:            utils.SystemClock{},
		interestRate:     interestRate,
		interestInterval: time.Duration(interestIntervalDays) * 24 * time.Hour,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

func (s *ledgerService) Deposit(ctx context.Context, userID string, accountNumber string, amount decimal.Decimal) (*domain.Account, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("deposit amount must be positive: %w", ErrInvalidAmount)
	}

	account, err := s.findAccount(ctx, userID, accountNumber)
	if err != nil {
		return nil, err
	}

	account.Balance = account.Balance.Add(amount)
	if err := s.record(ctx, account, domain.Deposit, amount); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Deposit applied",
		slog.String("account_number", account.AccountNumber),
		slog.String("amount", amount.String()),
		slog.String("balance", account.Balance.String()))
	return account, nil
}

func (s *ledgerService) Withdraw(ctx context.Context, userID string, accountNumber string, amount decimal.Decimal) (*domain.Account, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("withdrawal amount must be positive: %w", ErrInvalidAmount)
	}

	account, err := s.findAccount(ctx, userID, accountNumber)
	if err != nil {
		return nil, err
	}
	if amount.GreaterThan(account.Balance) {
		return nil, fmt.Errorf("balance is %s: %w", account.Balance.String(), ErrInsufficientFunds)
	}

	account.Balance = account.Balance.Sub(amount)
	if err := s.record(ctx, account, domain.Withdrawal, amount); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Withdrawal applied",
		slog.String("account_number", account.AccountNumber),
		slog.String("amount", amount.String()),
		slog.String("balance", account.Balance.String()))
	return account, nil
}

func (s *ledgerService) PostMonthlyInterest(ctx context.Context, userID string, accountNumber string) (*domain.Account, *domain.Transaction, error) {
	account, err := s.findAccount(ctx, userID, accountNumber)
	if err != nil {
		return nil, nil, err
	}
	if account.AccountType != domain.Savings {
		return nil, nil, fmt.Errorf("account %s is %s: %w", account.AccountNumber, account.AccountType, ErrNotSavingsAccount)
	}

	now := s.clock.Now()
	// Throttle against the previous posting, or against account creation if
	// interest was never posted.
	since := account.LastInterestAt
	if since.IsZero() {
		since = account.CreatedAt
	}
	if now.Sub(since) < s.interestInterval {
		return nil, nil, fmt.Errorf("last eligible date %s: %w",
			since.Format(time.DateOnly), ErrInterestAlreadyPosted)
	}

	// Interest is computed on the balance before the increase.
	interest := account.Balance.Mul(s.interestRate)
	account.Balance = account.Balance.Add(interest)
	account.LastInterestAt = now

	txn := s.newTransaction(account.AccountNumber, domain.Interest, interest, now)
	if err := s.accountRepo.AppendTransaction(ctx, *account, txn); err != nil {
		s.LogError(ctx, err, "Failed to append transaction",
			slog.String("account_number", account.AccountNumber))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Interest posted",
		slog.String("account_number", account.AccountNumber),
		slog.String("interest", interest.String()),
		slog.String("balance", account.Balance.String()))
	return account, &txn, nil
}

func (s *ledgerService) GetStatement(ctx context.Context, userID string, accountNumber string) ([]domain.Transaction, error) {
	txns, err := s.accountRepo.ListTransactions(ctx, userID, accountNumber)
	if err != nil {
		return nil, err
	}
	if txns == nil {
		// No transactions is a valid statement, distinct from "account not found".
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

func (s *ledgerService) GetBalance(ctx context.Context, userID string, accountNumber string) (decimal.Decimal, error) {
	account, err := s.findAccount(ctx, userID, accountNumber)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

func (s *ledgerService) findAccount(ctx context.Context, userID string, accountNumber string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, userID, accountNumber)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// record appends a transaction for the already-mutated account. The repository
// persists the balance and the record atomically.
func (s *ledgerService) record(ctx context.Context, account *domain.Account, kind domain.TransactionType, amount decimal.Decimal) error {
	txn := s.newTransaction(account.AccountNumber, kind, amount, s.clock.Now())
	if err := s.accountRepo.AppendTransaction(ctx, *account, txn); err != nil {
		s.LogError(ctx, err, "Failed to append transaction",
			slog.String("account_number", account.AccountNumber),
			slog.String("transaction_type", string(kind)))
		return err
	}
	return nil
}

func (s *ledgerService) newTransaction(accountNumber string, kind domain.TransactionType, amount decimal.Decimal, at time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountNumber:   accountNumber,
		TransactionType: kind,
		Amount:          amount,
		Timestamp:       at,
	}
}
