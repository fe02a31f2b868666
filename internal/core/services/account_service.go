package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/finsim/bank_ledger_app/internal/apperrors"
	"github.com/finsim/bank_ledger_app/internal/core/domain"
	"github.com/finsim/bank_ledger_app/internal/core/ports"
	portsrepo "github.com/finsim/bank_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/finsim/bank_ledger_app/internal/core/ports/services"
	"github.com/finsim/bank_ledger_app/internal/dto"
	"github.com/finsim/bank_ledger_app/internal/utils"
)

var (
	// ErrInvalidAccountType indicates an account type token outside SAVINGS/CHECKING.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrInvalidAmount indicates a non-positive amount where a positive amount
	// is required, or a negative initial deposit.
	ErrInvalidAmount = errors.New("invalid amount")
)

// maxAccountNumberAttempts bounds the retry loop for the improbable case of
// an allocated account number colliding with an existing one.
const maxAccountNumberAttempts = 5

// accountService owns a user's account registry: creation and lookup.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	clock       ports.Clock
	numbers     ports.AccountNumberSource
}

// AccountServiceOption is a functional option for configuring the account service.
type AccountServiceOption func(*accountService)

// WithClock substitutes the clock used for account creation timestamps.
func WithClock(clock ports.Clock) AccountServiceOption {
	return func(s *accountService) {
		s.clock = clock
	}
}

// WithAccountNumberSource substitutes the account number allocator.
func WithAccountNumberSource(numbers ports.AccountNumberSource) AccountServiceOption {
	return func(s *accountService) {
		s.numbers = numbers
	}
}

// NewAccountService creates a new account registry service with the provided options.
func NewAccountService(repo portsrepo.AccountRepository, options ...AccountServiceOption) portssvc.AccountSvc {
	svc := &accountService{
		accountRepo: repo,
		clock:       utils.SystemClock{},
		numbers:     utils.NewAccountNumberSource(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.AccountSvc = (*accountService)(nil)

func (s *accountService) OpenAccount(ctx context.Context, userID string, req dto.OpenAccountRequest) (*domain.Account, error) {
	accountType, ok := domain.ParseAccountType(req.AccountType)
	if !ok {
		return nil, fmt.Errorf("account type %q: %w", req.AccountType, ErrInvalidAccountType)
	}
	if req.InitialDeposit.IsNegative() {
		return nil, fmt.Errorf("initial deposit must not be negative: %w", ErrInvalidAmount)
	}

	account := domain.Account{
		OwnerUserID: userID,
		HolderName:  req.HolderName,
		AccountType: accountType,
		Balance:     req.InitialDeposit,
		CreatedAt:   s.clock.Now(),
	}

	// The number space makes collisions improbable; retry the few that occur.
	for attempt := 0; attempt < maxAccountNumberAttempts; attempt++ {
		number, err := s.numbers.Next()
		if err != nil {
			s.LogError(ctx, err, "Failed to allocate account number")
			return nil, fmt.Errorf("failed to allocate account number: %w", err)
		}
		account.AccountNumber = number

		err = s.accountRepo.SaveAccount(ctx, account)
		if errors.Is(err, apperrors.ErrDuplicate) {
			continue
		}
		if err != nil {
			s.LogError(ctx, err, "Failed to save account",
				slog.String("account_number", account.AccountNumber))
			return nil, err
		}

		s.LogInfo(ctx, "Account opened",
			slog.String("account_number", account.AccountNumber),
			slog.String("account_type", string(account.AccountType)),
			slog.String("balance", account.Balance.String()))
		return &account, nil
	}

	err := fmt.Errorf("exhausted %d account number allocation attempts: %w", maxAccountNumberAttempts, apperrors.ErrDuplicate)
	s.LogError(ctx, err, "Failed to open account")
	return nil, err
}

func (s *accountService) GetAccount(ctx context.Context, userID string, accountNumber string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, userID, accountNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account",
				slog.String("account_number", accountNumber))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}
