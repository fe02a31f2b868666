package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/finsim/bank_ledger_app/internal/apperrors"
	"github.com/finsim/bank_ledger_app/internal/core/domain"
	portssvc "github.com/finsim/bank_ledger_app/internal/core/ports/services"
	"github.com/finsim/bank_ledger_app/internal/core/services"
	"github.com/finsim/bank_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// fakeClock is a controllable services clock for elapsed-time rules.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// seqNumberSource hands out ACC0000001, ACC0000002, ... deterministically.
type seqNumberSource struct {
	n int
}

func (s *seqNumberSource) Next() (string, error) {
	s.n++
	return fmt.Sprintf("ACC%07d", s.n), nil
}

// MockAccountRepository is a mock type for the AccountRepository interface.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByNumber(ctx context.Context, ownerUserID string, accountNumber string) (*domain.Account, error) {
	args := m.Called(ctx, ownerUserID, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, ownerUserID string) ([]domain.Account, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListTransactions(ctx context.Context, ownerUserID string, accountNumber string) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerUserID, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockAccountRepository) AppendTransaction(ctx context.Context, account domain.Account, txn domain.Transaction) error {
	args := m.Called(ctx, account, txn)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	clock    *fakeClock
	numbers  *seqNumberSource
	service  portssvc.AccountSvc
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.clock = &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	suite.numbers = &seqNumberSource{}
	suite.service = services.NewAccountService(suite.mockRepo,
		services.WithClock(suite.clock),
		services.WithAccountNumberSource(suite.numbers),
	)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestOpenAccount_Success() {
	ctx := context.Background()
	req := dto.OpenAccountRequest{
		HolderName:     "Alice",
		AccountType:    "SAVINGS",
		InitialDeposit: decimal.RequireFromString("1000.00"),
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.OpenAccount(ctx, "user-1", req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal("ACC0000001", account.AccountNumber)
	suite.Equal("user-1", account.OwnerUserID)
	suite.Equal("Alice", account.HolderName)
	suite.Equal(domain.Savings, account.AccountType)
	suite.True(account.Balance.Equal(decimal.RequireFromString("1000.00")))
	suite.Equal(suite.clock.Now(), account.CreatedAt)
	suite.True(account.LastInterestAt.IsZero())

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestOpenAccount_InvalidAccountType() {
	ctx := context.Background()
	req := dto.OpenAccountRequest{
		HolderName:  "Alice",
		AccountType: "CURRENT",
	}

	account, err := suite.service.OpenAccount(ctx, "user-1", req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, services.ErrInvalidAccountType)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestOpenAccount_NegativeInitialDeposit() {
	ctx := context.Background()
	req := dto.OpenAccountRequest{
		HolderName:     "Alice",
		AccountType:    "CHECKING",
		InitialDeposit: decimal.RequireFromString("-10"),
	}

	account, err := suite.service.OpenAccount(ctx, "user-1", req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, services.ErrInvalidAmount)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestOpenAccount_RetriesOnNumberCollision() {
	ctx := context.Background()
	req := dto.OpenAccountRequest{
		HolderName:     "Alice",
		AccountType:    "SAVINGS",
		InitialDeposit: decimal.Zero,
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(apperrors.ErrDuplicate).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(nil).Once()

	account, err := suite.service.OpenAccount(ctx, "user-1", req)

	suite.Require().NoError(err)
	suite.Equal("ACC0000002", account.AccountNumber)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccount_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindAccountByNumber", ctx, "user-1", "ACC9999999").
		Return(nil, fmt.Errorf("account ACC9999999: %w", apperrors.ErrNotFound)).Once()

	account, err := suite.service.GetAccount(ctx, "user-1", "ACC9999999")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_NilBecomesEmptySlice() {
	ctx := context.Background()

	suite.mockRepo.On("ListAccounts", ctx, "user-1").Return(nil, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, "user-1")

	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
