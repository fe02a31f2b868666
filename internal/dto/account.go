package dto

import (
	"time"

	"github.com/finsim/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenAccountRequest defines the data needed to open a new account.
// The holder name is entered freely at open time; it is not derived from the
// logged-in user's identity.
type OpenAccountRequest struct {
	HolderName     string          `json:"holderName" validate:"required"`
	AccountType    string          `json:"accountType" validate:"required,oneof=SAVINGS CHECKING"`
	InitialDeposit decimal.Decimal `json:"initialDeposit" validate:"-"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountNumber string          `json:"accountNumber"`
	HolderName    string          `json:"holderName"`
	AccountType   string          `json:"accountType"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountNumber: acc.AccountNumber,
		HolderName:    acc.HolderName,
		AccountType:   string(acc.AccountType),
		Balance:       acc.Balance,
		CreatedAt:     acc.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to AccountResponse DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// BalanceResponse defines the data returned for a balance query.
type BalanceResponse struct {
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
}
