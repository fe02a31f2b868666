package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType defines the product type of an account.
type AccountType string

const (
	Savings  AccountType = "SAVINGS"
	Checking AccountType = "CHECKING"
)

// ParseAccountType maps a raw token to an AccountType.
// The second return value is false for unrecognized tokens.
func ParseAccountType(s string) (AccountType, bool) {
	switch AccountType(strings.ToUpper(strings.TrimSpace(s))) {
	case Savings:
		return Savings, true
	case Checking:
		return Checking, true
	}
	return "", false
}

// Account represents a balance-holding account owned by a single user.
// This is the primary representation used by services.
type Account struct {
	AccountNumber  string          `json:"accountNumber"` // Assigned at creation, immutable
	OwnerUserID    string          `json:"ownerUserID"`   // Owning user; scopes every lookup
	HolderName     string          `json:"holderName"`    // Free-text label, immutable
	AccountType    AccountType     `json:"accountType"`   // SAVINGS or CHECKING, fixed at creation
	Balance        decimal.Decimal `json:"balance"`
	LastInterestAt time.Time       `json:"lastInterestAt"` // Zero until the first interest posting
	CreatedAt      time.Time       `json:"createdAt"`
}
