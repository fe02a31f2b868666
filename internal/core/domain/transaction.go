package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the kind of balance-changing event a transaction records.
type TransactionType string

const (
	Deposit    TransactionType = "DEPOSIT"
	Withdrawal TransactionType = "WITHDRAWAL"
	Interest   TransactionType = "INTEREST"
)

// Transaction is an immutable record of one balance-changing event on an account.
// Amount is always the magnitude of the change; the direction is implied by
// TransactionType. Records are only ever created by the ledger service and are
// never mutated or removed afterwards.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // UUID
	AccountNumber   string          `json:"accountNumber"`
	TransactionType TransactionType `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"` // Positive magnitude
	Timestamp       time.Time       `json:"timestamp"`
}
