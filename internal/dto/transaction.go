package dto

import (
	"time"

	"github.com/finsim/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines the data returned for one statement line.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	TransactionType string          `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	Timestamp       time.Time       `json:"timestamp"`
}

// ToTransactionResponse converts a domain.Transaction to a TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		TransactionType: string(txn.TransactionType),
		Amount:          txn.Amount,
		Timestamp:       txn.Timestamp,
	}
}

// ToStatementResponse converts a transaction history to statement DTOs,
// preserving chronological order.
func ToStatementResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
