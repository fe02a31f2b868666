package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/finsim/bank_ledger_app/internal/core/ports"
)

const (
	accountNumberPrefix = "ACC"
	accountNumberDigits = 7
)

// randomAccountNumberSource allocates account numbers of the form ACC0000000
// using crypto/rand. The identifier space (10^7) makes collisions within a
// single user's registry improbable; the registry service still retries on
// the duplicate it might get.
type randomAccountNumberSource struct{}

// NewAccountNumberSource returns the production account number allocator.
func NewAccountNumberSource() ports.AccountNumberSource {
	return randomAccountNumberSource{}
}

func (randomAccountNumberSource) Next() (string, error) {
	limit := big.NewInt(10_000_000) // 10^accountNumberDigits
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return fmt.Sprintf("%s%0*d", accountNumberPrefix, accountNumberDigits, n), nil
}
