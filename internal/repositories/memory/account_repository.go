// Package memory provides mutex-guarded in-memory repositories. All state
// lives in process memory for the duration of a single run; nothing is
// persisted. Returned values are copies so callers cannot mutate internal
// state.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/finsim/bank_ledger_app/internal/apperrors"
	"github.com/finsim/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/finsim/bank_ledger_app/internal/core/ports/repositories"
)

type accountRecord struct {
	account      domain.Account
	transactions []domain.Transaction
}

// AccountRepository stores accounts and their transaction histories, keyed by
// owner user ID and account number. A single mutex serializes every operation
// so a balance update and its transaction append are observed atomically.
type AccountRepository struct {
	mu      sync.Mutex
	byOwner map[string]map[string]*accountRecord
	order   map[string][]string // account numbers per owner, insertion order
}

// NewAccountRepository creates an empty in-memory account repository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		byOwner: make(map[string]map[string]*accountRecord),
		order:   make(map[string][]string),
	}
}

var _ portsrepo.AccountRepository = (*AccountRepository)(nil)

func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned := r.byOwner[account.OwnerUserID]
	if owned == nil {
		owned = make(map[string]*accountRecord)
		r.byOwner[account.OwnerUserID] = owned
	}
	if _, exists := owned[account.AccountNumber]; exists {
		return fmt.Errorf("account %s: %w", account.AccountNumber, apperrors.ErrDuplicate)
	}

	owned[account.AccountNumber] = &accountRecord{account: account}
	r.order[account.OwnerUserID] = append(r.order[account.OwnerUserID], account.AccountNumber)
	return nil
}

func (r *AccountRepository) FindAccountByNumber(ctx context.Context, ownerUserID string, accountNumber string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, err := r.lookup(ownerUserID, accountNumber)
	if err != nil {
		return nil, err
	}
	cp := rec.account
	return &cp, nil
}

func (r *AccountRepository) ListAccounts(ctx context.Context, ownerUserID string) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	numbers := r.order[ownerUserID]
	accounts := make([]domain.Account, 0, len(numbers))
	for _, number := range numbers {
		accounts = append(accounts, r.byOwner[ownerUserID][number].account)
	}
	return accounts, nil
}

func (r *AccountRepository) ListTransactions(ctx context.Context, ownerUserID string, accountNumber string) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, err := r.lookup(ownerUserID, accountNumber)
	if err != nil {
		return nil, err
	}
	txns := make([]domain.Transaction, len(rec.transactions))
	copy(txns, rec.transactions)
	return txns, nil
}

// AppendTransaction replaces the stored account state and appends the
// transaction record within one critical section.
func (r *AccountRepository) AppendTransaction(ctx context.Context, account domain.Account, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, err := r.lookup(account.OwnerUserID, account.AccountNumber)
	if err != nil {
		return err
	}
	rec.account = account
	rec.transactions = append(rec.transactions, txn)
	return nil
}

// lookup must be called with the mutex held.
func (r *AccountRepository) lookup(ownerUserID string, accountNumber string) (*accountRecord, error) {
	rec, ok := r.byOwner[ownerUserID][accountNumber]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", accountNumber, apperrors.ErrNotFound)
	}
	return rec, nil
}
