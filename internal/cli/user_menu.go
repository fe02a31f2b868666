package cli

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsim/bank_ledger_app/internal/apperrors"
	"github.com/finsim/bank_ledger_app/internal/core/domain"
	"github.com/finsim/bank_ledger_app/internal/core/services"
	"github.com/finsim/bank_ledger_app/internal/dto"
)

// errInputAborted marks an operation abandoned because a prompt received
// unusable input; the user menu simply continues.
var errInputAborted = errors.New("input aborted")

func (m *Menu) userMenu(ctx context.Context, user *domain.User) error {
	for {
		m.printf("\n--- Welcome, %s ---\n", user.Username)
		m.printf("1. Open Account\n")
		m.printf("2. Deposit\n")
		m.printf("3. Withdraw\n")
		m.printf("4. View Statement\n")
		m.printf("5. Add Monthly Interest (Savings Only)\n")
		m.printf("6. Check Balance\n")
		m.printf("7. List %s's accounts\n", user.Username)
		m.printf("8. Logout\n")

		choice, err := m.prompt("Choose an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = m.openAccount(ctx, user)
		case "2":
			err = m.deposit(ctx, user)
		case "3":
			err = m.withdraw(ctx, user)
		case "4":
			err = m.viewStatement(ctx, user)
		case "5":
			err = m.addMonthlyInterest(ctx, user)
		case "6":
			err = m.checkBalance(ctx, user)
		case "7":
			err = m.listAccounts(ctx, user)
		case "8":
			m.printf("Logging out...\n")
			return nil
		default:
			m.printf("Invalid choice. Please try again.\n")
		}
		if err != nil && !errors.Is(err, errInputAborted) {
			return err
		}
	}
}

func (m *Menu) openAccount(ctx context.Context, user *domain.User) error {
	m.printf("--- Open New Account ---\n")
	holderName, err := m.prompt("Enter account holder's name: ")
	if err != nil {
		return err
	}

	typeChoice, err := m.prompt("Enter account type (1. Savings/ 2. Checking): ")
	if err != nil {
		return err
	}
	accountType, ok := accountTypeFromChoice(typeChoice)
	if !ok {
		m.printf("Invalid account type. Please enter either 'Savings' or 'Checking'.\n")
		return nil
	}

	initialDeposit, err := m.promptAmount("Enter initial deposit amount: ")
	if err != nil {
		return err
	}

	req := dto.OpenAccountRequest{
		HolderName:     holderName,
		AccountType:    accountType,
		InitialDeposit: initialDeposit,
	}
	if err := m.validate.Struct(req); err != nil {
		m.printf("Invalid account details. Please try again.\n")
		return nil
	}

	account, err := m.accounts.OpenAccount(ctx, user.UserID, req)
	if err != nil {
		m.renderLedgerError(ctx, err)
		return nil
	}

	m.printf("Account created successfully! Your account number is: %s\n", account.AccountNumber)
	return nil
}

func (m *Menu) deposit(ctx context.Context, user *domain.User) error {
	m.printf("--- Deposit ---\n")
	number, err := m.prompt("Enter account number: ")
	if err != nil {
		return err
	}
	amount, err := m.promptAmount("Enter amount to deposit: ")
	if err != nil {
		return err
	}

	account, err := m.ledger.Deposit(ctx, user.UserID, number, amount)
	if err != nil {
		m.renderLedgerError(ctx, err)
		return nil
	}
	m.printf("Deposit successful! Your new balance is: %s\n", account.Balance.StringFixed(2))
	return nil
}

func (m *Menu) withdraw(ctx context.Context, user *domain.User) error {
	m.printf("--- Withdrawal ---\n")
	number, err := m.prompt("Enter account number: ")
	if err != nil {
		return err
	}
	amount, err := m.promptAmount("Enter amount to withdraw: ")
	if err != nil {
		return err
	}

	account, err := m.ledger.Withdraw(ctx, user.UserID, number, amount)
	if err != nil {
		m.renderLedgerError(ctx, err)
		return nil
	}
	m.printf("Withdrawal successful! Your new balance is: %s\n", account.Balance.StringFixed(2))
	return nil
}

func (m *Menu) viewStatement(ctx context.Context, user *domain.User) error {
	number, err := m.prompt("Enter account number: ")
	if err != nil {
		return err
	}

	txns, err := m.ledger.GetStatement(ctx, user.UserID, number)
	if err != nil {
		m.renderLedgerError(ctx, err)
		return nil
	}

	m.printf("\n--- Transaction History for Account %s ---\n", number)
	if len(txns) == 0 {
		m.printf("No transactions found for this account.\n")
		return nil
	}
	for _, line := range dto.ToStatementResponse(txns) {
		m.printf("%s | %s | Amount: %s\n",
			line.Timestamp.Format(time.DateTime), line.TransactionType, line.Amount.StringFixed(2))
	}
	return nil
}

func (m *Menu) addMonthlyInterest(ctx context.Context, user *domain.User) error {
	number, err := m.prompt("Enter account number: ")
	if err != nil {
		return err
	}

	account, txn, err := m.ledger.PostMonthlyInterest(ctx, user.UserID, number)
	if err != nil {
		m.renderLedgerError(ctx, err)
		return nil
	}
	m.printf("Interest of %s added successfully! New balance: %s\n",
		txn.Amount.StringFixed(2), account.Balance.StringFixed(2))
	return nil
}

func (m *Menu) checkBalance(ctx context.Context, user *domain.User) error {
	number, err := m.prompt("Enter account number: ")
	if err != nil {
		return err
	}

	balance, err := m.ledger.GetBalance(ctx, user.UserID, number)
	if err != nil {
		m.renderLedgerError(ctx, err)
		return nil
	}
	m.printf("The current balance for account %s is: %s\n", number, balance.StringFixed(2))
	return nil
}

func (m *Menu) listAccounts(ctx context.Context, user *domain.User) error {
	accounts, err := m.accounts.ListAccounts(ctx, user.UserID)
	if err != nil {
		m.renderLedgerError(ctx, err)
		return nil
	}
	if len(accounts) == 0 {
		m.printf("You have no accounts.\n")
		return nil
	}

	m.printf("\n--- Your Accounts ---\n")
	for _, acc := range dto.ToListAccountResponse(accounts) {
		m.printf("Account Number: %s, Type: %s, Balance: %s\n",
			acc.AccountNumber, acc.AccountType, acc.Balance.StringFixed(2))
	}
	return nil
}

// promptAmount reads a fixed-point decimal amount. Unparsable input prints a
// message and aborts the current operation.
func (m *Menu) promptAmount(label string) (decimal.Decimal, error) {
	raw, err := m.prompt(label)
	if err != nil {
		return decimal.Zero, err
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		m.printf("Invalid amount. Please enter a valid number.\n")
		return decimal.Zero, errInputAborted
	}
	return amount, nil
}

// accountTypeFromChoice maps a menu choice (or a typed-out name) to the
// account type token the services expect.
func accountTypeFromChoice(choice string) (string, bool) {
	switch choice {
	case "1":
		return string(domain.Savings), true
	case "2":
		return string(domain.Checking), true
	}
	if t, ok := domain.ParseAccountType(choice); ok {
		return string(t), true
	}
	return "", false
}

// renderLedgerError prints the user-facing message for the expected ledger
// error kinds; anything else is logged and reported generically.
func (m *Menu) renderLedgerError(ctx context.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		m.printf("Account not found. Please check the account number.\n")
	case errors.Is(err, services.ErrInvalidAmount):
		m.printf("Invalid amount. Please enter a valid number.\n")
	case errors.Is(err, services.ErrInvalidAccountType):
		m.printf("Invalid account type. Please enter either 'Savings' or 'Checking'.\n")
	case errors.Is(err, services.ErrInsufficientFunds):
		m.printf("Insufficient funds. Withdrawal amount exceeds the current balance.\n")
	case errors.Is(err, services.ErrNotSavingsAccount):
		m.printf("Savings account not found or the account type is not a savings account.\n")
	case errors.Is(err, services.ErrInterestAlreadyPosted):
		m.printf("Interest can only be added once per month. Please try again later.\n")
	default:
		m.renderError(ctx, err)
	}
}
