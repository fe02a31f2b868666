package cli_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/finsim/bank_ledger_app/internal/cli"
	"github.com/finsim/bank_ledger_app/internal/core/services"
	"github.com/finsim/bank_ledger_app/internal/platform/config"
	"github.com/finsim/bank_ledger_app/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedNumberSource struct {
	n int
}

func (s *fixedNumberSource) Next() (string, error) {
	s.n++
	return fmt.Sprintf("ACC%07d", s.n), nil
}

func runScript(t *testing.T, script string) string {
	t.Helper()

	cfg := &config.Config{
		BankName:             "Banking Application",
		LogLevel:             "error",
		InterestRate:         decimal.RequireFromString("0.01"),
		InterestIntervalDays: 30,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	accountRepo := memory.NewAccountRepository()
	userRepo := memory.NewUserRepository()
	userSvc := services.NewUserService(userRepo)
	accountSvc := services.NewAccountService(accountRepo,
		services.WithAccountNumberSource(&fixedNumberSource{}))
	ledgerSvc := services.NewLedgerService(accountRepo, cfg.InterestRate, cfg.InterestIntervalDays)

	var out bytes.Buffer
	menu := cli.New(cfg, logger, strings.NewReader(script), &out, userSvc, accountSvc, ledgerSvc)
	require.NoError(t, menu.Run(context.Background()))
	return out.String()
}

func TestRegisterLoginAndOperateAccount(t *testing.T) {
	script := strings.Join([]string{
		"1",           // register
		"alice",       //
		"Str0ng!pass", //
		"2",           // login
		"alice",       //
		"Str0ng!pass", //
		"1",           // open account
		"Alice Smith", //
		"1",           // savings
		"1000.00",     //
		"2",           // deposit
		"ACC0000001",  //
		"500.00",      //
		"3",           // withdraw more than balance
		"ACC0000001",  //
		"2000.00",     //
		"6",           // check balance
		"ACC0000001",  //
		"7",           // list accounts
		"8",           // logout
		"3",           // exit
	}, "\n") + "\n"

	out := runScript(t, script)

	assert.Contains(t, out, "Registration successful!")
	assert.Contains(t, out, "Login successful!")
	assert.Contains(t, out, "Your account number is: ACC0000001")
	assert.Contains(t, out, "Deposit successful! Your new balance is: 1500.00")
	assert.Contains(t, out, "Insufficient funds.")
	assert.Contains(t, out, "The current balance for account ACC0000001 is: 1500.00")
	assert.Contains(t, out, "Account Number: ACC0000001, Type: SAVINGS, Balance: 1500.00")
	assert.Contains(t, out, "Goodbye!")
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	script := "1\nalice\nweak\n3\n"

	out := runScript(t, script)

	assert.Contains(t, out, "Password is not secure.")
	assert.NotContains(t, out, "Registration successful!")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	script := "2\nnobody\nWh4tever!\n3\n"

	out := runScript(t, script)

	assert.Contains(t, out, "Invalid username or password.")
}

func TestDepositToUnknownAccount(t *testing.T) {
	script := strings.Join([]string{
		"1", "alice", "Str0ng!pass",
		"2", "alice", "Str0ng!pass",
		"2", "ACC7654321", "50.00",
		"8",
		"3",
	}, "\n") + "\n"

	out := runScript(t, script)

	assert.Contains(t, out, "Account not found.")
}

func TestMenuEndsCleanlyOnEOF(t *testing.T) {
	// Script ends mid-menu without choosing Exit.
	out := runScript(t, "1\nalice\nStr0ng!pass\n")
	assert.Contains(t, out, "Registration successful!")
}
