// Package cli implements the interactive text menu. It collects and validates
// primitive inputs, calls the services, and renders results or error messages;
// no business rule lives here. Every failure returns control to the menu loop.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/finsim/bank_ledger_app/internal/apperrors"
	portssvc "github.com/finsim/bank_ledger_app/internal/core/ports/services"
	"github.com/finsim/bank_ledger_app/internal/dto"
	"github.com/finsim/bank_ledger_app/internal/platform/config"
	"github.com/finsim/bank_ledger_app/internal/platform/ctxlog"
)

// Menu drives the interactive session: the top-level register/login loop and,
// after a successful login, the per-user account menu.
type Menu struct {
	in       *bufio.Reader
	out      io.Writer
	logger   *slog.Logger
	validate *validator.Validate
	bankName string
	users    portssvc.UserSvc
	accounts portssvc.AccountSvc
	ledger   portssvc.LedgerSvc
}

// New creates a menu bound to the given reader/writer pair.
func New(cfg *config.Config, logger *slog.Logger, in io.Reader, out io.Writer, users portssvc.UserSvc, accounts portssvc.AccountSvc, ledger portssvc.LedgerSvc) *Menu {
	return &Menu{
		in:       bufio.NewReader(in),
		out:      out,
		logger:   logger,
		validate: dto.NewValidator(),
		bankName: cfg.BankName,
		users:    users,
		accounts: accounts,
		ledger:   ledger,
	}
}

// Run executes the top-level menu loop until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printf("\n--- %s ---\n", m.bankName)
		m.printf("1. Register\n")
		m.printf("2. Login\n")
		m.printf("3. Exit\n")

		choice, err := m.prompt("Choose an option: ")
		if err != nil {
			return ignoreEOF(err)
		}

		switch choice {
		case "1":
			if err := m.register(ctx); err != nil {
				return ignoreEOF(err)
			}
		case "2":
			if err := m.login(ctx); err != nil {
				return ignoreEOF(err)
			}
		case "3":
			m.printf("Thank you for using %s. Goodbye!\n", m.bankName)
			return nil
		default:
			m.printf("Invalid choice. Please try again.\n")
		}
	}
}

func (m *Menu) register(ctx context.Context) error {
	m.printf("--- User Registration ---\n")
	username, err := m.prompt("Enter username: ")
	if err != nil {
		return err
	}
	password, err := m.prompt("Enter password: ")
	if err != nil {
		return err
	}

	req := dto.RegisterUserRequest{Username: username, Password: password}
	if err := m.validate.Struct(req); err != nil {
		m.printf("Password is not secure. It must be at least 8 characters long and include:\n")
		m.printf("- At least one lowercase letter\n")
		m.printf("- At least one uppercase letter\n")
		m.printf("- At least one number\n")
		m.printf("- At least one special character\n")
		return nil
	}

	if _, err := m.users.Register(ctx, req); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			m.printf("Username already exists. Please choose a different username.\n")
			return nil
		}
		m.renderError(ctx, err)
		return nil
	}

	m.printf("Registration successful! You can now log in.\n")
	return nil
}

func (m *Menu) login(ctx context.Context) error {
	m.printf("--- User Login ---\n")
	username, err := m.prompt("Enter username: ")
	if err != nil {
		return err
	}
	password, err := m.prompt("Enter password: ")
	if err != nil {
		return err
	}

	user, err := m.users.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			m.printf("Invalid username or password. Please try again.\n")
			return nil
		}
		m.renderError(ctx, err)
		return nil
	}

	m.printf("Login successful!\n")

	// Session-scoped logger for everything this user does until logout.
	sessionLogger := m.logger.With(
		slog.String("session_id", uuid.NewString()),
		slog.String("user_id", user.UserID),
	)
	return m.userMenu(ctxlog.With(ctx, sessionLogger), user)
}

// prompt prints a label and reads one trimmed line of input.
func (m *Menu) prompt(label string) (string, error) {
	m.printf("%s", label)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

// renderError maps unexpected failures to a generic message; expected error
// kinds are handled at their call sites.
func (m *Menu) renderError(ctx context.Context, err error) {
	ctxlog.FromCtx(ctx).Error("Operation failed", slog.String("error", err.Error()))
	m.printf("Something went wrong. Please try again.\n")
}

// ignoreEOF turns end-of-input into a clean shutdown.
func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
