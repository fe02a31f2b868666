package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/finsim/bank_ledger_app/internal/cli"
	"github.com/finsim/bank_ledger_app/internal/core/services"
	"github.com/finsim/bank_ledger_app/internal/platform/config"
	"github.com/finsim/bank_ledger_app/internal/repositories/memory"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Logs go to stderr as JSON; the menu owns stdout.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	// Explicit in-memory stores, constructed once and passed down; state lives
	// for the duration of this run only.
	accountRepo := memory.NewAccountRepository()
	userRepo := memory.NewUserRepository()

	userSvc := services.NewUserService(userRepo)
	accountSvc := services.NewAccountService(accountRepo)
	ledgerSvc := services.NewLedgerService(accountRepo, cfg.InterestRate, cfg.InterestIntervalDays)

	menu := cli.New(cfg, logger, os.Stdin, os.Stdout, userSvc, accountSvc, ledgerSvc)

	logger.Info("Starting banking application",
		slog.String("bank_name", cfg.BankName),
		slog.String("interest_rate", cfg.InterestRate.String()),
		slog.Int("interest_interval_days", cfg.InterestIntervalDays))

	if err := menu.Run(context.Background()); err != nil {
		logger.Error("Menu loop failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
