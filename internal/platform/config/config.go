package config

import (
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	BankName             string
	LogLevel             string
	InterestRate         decimal.Decimal
	InterestIntervalDays int
}

// LoadConfig loads configuration from environment variables and a .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("BANK_NAME", "Banking Application")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("INTEREST_RATE", "0.01")
	viper.SetDefault("INTEREST_INTERVAL_DAYS", 30)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.BankName = viper.GetString("BANK_NAME")
	cfg.LogLevel = viper.GetString("LOG_LEVEL")

	rateStr := viper.GetString("INTEREST_RATE")
	rate, err := decimal.NewFromString(rateStr)
	if err != nil || rate.IsNegative() {
		rate = decimal.RequireFromString("0.01")
		log.Printf("Warning: Invalid value for INTEREST_RATE ('%s'). Defaulting to %s.\n", rateStr, rate.String())
	}
	cfg.InterestRate = rate

	cfg.InterestIntervalDays = viper.GetInt("INTEREST_INTERVAL_DAYS")
	if cfg.InterestIntervalDays <= 0 {
		cfg.InterestIntervalDays = 30
		log.Printf("Warning: Invalid value for INTEREST_INTERVAL_DAYS. Defaulting to %d.\n", cfg.InterestIntervalDays)
	}

	return cfg, nil
}

// SlogLevel maps the configured log level string to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
