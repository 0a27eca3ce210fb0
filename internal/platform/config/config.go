package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Config holds application configuration.
type Config struct {
	LogLevel          slog.Level
	LogFormat         string
	ReportingCurrency string // currency household income is reported in by default
	IsProduction      bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", LogFormatJSON)
	viper.SetDefault("REPORTING_CURRENCY", "USD")
	viper.SetDefault("IS_PRODUCTION", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	levelStr := viper.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", levelStr, cfg.LogLevel)
	}

	cfg.LogFormat = strings.ToLower(strings.TrimSpace(viper.GetString("LOG_FORMAT")))
	if cfg.LogFormat != LogFormatJSON && cfg.LogFormat != LogFormatText {
		log.Printf("Warning: Invalid value for LOG_FORMAT ('%s'). Defaulting to %s.\n", cfg.LogFormat, LogFormatJSON)
		cfg.LogFormat = LogFormatJSON
	}

	cfg.ReportingCurrency = strings.ToUpper(strings.TrimSpace(viper.GetString("REPORTING_CURRENCY")))
	if !domain.IsKnownCurrency(cfg.ReportingCurrency) {
		return nil, fmt.Errorf("%w: REPORTING_CURRENCY '%s'", apperrors.ErrUnknownCurrency, cfg.ReportingCurrency)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	return cfg, nil
}

// Default returns the configuration used when nothing is set in the environment.
func Default() *Config {
	return &Config{
		LogLevel:          slog.LevelInfo,
		LogFormat:         LogFormatJSON,
		ReportingCurrency: "USD",
	}
}
