package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/go-multierror"
)

// Config is the process configuration, read once at startup.
type Config struct {
	Addr            string        `env:"SEVA_ADDR"             envDefault:":8080"`
	LogLevel        string        `env:"SEVA_LOG_LEVEL"        envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SEVA_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Coordinator notifications. Both must be set to enable delivery.
	TelegramBotToken  string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramAPIURL    string `env:"TELEGRAM_API_URL"    envDefault:"https://api.telegram.org"`
	CoordinatorChatID int64  `env:"COORDINATOR_CHAT_ID"`

	// Lab report analysis is disabled without a key.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiURL    string `env:"GEMINI_URL" envDefault:"https://generativelanguage.googleapis.com/v1/models/gemini-2.5-flash-lite:generateContent"`

	// ReportFontPath overrides the TTF used for PDF reports.
	ReportFontPath string `env:"REPORT_FONT_PATH"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every configuration problem at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if strings.TrimSpace(c.Addr) == "" {
		result = multierror.Append(result, errors.New("SEVA_ADDR must not be empty"))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		result = multierror.Append(result, fmt.Errorf("SEVA_LOG_LEVEL %q is not one of debug, info, warn, error", c.LogLevel))
	}
	if c.ShutdownTimeout <= 0 {
		result = multierror.Append(result, errors.New("SEVA_SHUTDOWN_TIMEOUT must be positive"))
	}
	if c.CoordinatorChatID != 0 && c.TelegramBotToken == "" {
		result = multierror.Append(result, errors.New("COORDINATOR_CHAT_ID requires TELEGRAM_BOT_TOKEN"))
	}
	if c.GeminiAPIKey != "" && c.GeminiURL == "" {
		result = multierror.Append(result, errors.New("GEMINI_URL must be set when GEMINI_API_KEY is set"))
	}

	return result.ErrorOrNil()
}

// NotificationsEnabled reports whether coordinator delivery is configured.
func (c Config) NotificationsEnabled() bool {
	return c.TelegramBotToken != "" && c.CoordinatorChatID != 0
}

// AnalysisEnabled reports whether lab report analysis can be served.
func (c Config) AnalysisEnabled() bool {
	return c.GeminiAPIKey != ""
}
