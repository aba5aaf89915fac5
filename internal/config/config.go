package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"electroledger/internal/logger"
)

type Config struct {
	// Storage Configuration
	DataDir      string
	StoreBackend string // file, sqlite, memory

	// Session Configuration
	SessionFile    string
	LedgerUsername string
	LedgerPassHash string // bcrypt hash, never the clear-text password

	// Business Configuration
	DefaultRegion        string // region used to read local phone numbers
	SeedDefaultEmployees bool
	DefaultDailyWage     string
	OverdueDays          int
	InvoiceSignature     string
	InvoiceFooter        string
	PDFFontFile          string // UTF-8 TrueType font for PDF invoices

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	config := Default()
	config.DataDir = getEnv("DATA_DIR", config.DataDir)
	config.StoreBackend = strings.ToLower(getEnv("STORE_BACKEND", config.StoreBackend))
	config.SessionFile = getEnv("SESSION_FILE", filepath.Join(config.DataDir, "session.json"))
	config.LedgerUsername = getEnv("LEDGER_USERNAME", config.LedgerUsername)
	config.LedgerPassHash = getEnv("LEDGER_PASSWORD_HASH", "")
	config.DefaultRegion = strings.ToUpper(getEnv("DEFAULT_REGION", config.DefaultRegion))
	config.DefaultDailyWage = getEnv("DEFAULT_DAILY_WAGE", config.DefaultDailyWage)
	config.InvoiceSignature = getEnv("INVOICE_SIGNATURE", config.InvoiceSignature)
	config.InvoiceFooter = getEnv("INVOICE_FOOTER", config.InvoiceFooter)
	config.PDFFontFile = getEnv("PDF_FONT_FILE", "")
	config.LogLevel = getEnv("LOG_LEVEL", config.LogLevel)
	config.LogFormat = getEnv("LOG_FORMAT", config.LogFormat)
	config.LogTimeFormat = getEnv("LOG_TIME_FORMAT", config.LogTimeFormat)
	config.LogOutput = getEnv("LOG_OUTPUT", config.LogOutput)

	var err error
	if config.SeedDefaultEmployees, err = getEnvBool("SEED_DEFAULT_EMPLOYEES", config.SeedDefaultEmployees); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	if config.OverdueDays, err = getEnvInt("OVERDUE_DAYS", config.OverdueDays); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Default returns the configuration used when nothing is set in the environment.
func Default() *Config {
	return &Config{
		DataDir:              "data",
		StoreBackend:         "file",
		SessionFile:          filepath.Join("data", "session.json"),
		LedgerUsername:       "issam",
		DefaultRegion:        "DZ",
		SeedDefaultEmployees: true,
		DefaultDailyWage:     "2000",
		OverdueDays:          7,
		InvoiceSignature:     "Issam Électrique",
		InvoiceFooter:        "Merci pour votre confiance",
		LogLevel:             "warn",
		LogFormat:            "console",
		LogTimeFormat:        "2006-01-02T15:04:05Z07:00",
		LogOutput:            "stderr",
	}
}

func (c *Config) validate() error {
	switch c.StoreBackend {
	case "file", "sqlite", "memory":
	default:
		return fmt.Errorf("STORE_BACKEND must be file, sqlite or memory, got %q", c.StoreBackend)
	}
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	if c.OverdueDays <= 0 {
		return fmt.Errorf("OVERDUE_DAYS must be positive, got %d", c.OverdueDays)
	}
	if c.LedgerUsername == "" {
		return fmt.Errorf("LEDGER_USERNAME is required")
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, value)
	}
	return b, nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return n, nil
}
