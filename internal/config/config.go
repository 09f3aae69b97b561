package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds application configuration
type Config struct {
	// Server
	Port     string
	Env      string
	LogLevel string

	// Database
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Accounts that may hold invoices, in display order.
	Accounts []string

	// Billing calendar
	Location       *time.Location
	PaymentDueTime string
	// PaymentDueZone is the zone name printed after the due time. It is a
	// fixed label and does not follow daylight saving.
	PaymentDueZone string

	// PINHash is a bcrypt hash of the display PIN. Empty disables the gate.
	PINHash string

	// Exchange rates
	ExchangeRateURL      string
	ExchangeRateFallback decimal.Decimal
	ExchangeRateTTL      time.Duration
	HTTPTimeout          time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		// Server
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", ""),

		// Database
		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBPath:     getEnv("DB_PATH", "invoicer.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "invoicer"),
		DBPassword: getEnv("DB_PASSWORD", "invoicer"),
		DBName:     getEnv("DB_NAME", "invoicer"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		Accounts:       parseList(getEnv("ACCOUNTS", "dimitar,gordana")),
		PaymentDueTime: getEnv("PAYMENT_DUE_TIME", "11:30"),
		PaymentDueZone: strings.TrimSpace(getEnv("PAYMENT_DUE_ZONE", "CET")),
		PINHash:        getEnv("PIN_HASH", ""),

		ExchangeRateURL: getEnv("EXCHANGE_RATE_URL", "https://query1.finance.yahoo.com/v8/finance/chart"),
	}

	if config.DBDriver != "postgres" && config.DBDriver != "sqlite" {
		return nil, fmt.Errorf("invalid DB_DRIVER %q: must be postgres or sqlite", config.DBDriver)
	}

	if len(config.Accounts) == 0 {
		return nil, fmt.Errorf("ACCOUNTS must list at least one account")
	}

	tz := getEnv("TIMEZONE", "Europe/Berlin")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", tz, err)
	}
	config.Location = loc

	if _, err := time.Parse("15:04", config.PaymentDueTime); err != nil {
		return nil, fmt.Errorf("invalid PAYMENT_DUE_TIME %q: expected HH:MM", config.PaymentDueTime)
	}

	fallbackStr := getEnv("EXCHANGE_RATE_FALLBACK", "0.95")
	fallback, err := decimal.NewFromString(fallbackStr)
	if err != nil || !fallback.IsPositive() {
		return nil, fmt.Errorf("invalid EXCHANGE_RATE_FALLBACK %q: must be a positive decimal", fallbackStr)
	}
	config.ExchangeRateFallback = fallback

	config.ExchangeRateTTL = parseDuration("EXCHANGE_RATE_TTL", time.Hour)
	config.HTTPTimeout = parseDuration("HTTP_TIMEOUT", 10*time.Second)

	return config, nil
}

// HasAccount reports whether id is one of the configured accounts, ignoring
// case.
func (c *Config) HasAccount(id string) bool {
	for _, a := range c.Accounts {
		if strings.EqualFold(a, id) {
			return true
		}
	}
	return false
}

// DueTimeLabel renders the display-only payment due time, e.g. "11:30 CET".
func (c *Config) DueTimeLabel() string {
	if c.PaymentDueZone == "" {
		return c.PaymentDueTime
	}
	return c.PaymentDueTime + " " + c.PaymentDueZone
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseDuration reads a positive duration, falling back to defaultValue on
// a missing or invalid value.
func parseDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

// parseList splits a comma-separated list, dropping blanks and duplicates.
func parseList(raw string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		out = append(out, part)
	}
	return out
}
