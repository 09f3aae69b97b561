package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "ACCOUNTS", "TIMEZONE", "PAYMENT_DUE_TIME", "PAYMENT_DUE_ZONE", "EXCHANGE_RATE_FALLBACK", "EXCHANGE_RATE_TTL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DBDriver != "postgres" {
		t.Errorf("DBDriver = %q, want postgres", cfg.DBDriver)
	}
	if len(cfg.Accounts) != 2 || cfg.Accounts[0] != "dimitar" || cfg.Accounts[1] != "gordana" {
		t.Errorf("Accounts = %v, want [dimitar gordana]", cfg.Accounts)
	}
	if cfg.ExchangeRateFallback.String() != "0.95" {
		t.Errorf("ExchangeRateFallback = %s, want 0.95", cfg.ExchangeRateFallback)
	}
	if cfg.ExchangeRateTTL != time.Hour {
		t.Errorf("ExchangeRateTTL = %s, want 1h", cfg.ExchangeRateTTL)
	}
	if cfg.PaymentDueTime != "11:30" {
		t.Errorf("PaymentDueTime = %q, want 11:30", cfg.PaymentDueTime)
	}
	if got := cfg.DueTimeLabel(); got != "11:30 CET" {
		t.Errorf("DueTimeLabel = %q, want %q", got, "11:30 CET")
	}
}

func TestDueTimeLabel_IgnoresDaylightSaving(t *testing.T) {
	t.Setenv("TIMEZONE", "Europe/Berlin")
	t.Setenv("PAYMENT_DUE_TIME", "")
	t.Setenv("PAYMENT_DUE_ZONE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The label must not pick up CEST from the configured zone in summer.
	summer, _ := time.Date(2026, time.July, 1, 12, 0, 0, 0, cfg.Location).Zone()
	if summer != "CEST" {
		t.Fatalf("expected Europe/Berlin to observe CEST in July, got %s", summer)
	}
	if got := cfg.DueTimeLabel(); got != "11:30 CET" {
		t.Errorf("DueTimeLabel = %q, want %q", got, "11:30 CET")
	}

	cfg.PaymentDueZone = ""
	if got := cfg.DueTimeLabel(); got != "11:30" {
		t.Errorf("DueTimeLabel without zone = %q, want %q", got, "11:30")
	}
}

func TestHasAccount_CaseInsensitive(t *testing.T) {
	cfg := &Config{Accounts: []string{"dimitar", "gordana"}}

	tests := []struct {
		id   string
		want bool
	}{
		{"dimitar", true},
		{"Dimitar", true},
		{"GORDANA", true},
		{"gordana ", false},
		{"carol", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := cfg.HasAccount(tt.id); got != tt.want {
			t.Errorf("HasAccount(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("ACCOUNTS", " Alice, bob ,,alice")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("PAYMENT_DUE_TIME", "09:15")
	t.Setenv("PAYMENT_DUE_ZONE", "UTC")
	t.Setenv("EXCHANGE_RATE_TTL", "bogus")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DBDriver != "sqlite" {
		t.Errorf("DBDriver = %q, want sqlite", cfg.DBDriver)
	}
	if len(cfg.Accounts) != 2 || !cfg.HasAccount("alice") || !cfg.HasAccount("bob") {
		t.Errorf("Accounts = %v, want [alice bob]", cfg.Accounts)
	}
	if cfg.HasAccount("carol") {
		t.Error("carol should not be a configured account")
	}
	if cfg.ExchangeRateTTL != time.Hour {
		t.Errorf("invalid TTL should fall back to 1h, got %s", cfg.ExchangeRateTTL)
	}
	if got := cfg.DueTimeLabel(); got != "09:15 UTC" {
		t.Errorf("DueTimeLabel = %q, want %q", got, "09:15 UTC")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"driver", "DB_DRIVER", "mysql"},
		{"timezone", "TIMEZONE", "Mars/Olympus"},
		{"due_time", "PAYMENT_DUE_TIME", "noon"},
		{"fallback", "EXCHANGE_RATE_FALLBACK", "-1"},
		{"accounts", "ACCOUNTS", " , "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.val)
			}
		})
	}
}
