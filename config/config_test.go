package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.LedgerAPI.BaseURL != "http://localhost:5000/api" {
		t.Errorf("BaseURL = %q", cfg.LedgerAPI.BaseURL)
	}
	if cfg.Ledger.EditWindowHours != 12 {
		t.Errorf("EditWindowHours = %d, want 12", cfg.Ledger.EditWindowHours)
	}
	if cfg.Ledger.RefreshInterval != 0 {
		t.Errorf("RefreshInterval = %v, want disabled", cfg.Ledger.RefreshInterval)
	}
	if cfg.Redis.URL != "" {
		t.Errorf("Redis.URL = %q, want empty", cfg.Redis.URL)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("LEDGER_API_URL", "https://ledger.internal/api/")
	t.Setenv("LEDGER_TIMEZONE", "America/Sao_Paulo")
	t.Setenv("LEDGER_REFRESH_INTERVAL", "30s")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LEDGER_SYNC_ON_STARTUP", "false")
	t.Setenv("SERVER_PORT", "not-a-number")

	cfg := Load()

	if cfg.LedgerAPI.BaseURL != "https://ledger.internal/api" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", cfg.LedgerAPI.BaseURL)
	}
	if cfg.Ledger.Location.String() != "America/Sao_Paulo" {
		t.Errorf("Location = %v", cfg.Ledger.Location)
	}
	if cfg.Ledger.RefreshInterval != 30*time.Second {
		t.Errorf("RefreshInterval = %v", cfg.Ledger.RefreshInterval)
	}
	if cfg.RateLimit.RequestsPerSecond != 2.5 {
		t.Errorf("RequestsPerSecond = %v", cfg.RateLimit.RequestsPerSecond)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if cfg.Ledger.SyncOnStartup {
		t.Error("SyncOnStartup should be false")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("invalid port should fall back to default, got %d", cfg.Server.Port)
	}
}
