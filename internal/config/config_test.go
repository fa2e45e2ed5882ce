package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORTAL_API_URL", "")
	t.Setenv("SESSION_FILE", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PAGE_SIZE", "")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:5000/api" {
		t.Errorf("base url = %q", cfg.APIBaseURL)
	}
	if cfg.SessionFile == "" {
		t.Error("session file must have a default")
	}
	if cfg.PageSize != 3 {
		t.Errorf("page size = %d, want 3", cfg.PageSize)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("timeout = %v, want 15s", cfg.HTTPTimeout)
	}
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORTAL_API_URL", "https://portal.example.com/api")
	t.Setenv("SESSION_FILE", "/tmp/session.json")
	t.Setenv("DATABASE_URL", "postgres://localhost/portal")
	t.Setenv("PAGE_SIZE", "10")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "30")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "https://portal.example.com/api" {
		t.Errorf("base url = %q", cfg.APIBaseURL)
	}
	if cfg.SessionFile != "/tmp/session.json" {
		t.Errorf("session file = %q", cfg.SessionFile)
	}
	if cfg.DatabaseURL != "postgres://localhost/portal" {
		t.Errorf("database url = %q", cfg.DatabaseURL)
	}
	if cfg.PageSize != 10 || cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("page size = %d timeout = %v", cfg.PageSize, cfg.HTTPTimeout)
	}
}

func TestLoadConfig_BadNumbersFallBack(t *testing.T) {
	t.Setenv("PAGE_SIZE", "zero")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "-5")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PageSize != 3 {
		t.Errorf("page size = %d, want default 3", cfg.PageSize)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("timeout = %v, want default 15s", cfg.HTTPTimeout)
	}
}
