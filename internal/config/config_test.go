package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("expected sqlite driver by default, got %q", cfg.Database.Driver)
	}
	if cfg.Database.Path != "ventes.db" {
		t.Fatalf("expected ventes.db, got %q", cfg.Database.Path)
	}
	if cfg.Admin.Username != "admin" || cfg.Admin.Password != "admin123" {
		t.Fatalf("unexpected admin defaults: %+v", cfg.Admin)
	}
	if cfg.JWT.ExpiryHours != 12*time.Hour {
		t.Fatalf("expected 12h token expiry, got %v", cfg.JWT.ExpiryHours)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("ADMIN_USERNAME", "boss")

	cfg := Load()

	if cfg.App.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.App.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Fatalf("expected driver to be lower-cased, got %q", cfg.Database.Driver)
	}
	if cfg.Admin.Username != "boss" {
		t.Fatalf("expected admin boss, got %q", cfg.Admin.Username)
	}
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"ventes.db", "ventes.db?_foreign_keys=1"},
		{"file:test?mode=memory&cache=shared", "file:test?mode=memory&cache=shared&_foreign_keys=1"},
	}
	for _, tt := range tests {
		cfg := DatabaseConfig{Path: tt.path}
		if got := cfg.SQLiteDSN(); got != tt.want {
			t.Errorf("SQLiteDSN(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
