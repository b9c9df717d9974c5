package config

import (
	"os"
	"testing"
)

// unset clears a variable for the test while keeping t.Setenv's restore.
func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is missing")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432")
	unset(t, "DB_NAME")
	unset(t, "CATALOG_PATH")
	unset(t, "PORT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DatabaseName != "testiq_db" {
		t.Errorf("DatabaseName = %q, want testiq_db", cfg.DatabaseName)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.CatalogPath != "data/questions.json" {
		t.Errorf("CatalogPath = %q, want data/questions.json", cfg.CatalogPath)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db:5432")
	t.Setenv("DB_NAME", "custom")
	t.Setenv("CATALOG_PATH", "/srv/questions.json")
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DatabaseName != "custom" {
		t.Errorf("DatabaseName = %q, want custom", cfg.DatabaseName)
	}
	if cfg.CatalogPath != "/srv/questions.json" {
		t.Errorf("CatalogPath = %q", cfg.CatalogPath)
	}
	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
}
