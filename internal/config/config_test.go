package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DATA_DIR", "STORE_BACKEND", "SESSION_FILE", "OVERDUE_DAYS", "SEED_DEFAULT_EMPLOYEES"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoreBackend != "file" || cfg.OverdueDays != 7 || !cfg.SeedDefaultEmployees {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.SessionFile != filepath.Join("data", "session.json") {
		t.Errorf("SessionFile = %q", cfg.SessionFile)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATA_DIR", "/tmp/shop")
	t.Setenv("STORE_BACKEND", "SQLite")
	t.Setenv("SESSION_FILE", "")
	t.Setenv("OVERDUE_DAYS", "14")
	t.Setenv("SEED_DEFAULT_EMPLOYEES", "false")
	t.Setenv("PDF_FONT_FILE", "/usr/share/fonts/DejaVuSans.ttf")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoreBackend != "sqlite" {
		t.Errorf("StoreBackend = %q", cfg.StoreBackend)
	}
	if cfg.SessionFile != filepath.Join("/tmp/shop", "session.json") {
		t.Errorf("SessionFile = %q", cfg.SessionFile)
	}
	if cfg.PDFFontFile != "/usr/share/fonts/DejaVuSans.ttf" {
		t.Errorf("PDFFontFile = %q", cfg.PDFFontFile)
	}
	if cfg.OverdueDays != 14 || cfg.SeedDefaultEmployees {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{"STORE_BACKEND", "redis", "STORE_BACKEND"},
		{"OVERDUE_DAYS", "0", "OVERDUE_DAYS"},
		{"OVERDUE_DAYS", "soon", "OVERDUE_DAYS"},
		{"SEED_DEFAULT_EMPLOYEES", "maybe", "SEED_DEFAULT_EMPLOYEES"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load error = %v, want mention of %s", err, tt.want)
			}
		})
	}
}
