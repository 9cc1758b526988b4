package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/sheetsense_test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("read timeout = %v, want 15s", cfg.Server.ReadTimeout)
	}
	if cfg.Detect.ScanWindow != 5 {
		t.Errorf("scan window = %d, want 5", cfg.Detect.ScanWindow)
	}
	if cfg.Detect.MapConfidence != 0.8 {
		t.Errorf("map confidence = %v, want 0.8", cfg.Detect.MapConfidence)
	}
	if cfg.Detect.ScanConfidence != 0.7 {
		t.Errorf("scan confidence = %v, want 0.7", cfg.Detect.ScanConfidence)
	}
	if !cfg.Rate.Enabled {
		t.Error("rate limiting disabled by default")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("logging defaults = %s/%s", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/sheetsense_test")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DETECT_MAP_CONFIDENCE", "0.9")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Detect.MapConfidence != 0.9 {
		t.Errorf("map confidence = %v, want 0.9", cfg.Detect.MapConfidence)
	}
	if cfg.Rate.Enabled {
		t.Error("rate limiting should be disabled")
	}
}

func TestLoadDatabaseURLAlternate(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_URL", "postgres://localhost/alt")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.URL != "postgres://localhost/alt" {
		t.Errorf("database URL = %q", cfg.Database.URL)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}
}

func TestValidateRejectsInvertedThresholds(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/sheetsense_test")
	t.Setenv("DETECT_SCAN_CONFIDENCE", "0.95")
	t.Setenv("DETECT_MAP_CONFIDENCE", "0.8")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "scan confidence") {
		t.Fatalf("expected threshold ordering error, got %v", err)
	}
}

func TestLoadInvalidValue(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/sheetsense_test")
	t.Setenv("SERVER_PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid SERVER_PORT")
	}
}
