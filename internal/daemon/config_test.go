package daemon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("expected default host 127.0.0.1, got %s", cfg.API.Host)
	}
	if cfg.API.Port != 7315 {
		t.Errorf("expected default port 7315, got %d", cfg.API.Port)
	}
	if !cfg.Telemetry.Prometheus {
		t.Error("expected Prometheus enabled by default")
	}
	if cfg.Data.Dir == "" {
		t.Error("expected non-empty data dir")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("HABITQUEST_HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.API.Port != DefaultConfig().API.Port {
		t.Errorf("expected defaults when no config file exists, got port %d", cfg.API.Port)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HABITQUEST_HOME", home)

	cfg := DefaultConfig()
	cfg.API.Port = 9000
	cfg.Telemetry.Prometheus = false

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, "config.toml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.API.Port != 9000 {
		t.Errorf("expected port 9000 after round trip, got %d", loaded.API.Port)
	}
	if loaded.Telemetry.Prometheus {
		t.Error("expected Prometheus disabled after round trip")
	}
}

func TestHabitHomeEnvOverride(t *testing.T) {
	t.Setenv("HABITQUEST_HOME", "/tmp/custom-habit-home")

	if got := HabitHome(); got != "/tmp/custom-habit-home" {
		t.Errorf("expected env override, got %s", got)
	}
}
