package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
data:
  location: https://example.org/events.json
  timeout: 30s
state:
  dir: /tmp/schoolcal-test
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Data.Location != "https://example.org/events.json" {
		t.Errorf("Location = %q", cfg.Data.Location)
	}
	if cfg.Data.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Data.Timeout)
	}
	if cfg.State.Dir != "/tmp/schoolcal-test" {
		t.Errorf("State.Dir = %q", cfg.State.Dir)
	}
	// Untouched section keeps its default.
	if cfg.Export.Path != "schoolcal.ics" {
		t.Errorf("Export.Path = %q, want default", cfg.Export.Path)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Data.Location != "events.json" {
		t.Errorf("Location = %q", cfg.Data.Location)
	}
	if cfg.Data.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v", cfg.Data.Timeout)
	}
}
