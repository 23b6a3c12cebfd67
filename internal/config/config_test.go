package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Capture.Lines != 30 {
		t.Errorf("Capture.Lines = %d, want 30", cfg.Capture.Lines)
	}
	if cfg.Validate.AgeThresholdSeconds != 30 {
		t.Errorf("Validate.AgeThresholdSeconds = %d, want 30", cfg.Validate.AgeThresholdSeconds)
	}
	if cfg.Cycle.Mode != "priority" {
		t.Errorf("Cycle.Mode = %q, want %q", cfg.Cycle.Mode, "priority")
	}
	if cfg.Status.Format != DefaultStatusFormat {
		t.Errorf("Status.Format = %q, want default", cfg.Status.Format)
	}
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `capture:
  lines: 50
validate:
  age_threshold_seconds: 120
cycle:
  mode: flat
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}

	if cfg.Capture.Lines != 50 {
		t.Errorf("Capture.Lines = %d, want 50", cfg.Capture.Lines)
	}
	if cfg.Validate.AgeThresholdSeconds != 120 {
		t.Errorf("Validate.AgeThresholdSeconds = %d, want 120", cfg.Validate.AgeThresholdSeconds)
	}
	if cfg.Cycle.Mode != "flat" {
		t.Errorf("Cycle.Mode = %q, want %q", cfg.Cycle.Mode, "flat")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
	// Unset sections keep defaults.
	if cfg.Status.Format != DefaultStatusFormat {
		t.Errorf("Status.Format = %q, want default", cfg.Status.Format)
	}
}

func TestLoadFromPath_Missing(t *testing.T) {
	if _, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
