package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_EnvSubstitution(t *testing.T) {
	// Setup env var
	os.Setenv("TEST_OUTPUT_DIR", "/var/reports")
	defer os.Unsetenv("TEST_OUTPUT_DIR")

	// Create temp config file
	configContent := `
output:
  dir: ${TEST_OUTPUT_DIR}
`
	tmpFile, err := os.CreateTemp("", "config_*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write([]byte(configContent)); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tmpFile.Close()

	// Load config
	cfg, err := Load(tmpFile.Name())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Output.Dir != "/var/reports" {
		t.Errorf("Expected dir /var/reports, got %s", cfg.Output.Dir)
	}
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load("does-not-exist.yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Expected level info, got %s", cfg.Logging.Level)
	}
	if cfg.Output.Dir != "." {
		t.Errorf("Expected dir ., got %s", cfg.Output.Dir)
	}
	if cfg.Collect.Timeout.Std() != 60*time.Second {
		t.Errorf("Expected 60s timeout, got %v", cfg.Collect.Timeout.Std())
	}
}

func TestLoad_DisabledProbes(t *testing.T) {
	configContent := `
probes:
  disabled:
    - hardware
    - com
collect:
  timeout: 30s
`
	tmpFile, err := os.CreateTemp("", "config_*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write([]byte(configContent)); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tmpFile.Close()

	cfg, err := Load(tmpFile.Name())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !cfg.Probes.IsDisabled("hardware") || !cfg.Probes.IsDisabled("com") {
		t.Errorf("Expected hardware and com disabled, got %v", cfg.Probes.Disabled)
	}
	if cfg.Probes.IsDisabled("os") {
		t.Error("os should not be disabled")
	}
	if cfg.Collect.Timeout.Std() != 30*time.Second {
		t.Errorf("Expected 30s timeout, got %v", cfg.Collect.Timeout.Std())
	}
}
