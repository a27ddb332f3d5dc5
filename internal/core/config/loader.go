package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Default returns the configuration used when no file is present. The
// collector must work on a bare machine.
func Default() *AppConfig {
	return &AppConfig{
		Logging: LoggingConfig{Level: "info"},
		Output:  OutputConfig{Dir: "."},
		Collect: CollectorConfig{Timeout: Duration(60 * time.Second)},
	}
}

// Load reads configuration from a YAML file. A missing file is not an
// error; the defaults are returned instead.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expandedData), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults if necessary
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "."
	}
	if cfg.Collect.Timeout == 0 {
		cfg.Collect.Timeout = Duration(60 * time.Second)
	}

	return cfg, nil
}
