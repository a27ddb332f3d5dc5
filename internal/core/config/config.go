package config

import (
	"fmt"
	"time"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Logging LoggingConfig   `yaml:"logging"`
	Output  OutputConfig    `yaml:"output"`
	Probes  ProbesConfig    `yaml:"probes"`
	Collect CollectorConfig `yaml:"collect"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// OutputConfig holds report output settings.
type OutputConfig struct {
	Dir string `yaml:"dir"` // directory for default-named reports
}

// ProbesConfig selects which probes run.
type ProbesConfig struct {
	Disabled []string `yaml:"disabled"` // probe names to skip
}

// CollectorConfig bounds a collection run.
type CollectorConfig struct {
	Timeout Duration `yaml:"timeout"` // e.g. "30s"
}

// IsDisabled reports whether the named probe is switched off.
func (p ProbesConfig) IsDisabled(name string) bool {
	for _, d := range p.Disabled {
		if d == name {
			return true
		}
	}
	return false
}

// Duration is a time.Duration that unmarshals from Go duration strings.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
