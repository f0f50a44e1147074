// Package config holds the settings of simulation runs and of the HTTP server.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SimConfig holds the knobs of one simulation batch.
type SimConfig struct {
	Quantum  int    `yaml:"quantum"`   // Round-robin quantum (default 2)
	Seed     uint64 `yaml:"seed"`      // Seed for the simulated register fill
	MaxTicks int    `yaml:"max_ticks"` // Abort a run after this many ticks; 0 means unbounded
}

// DefaultSimConfig returns sensible defaults.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Quantum: 2,
	}
}

// ServerConfig holds configuration for the simulation server.
type ServerConfig struct {
	Addr         string `yaml:"addr"`          // Listen address (default ":8080")
	LogLevel     string `yaml:"log_level"`     // Log level: debug, info, warn, error
	LogFormat    string `yaml:"log_format"`    // Log format: text, json
	MaxProcesses int    `yaml:"max_processes"` // Largest accepted process list per request
	MaxTicks     int    `yaml:"max_ticks"`     // Tick limit applied to every run
}

// DefaultServerConfig returns sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:         ":8080",
		LogLevel:     "info",
		LogFormat:    "text",
		MaxProcesses: 1000,
		MaxTicks:     1_000_000,
	}
}

// Validate rejects limits that would make every request fail.
func (c ServerConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.MaxProcesses < 1 {
		return fmt.Errorf("max_processes must be >= 1, got %d", c.MaxProcesses)
	}
	if c.MaxTicks < 0 {
		return fmt.Errorf("max_ticks must be >= 0, got %d", c.MaxTicks)
	}
	return nil
}

// LoadServerConfig reads a YAML file over DefaultServerConfig. Keys absent
// from the file keep their defaults.
func LoadServerConfig(path string) (ServerConfig, error) {
	cfg := DefaultServerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read server config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse server config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("server config %s: %w", path, err)
	}
	return cfg, nil
}
