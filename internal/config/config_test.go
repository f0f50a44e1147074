package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadServerConfig_OverridesDefaults(t *testing.T) {
	path := writeFile(t, "addr: \":9090\"\nlog_format: json\nmax_processes: 50\n")

	cfg, err := LoadServerConfig(path)
	if err != nil {
		t.Fatalf("LoadServerConfig: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Addr)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
	if cfg.MaxProcesses != 50 {
		t.Errorf("MaxProcesses = %d, want 50", cfg.MaxProcesses)
	}
	// Untouched keys keep their defaults.
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.MaxTicks != DefaultServerConfig().MaxTicks {
		t.Errorf("MaxTicks = %d, want default", cfg.MaxTicks)
	}
}

func TestLoadServerConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") }},
		{"bad yaml", func(t *testing.T) string { return writeFile(t, "addr: [unterminated\n") }},
		{"invalid limit", func(t *testing.T) string { return writeFile(t, "max_processes: 0\n") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadServerConfig(tt.path(t)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	if err := DefaultServerConfig().Validate(); err != nil {
		t.Errorf("default server config invalid: %v", err)
	}
	if q := DefaultSimConfig().Quantum; q != 2 {
		t.Errorf("default quantum = %d, want 2", q)
	}
}
