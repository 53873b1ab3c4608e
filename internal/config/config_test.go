package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DataDir != DefaultDataDir {
		t.Errorf("expected data dir %s, got %s", DefaultDataDir, cfg.DataDir)
	}
	if cfg.Timeout <= 0 {
		t.Error("timeout should be positive")
	}
	if !cfg.Codec.Normalize {
		t.Error("normalization should be on by default")
	}
	if cfg.Codec.NumberRuns {
		t.Error("number runs should be off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "brailler.yaml")

	cfg := DefaultConfig()
	cfg.APIURL = "https://example.test/api"
	cfg.Timeout = 3 * time.Second
	cfg.Codec.NumberRuns = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.APIURL != cfg.APIURL {
		t.Errorf("expected api url %s, got %s", cfg.APIURL, loaded.APIURL)
	}
	if loaded.Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %s", loaded.Timeout)
	}
	if !loaded.Codec.NumberRuns {
		t.Error("number_runs not persisted")
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("theme: contrast\ntimeout: 250ms\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Theme != "contrast" {
		t.Errorf("expected theme contrast, got %s", cfg.Theme)
	}
	if cfg.Timeout != 250*time.Millisecond {
		t.Errorf("expected timeout 250ms, got %s", cfg.Timeout)
	}
	if cfg.Lang != DefaultLang {
		t.Errorf("expected default lang, got %s", cfg.Lang)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("timeout: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}

	cfg, err := Load("")
	if err != nil || cfg == nil {
		t.Errorf("empty path should yield defaults, got %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.applyEnv(env.Options{
		Prefix: EnvPrefix,
		Environment: map[string]string{
			"BRAILLER_API_URL":           "http://localhost:8080/api",
			"BRAILLER_TIMEOUT":           "2s",
			"BRAILLER_CODEC_NUMBER_RUNS": "true",
		},
	})
	if err != nil {
		t.Fatalf("applyEnv failed: %v", err)
	}

	if cfg.APIURL != "http://localhost:8080/api" {
		t.Errorf("api url not overridden: %s", cfg.APIURL)
	}
	if cfg.Timeout != 2*time.Second {
		t.Errorf("timeout not overridden: %s", cfg.Timeout)
	}
	if !cfg.Codec.NumberRuns {
		t.Error("number runs not overridden")
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("unset variables must keep values, theme = %s", cfg.Theme)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty data dir", func(c *Config) { c.DataDir = " " }},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }},
		{"bad api url", func(c *Config) { c.APIURL = "ftp://x" }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.LogLevel = tt.in
		if got := cfg.Level(); got != tt.want {
			t.Errorf("Level(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
