package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir = ".brailler"
	DefaultTimeout = 10 * time.Second
	DefaultTheme   = "dark"
	DefaultLang    = "es"
	DefaultSignage = "door"
	DefaultUserID  = 1

	// EnvPrefix namespaces environment overrides, e.g. BRAILLER_API_URL.
	EnvPrefix = "BRAILLER_"
)

type Config struct {
	DataDir     string        `yaml:"data_dir" env:"DATA_DIR"`
	APIURL      string        `yaml:"api_url" env:"API_URL"`
	UserID      int64         `yaml:"user_id" env:"USER_ID"`
	Timeout     time.Duration `yaml:"timeout" env:"TIMEOUT"`
	SaveHistory bool          `yaml:"save_history" env:"SAVE_HISTORY"`
	Theme       string        `yaml:"theme" env:"THEME"`
	Lang        string        `yaml:"lang" env:"LANG"`
	LogLevel    string        `yaml:"log_level" env:"LOG_LEVEL"`
	Signage     string        `yaml:"signage" env:"SIGNAGE"`
	Codec       CodecConfig   `yaml:"codec" envPrefix:"CODEC_"`
}

type CodecConfig struct {
	Normalize  bool `yaml:"normalize" env:"NORMALIZE"`
	NumberRuns bool `yaml:"number_runs" env:"NUMBER_RUNS"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:     DefaultDataDir,
		UserID:      DefaultUserID,
		Timeout:     DefaultTimeout,
		SaveHistory: true,
		Theme:       DefaultTheme,
		Lang:        DefaultLang,
		LogLevel:    "info",
		Signage:     DefaultSignage,
		Codec: CodecConfig{
			Normalize: true,
		},
	}
}

// Load reads a YAML file over the defaults. A missing file is not an error
// when path is empty.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from BRAILLER_* environment variables.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(env.Options{Prefix: EnvPrefix})
}

func (c *Config) applyEnv(opts env.Options) error {
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.APIURL != "" && !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		return fmt.Errorf("api_url must be an http(s) url, got %q", c.APIURL)
	}
	return nil
}

// HistoryPath is the SQLite database inside the data directory.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.DataDir, "history.db")
}

// Level maps LogLevel to a slog level, defaulting to info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
