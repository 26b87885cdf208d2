// Package config loads the piste configuration file and its environment overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/tidwall/jsonc"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Environment variables that override the config file.
const (
	EnvBackend    = "PISTE_BACKEND"
	EnvDataDir    = "PISTE_DATA_DIR"
	EnvLogLevel   = "PISTE_LOG_LEVEL"
	EnvQuotaBytes = "PISTE_QUOTA_BYTES"
	EnvUser       = "PISTE_USER"
)

// CurrentVersion is written into new config files.
const CurrentVersion = "1"

// dirName is the config directory, relative to the working or home directory.
const dirName = ".piste"

// ErrNoConfig is returned by LoadConfig when no config file exists.
var ErrNoConfig = errors.New("no piste config found")

// Config represents the flat piste configuration
type Config struct {
	Version    string `json:"version"`
	Backend    string `json:"backend"`               // "sqlite", "file" or "memory"
	DataDir    string `json:"data_dir,omitempty"`    // defaults to the config directory
	KeyPrefix  string `json:"key_prefix,omitempty"`  // namespaces collection keys
	QuotaBytes int    `json:"quota_bytes,omitempty"` // memory backend only; 0 = unlimited
	LogLevel   string `json:"log_level,omitempty"`   // debug, info, warn, error
	LogFormat  string `json:"log_format,omitempty"`  // text or json
	User       string `json:"user,omitempty"`        // actor recorded in the activity log
}

// Default returns the configuration used when nothing is configured.
// dir is the directory holding .piste.
func Default(dir string) *Config {
	return &Config{
		Version:   CurrentVersion,
		Backend:   BackendSQLite,
		DataDir:   filepath.Join(dir, dirName),
		KeyPrefix: "fencing_tracker_",
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// LoadConfig reads .piste/config.json from dir, falling back to the home
// directory. Comments and trailing commas are allowed.
// Returns ErrNoConfig if neither file exists.
func LoadConfig(dir string) (*Config, error) {
	candidates := []string{dir}
	if home, err := os.UserHomeDir(); err == nil && home != dir {
		candidates = append(candidates, home)
	}

	for _, base := range candidates {
		path := filepath.Join(base, dirName, "config.json")
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		cfg := Default(base)
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		if cfg.DataDir != "" && !filepath.IsAbs(cfg.DataDir) {
			cfg.DataDir = filepath.Join(base, dirName, cfg.DataDir)
		}
		return cfg, nil
	}

	return nil, ErrNoConfig
}

// Resolve loads the config for dir (or the defaults when there is none),
// applies environment overrides and validates the result.
// A .env file in dir is loaded first; existing environment variables win.
func Resolve(dir string) (*Config, error) {
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	cfg, err := LoadConfig(dir)
	if errors.Is(err, ErrNoConfig) {
		cfg = Default(dir)
	} else if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvBackend); v != "" {
		c.Backend = strings.ToLower(v)
	}
	if v := getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := getenv(EnvUser); v != "" {
		c.User = v
	}
	if v := getenv(EnvQuotaBytes); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvQuotaBytes, v, err)
		}
		c.QuotaBytes = n
	}
	return nil
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendFile:
		if c.DataDir == "" {
			return fmt.Errorf("backend %s needs a data_dir", c.Backend)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown backend %q (want sqlite, file or memory)", c.Backend)
	}
	if c.QuotaBytes < 0 {
		return fmt.Errorf("quota_bytes cannot be negative (got %d)", c.QuotaBytes)
	}
	return nil
}

// SaveConfig writes config.json to dir/.piste
func SaveConfig(dir string, cfg *Config) error {
	configDir := filepath.Join(dir, dirName)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s dir: %w", dirName, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(configDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Path returns the config file path for dir.
func Path(dir string) string {
	return filepath.Join(dir, dirName, "config.json")
}
