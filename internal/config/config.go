// Package config loads the simulator configuration: a YAML file, an optional
// .env file, environment overrides, and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/coalition/pkg/logging"
)

const (
	// AppDir is the directory created under the user config dir.
	AppDir = "coalition"

	// DefaultAddr keeps the RPC server on loopback.
	DefaultAddr = "127.0.0.1:8080"

	// MaxSearchSize caps search.max_size; the search is exhaustive.
	MaxSearchSize = 8
)

const defaultConfigYAML = `# coalition configuration
version: 1

# Where the selection snapshot, preferences and exported reports live.
# db_path: ~/.config/coalition/coalition.db

# Party catalog. Leave unset to use the built-in Bihar 2025 results.
# catalog_path: ./catalog.yaml

log_level: info

search:
  # Largest coalition the suggestions consider.
  max_size: 3
  # How many suggestions to show.
  suggestion_limit: 5
  # Skip branches that can no longer reach the majority mark.
  prune: true

server:
  addr: 127.0.0.1:8080
  # Directory of a browser front-end to serve next to the API.
  # static_path: ./web
`

// SearchConfig tunes the coalition search.
type SearchConfig struct {
	MaxSize         int  `yaml:"max_size"`
	SuggestionLimit int  `yaml:"suggestion_limit"`
	Prune           bool `yaml:"prune"`
}

// ServerConfig configures `coalition serve`.
type ServerConfig struct {
	Addr       string `yaml:"addr"`
	StaticPath string `yaml:"static_path,omitempty"`
}

// Config models config.yaml.
type Config struct {
	Version     int          `yaml:"version"`
	DBPath      string       `yaml:"db_path"`
	CatalogPath string       `yaml:"catalog_path,omitempty"`
	LogLevel    string       `yaml:"log_level"`
	LogFile     string       `yaml:"log_file,omitempty"`
	Search      SearchConfig `yaml:"search"`
	Server      ServerConfig `yaml:"server"`
}

// Dir returns the per-user configuration directory, falling back to
// ./.coalition when the platform has none.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".coalition"
	}
	return filepath.Join(base, AppDir)
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Default returns the built-in configuration.
func Default() *Config {
	dir := Dir()
	return &Config{
		Version:  1,
		DBPath:   filepath.Join(dir, "coalition.db"),
		LogLevel: "info",
		LogFile:  filepath.Join(dir, "logs", "coalition.log"),
		Search: SearchConfig{
			MaxSize:         3,
			SuggestionLimit: 5,
			Prune:           true,
		},
		Server: ServerConfig{Addr: DefaultAddr},
	}
}

// Load builds the configuration from defaults, the YAML file at path, and
// environment overrides, in that order. An empty path reads DefaultPath and
// tolerates it being absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		slog.Debug("No config file found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func applyEnv(cfg *Config) {
	cfg.DBPath = getEnv("COALITION_DB_PATH", cfg.DBPath)
	cfg.CatalogPath = getEnv("COALITION_CATALOG", cfg.CatalogPath)
	cfg.Server.Addr = getEnv("COALITION_ADDR", cfg.Server.Addr)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	if v := os.Getenv("COALITION_MAX_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Search.MaxSize = n
		} else {
			slog.Warn("Ignoring invalid COALITION_MAX_SIZE", "value", v)
		}
	}
}

// Validate checks the values a run depends on.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("config: db_path is required")
	}
	if c.Search.MaxSize < 1 || c.Search.MaxSize > MaxSearchSize {
		return fmt.Errorf("config: search.max_size must be between 1 and %d, got %d", MaxSearchSize, c.Search.MaxSize)
	}
	if c.Search.SuggestionLimit < 1 {
		return fmt.Errorf("config: search.suggestion_limit must be positive, got %d", c.Search.SuggestionLimit)
	}
	if c.Server.Addr == "" {
		return errors.New("config: server.addr is required")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// LoadEnvFile loads environment variables from a .env file.
// If envFile is empty, it attempts to load .env from the current directory.
// Returns true if a file was loaded, false otherwise.
func LoadEnvFile(envFile string) bool {
	if envFile == "" {
		envFile = ".env"
	}

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		slog.Debug("No .env file found", "path", envFile)
		return false
	}

	if err := godotenv.Load(envFile); err != nil {
		slog.Warn("Failed to load .env file", "path", envFile, "error", err)
		return false
	}

	slog.Debug("Loaded .env file", "path", envFile)
	return true
}

// WriteDefault writes the commented default config.yaml to path.
// An existing file is left alone unless overwrite is set.
func WriteDefault(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config: %s already exists", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: stat %s: %w", path, err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: ensure dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
