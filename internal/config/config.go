package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Backend selects which repository implementation backs the store.
type Backend string

const (
	BackendCSV    Backend = "csv"
	BackendSQLite Backend = "sqlite"
)

// Config represents the top-level rayfin.yaml configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
}

// StorageConfig selects and locates the backing store.
type StorageConfig struct {
	Backend Backend `yaml:"backend"`
	CSVPath string  `yaml:"csv_path"`
	DBPath  string  `yaml:"db_path"`
}

// Default returns the configuration used when no rayfin.yaml exists.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendCSV,
			CSVPath: "data/expenses.csv",
			DBPath:  "data/rayfin.db",
		},
	}
}

// Load reads a rayfin.yaml file from disk and applies environment
// overrides. A missing file is not an error; defaults are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendCSV, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q (want %q or %q)",
			c.Storage.Backend, BackendCSV, BackendSQLite)
	}
	if c.Storage.CSVPath == "" {
		return errors.New("csv_path must not be empty")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must not be empty")
	}
	return nil
}

// applyEnv lets the environment (including a .env file loaded at
// startup) override file values.
func applyEnv(cfg *Config) {
	if v := os.Getenv("RAYFIN_BACKEND"); v != "" {
		cfg.Storage.Backend = Backend(v)
	}
	if v := os.Getenv("RAYFIN_CSV_PATH"); v != "" {
		cfg.Storage.CSVPath = v
	}
	if v := os.Getenv("RAYFIN_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
}
