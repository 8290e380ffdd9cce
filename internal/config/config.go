// Package config loads roster settings.
//
// Values are layered: built-in defaults, then an optional YAML file named by
// ROSTER_CONFIG (or the --config flag), then ROSTER_* environment variables.
// Command-line flags are applied last by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/roster/internal/codec"
	"github.com/alexanderramin/roster/internal/domain"
	"github.com/alexanderramin/roster/internal/store"
	"gopkg.in/yaml.v3"
)

// Config is the full set of roster settings.
type Config struct {
	// Backend selects the store adapter: sqlite, file or memory.
	Backend string `yaml:"backend"`

	// DBPath is the SQLite database file (sqlite backend).
	DBPath string `yaml:"db_path"`

	// DataDir holds one JSON file per key (file backend).
	DataDir string `yaml:"data_dir"`

	// StoreKey is the key the people list is stored under.
	StoreKey string `yaml:"store_key"`

	// Codec encodes SQLite values: json or cbor.
	Codec string `yaml:"codec"`

	MaxPeople         int `yaml:"max_people"`
	MaxTasksPerPerson int `yaml:"max_tasks_per_person"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the zap logger. With no File, logging is disabled so
// command output stays clean.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the built-in settings rooted at home/.roster.
func Default(home string) Config {
	root := filepath.Join(home, ".roster")
	return Config{
		Backend:           store.BackendSQLite,
		DBPath:            filepath.Join(root, "roster.db"),
		DataDir:           filepath.Join(root, "data"),
		StoreKey:          store.DefaultKey,
		Codec:             codec.NameJSON,
		MaxPeople:         domain.DefaultMaxPeople,
		MaxTasksPerPerson: domain.DefaultMaxTasksPerPerson,
		Log:               LogConfig{Level: "info"},
	}
}

// Load builds a Config from defaults, the YAML file at path (falling back to
// ROSTER_CONFIG when path is empty) and environment overrides read through
// getenv. The result is not validated: callers apply flag overrides first and
// then call Validate.
func Load(path string, getenv func(string) string) (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	cfg := Default(home)

	if path == "" {
		path = getenv("ROSTER_CONFIG")
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(getenv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergeFile overlays the YAML file on top of cfg. Keys absent from the file
// keep their current value.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("ROSTER_BACKEND"); v != "" {
		c.Backend = v
	}
	if v := getenv("ROSTER_DB"); v != "" {
		c.DBPath = v
	}
	if v := getenv("ROSTER_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := getenv("ROSTER_STORE_KEY"); v != "" {
		c.StoreKey = v
	}
	if v := getenv("ROSTER_CODEC"); v != "" {
		c.Codec = v
	}
	if v := getenv("ROSTER_MAX_PEOPLE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ROSTER_MAX_PEOPLE: %w", err)
		}
		c.MaxPeople = n
	}
	if v := getenv("ROSTER_MAX_TASKS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ROSTER_MAX_TASKS: %w", err)
		}
		c.MaxTasksPerPerson = n
	}
	if v := getenv("ROSTER_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("ROSTER_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	return nil
}

// Validate rejects settings no backend can work with.
func (c Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Backend) {
	case store.BackendSQLite, store.BackendFile, store.BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("backend %q must be sqlite, file or memory", c.Backend))
	}
	if _, err := codec.ByName(c.Codec); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(c.StoreKey) == "" {
		errs = append(errs, errors.New("store_key must not be empty"))
	}
	if c.MaxPeople < 0 {
		errs = append(errs, fmt.Errorf("max_people must be >= 0, got %d", c.MaxPeople))
	}
	if c.MaxTasksPerPerson < 0 {
		errs = append(errs, fmt.Errorf("max_tasks_per_person must be >= 0, got %d", c.MaxTasksPerPerson))
	}
	return errors.Join(errs...)
}

// StoreOptions maps the config onto store.Open options.
func (c Config) StoreOptions() store.Options {
	return store.Options{
		Backend: c.Backend,
		DBPath:  c.DBPath,
		DataDir: c.DataDir,
		Codec:   c.Codec,
	}
}
