// Package reprocmp compares the numeric results of a paper with those of its
// reproductions.
package reprocmp

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// StoreDriver selects the persistence backend.
type StoreDriver string

const (
	// DriverBadger stores documents in a BadgerDB directory.
	DriverBadger StoreDriver = "badger"
	// DriverMemory keeps documents for the lifetime of the process.
	DriverMemory StoreDriver = "memory"
)

// Config is the file-backed configuration.
type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

// StoreConfig configures persistence.
type StoreConfig struct {
	// Driver is badger or memory.
	Driver StoreDriver `yaml:"driver"`
	// Path is the BadgerDB directory.
	Path string `yaml:"path"`
	// InMemory runs BadgerDB without disk files.
	InMemory bool `yaml:"in_memory"`
	// SyncWrites fsyncs every commit.
	// If nil, defaults to true unless InMemory is set.
	SyncWrites *bool `yaml:"sync_writes"`
}

// LoggingConfig configures the slog logger.
type LoggingConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// OutputConfig configures command output.
type OutputConfig struct {
	// Pretty indents JSON output.
	Pretty bool `yaml:"pretty"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			Driver: DriverBadger,
			Path:   "./data",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig reads a YAML file over the defaults. A missing file yields the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated values and required paths.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverBadger:
		if c.Store.Path == "" && !c.Store.InMemory {
			return fmt.Errorf("store.path is required for the badger driver: %w", ErrInvalidConfig)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("store.driver %q: %w", c.Store.Driver, ErrInvalidConfig)
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format %q: %w", c.Logging.Format, ErrInvalidConfig)
	}
	return nil
}

// ShouldSyncWrites returns whether commits are fsynced.
func (s StoreConfig) ShouldSyncWrites() bool {
	if s.SyncWrites != nil {
		return *s.SyncWrites
	}
	return !s.InMemory
}

// SlogLevel maps Level to a slog.Level.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("logging.level %q: %w", l.Level, ErrInvalidConfig)
}

// NewLogger builds a logger writing to w.
func (l LoggingConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := l.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
