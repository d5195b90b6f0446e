// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the name of the TOML config file.
const ConfigFileName = "config.toml"

// Environment variable overrides.
const (
	envDataDir  = "TASKPOCKET_DATA_DIR"
	envLogLevel = "TASKPOCKET_LOG_LEVEL"
)

// Config holds the application configuration.
type Config struct {
	DataDir string    `toml:"data_dir"` // Directory for persisted snapshots and logs
	Log     LogConfig `toml:"log"`      // [log] settings
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// Loader loads configuration from a TOML file with environment
// overrides. Precedence: defaults <- file <- environment.
type Loader struct {
	configDir string
}

// NewLoader creates a Loader resolving the config directory from
// XDG_CONFIG_HOME (falling back to ~/.config).
func NewLoader() *Loader {
	return &Loader{configDir: defaultConfigDir()}
}

// NewLoaderWithDir creates a Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(configDir string) *Loader {
	return &Loader{configDir: configDir}
}

func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taskpocket")
}

func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "taskpocket")
}

// NewDefaultConfig returns the built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		DataDir: defaultDataDir(),
		Log:     LogConfig{Level: "info"},
	}
}

// Path returns the location of the config file, whether or not it
// exists.
func (l *Loader) Path() string {
	if l.configDir == "" {
		return ""
	}
	return filepath.Join(l.configDir, ConfigFileName)
}

// WriteDefault writes a config file with the built-in defaults. An
// existing file is left alone; created reports whether a file was
// written.
func (l *Loader) WriteDefault() (path string, created bool, err error) {
	path = l.Path()
	if path == "" {
		return "", false, errors.New("config directory could not be resolved")
	}
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return path, false, err
	}

	content, err := toml.Marshal(NewDefaultConfig())
	if err != nil {
		return path, false, fmt.Errorf("marshal defaults: %w", err)
	}
	if err := os.MkdirAll(l.configDir, 0o750); err != nil {
		return path, false, fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return path, false, fmt.Errorf("write %s: %w", path, err)
	}
	return path, true, nil
}

// Load returns the merged configuration. A missing config file is not
// an error; a malformed one is.
func (l *Loader) Load() (*Config, error) {
	// Pick up a .env from the working directory if present.
	_ = godotenv.Load()

	cfg := NewDefaultConfig()

	if l.configDir != "" {
		path := filepath.Join(l.configDir, ConfigFileName)
		content, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(content, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// Defaults apply.
		default:
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	if v := os.Getenv(envDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.Log.Level = v
	}

	return cfg, nil
}
