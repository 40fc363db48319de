package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds the cdhist configuration
type Config struct {
	Size           int    `toml:"size"`
	HistoryFile    string `toml:"history_file"`
	PurgeAlways    bool   `toml:"purge_always"`
	GitRelative    bool   `toml:"git_relative"`
	NoUser         bool   `toml:"no_user"`
	NumLines       int    `toml:"num_lines"`
	FollowPhysical bool   `toml:"follow_physical"`
	Fuzzy          bool   `toml:"fuzzy"`
}

const (
	// DefaultSize is the default maximum number of history entries
	DefaultSize = 50

	// DefaultHistoryFile is the default history location
	DefaultHistoryFile = "~/.cd_history"
)

// Environment variables consulted by Load.
const (
	EnvHistoryFile = "CDHIST_FILE"
	EnvSize        = "CDHIST_SIZE"
	envSizeLegacy  = "CDHISTSIZE"
)

// Default returns the default configuration
func Default() Config {
	return Config{
		Size:        DefaultSize,
		HistoryFile: DefaultHistoryFile,
		NumLines:    -1,
	}
}

// HistoryPath returns the history file with ~ expanded.
func (c *Config) HistoryPath() (string, error) {
	return expandPath(c.HistoryFile)
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return fmt.Errorf("%s must not be empty", fieldName)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// Validate checks value ranges after all sources have been applied.
func (c *Config) Validate() error {
	if c.Size < 0 {
		return fmt.Errorf("size must not be negative, got: %d", c.Size)
	}
	return ValidatePath(c.HistoryFile, "history_file")
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the path to the config file
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cdhist", "config.toml"), nil
}

// Load reads config from ~/.config/cdhist/config.toml and applies
// environment overrides.
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return applyEnv(Default(), os.Getenv)
	}
	return LoadFile(path, os.Getenv)
}

// LoadFile reads config from path. getenv supplies environment overrides.
// On any error the returned config is Default() with overrides applied, so
// callers can warn and carry on.
func LoadFile(path string, getenv func(string) string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(Default(), getenv)
		}
		cfg, _ := applyEnv(Default(), getenv)
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		def, _ := applyEnv(Default(), getenv)
		return def, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg, err = applyEnv(cfg, getenv)
	if err != nil {
		def, _ := applyEnv(Default(), getenv)
		return def, err
	}

	if err := cfg.Validate(); err != nil {
		def, _ := applyEnv(Default(), getenv)
		return def, err
	}

	return cfg, nil
}

// applyEnv overrides history settings from the environment.
func applyEnv(cfg Config, getenv func(string) string) (Config, error) {
	if v := getenv(EnvHistoryFile); v != "" {
		if err := ValidatePath(v, EnvHistoryFile); err != nil {
			return cfg, err
		}
		cfg.HistoryFile = v
	}

	size := getenv(EnvSize)
	name := EnvSize
	if size == "" {
		size = getenv(envSizeLegacy)
		name = envSizeLegacy
	}
	if size != "" {
		n, err := strconv.Atoi(size)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("invalid %s %q: must be a non-negative integer", name, size)
		}
		cfg.Size = n
	}

	return cfg, nil
}
