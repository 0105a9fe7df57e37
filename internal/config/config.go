// Package config locates git directories and manages gitrefs settings.
// Settings are read from a TOML file and can be overridden by environment
// variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	GitDir     = ".git"
	AppDir     = "gitrefs"
	ConfigFile = "config.toml"

	gitFilePrefix = "gitdir:"
)

// ErrNoGitDir is returned by FindGitDir when no .git is found up to the root.
var ErrNoGitDir = errors.New("not a git repository (or any of the parent directories)")

// Config represents gitrefs settings
type Config struct {
	LogLevel    string `toml:"log_level"`  // debug, info, warn, error
	LogFormat   string `toml:"log_format"` // text or json
	NoColor     bool   `toml:"no_color"`
	ScanWorkers int    `toml:"scan_workers"` // parallel repositories in `gitrefs scan`
	path        string // file the settings were loaded from, if any
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel:    "warn",
		LogFormat:   "text",
		ScanWorkers: 8,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/gitrefs/config.toml or the platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDir, ConfigFile), nil
}

// Load reads settings from path. A missing file yields the defaults.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		cfg.path = path
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.LogLevel = envOrDefault("GITREFS_LOG_LEVEL", c.LogLevel)
	c.LogFormat = envOrDefault("GITREFS_LOG_FORMAT", c.LogFormat)
	if v, err := strconv.ParseBool(os.Getenv("GITREFS_NO_COLOR")); err == nil {
		c.NoColor = v
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.NoColor = true
	}
}

// Validate checks setting values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q: expected debug, info, warn or error", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q: expected text or json", c.LogFormat)
	}
	if c.ScanWorkers < 1 {
		return fmt.Errorf("invalid scan_workers %d: must be at least 1", c.ScanWorkers)
	}
	return nil
}

// Path returns the file the settings were loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// FindGitDir finds the git directory by walking up from start. A .git file
// holding "gitdir: <path>", as used by worktrees and submodules, is followed.
func FindGitDir(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, GitDir)
		if info, err := os.Stat(candidate); err == nil {
			if info.IsDir() {
				return candidate, nil
			}
			return readGitFile(candidate)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoGitDir
		}
		dir = parent
	}
}

// readGitFile resolves a .git file. Relative targets are relative to the
// directory holding the file.
func readGitFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	line, _, _ := strings.Cut(string(data), "\n")
	target, ok := strings.CutPrefix(strings.TrimSpace(line), gitFilePrefix)
	if !ok {
		return "", fmt.Errorf("invalid gitfile format: %s", path)
	}
	target = strings.TrimSpace(target)
	if target == "" {
		return "", fmt.Errorf("invalid gitfile format: %s", path)
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return filepath.Clean(target), nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
