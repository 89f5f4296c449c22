package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// ErrUnknownVariant is returned for a variant other than user or admin.
var ErrUnknownVariant = errors.New("unknown variant")

// Config holds the settings kiray reads at startup.
type Config struct {
	Variant  string
	LogFile  string
	LogLevel string
}

const (
	defaultConfigPath = "~/.config/kiray/config.toml"
	defaultLogFile    = "~/.local/state/kiray/kiray.log"
	defaultVariant    = "user"
	defaultLogLevel   = "info"
)

var variants = []string{"user", "admin"}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Variant:  defaultVariant,
		LogFile:  mustExpand(defaultLogFile),
		LogLevel: defaultLogLevel,
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load reads the config at path, falling back to defaults when the file is
// missing. An empty path uses ~/.config/kiray/config.toml.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Variant  string `toml:"variant"`
		LogFile  string `toml:"log_file"`
		LogLevel string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Config{
		Variant:  strings.ToLower(strings.TrimSpace(raw.Variant)),
		LogFile:  strings.TrimSpace(raw.LogFile),
		LogLevel: strings.ToLower(strings.TrimSpace(raw.LogLevel)),
	}
	if cfg.Variant == "" {
		cfg.Variant = defaultVariant
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaultLogFile
	}
	cfg.LogFile = mustExpand(cfg.LogFile)
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithVariant returns a copy with the variant overridden. An empty name
// keeps the current value.
func (c Config) WithVariant(name string) (Config, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return c, nil
	}
	c.Variant = name
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the variant name.
func (c Config) Validate() error {
	for _, v := range variants {
		if c.Variant == v {
			return nil
		}
	}
	return fmt.Errorf("%w %q (want one of %s)", ErrUnknownVariant, c.Variant, strings.Join(variants, ", "))
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath trims path, expands a leading ~ to the home directory and
// makes the result absolute.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
