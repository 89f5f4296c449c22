// Package prefs persists user preferences in ~/.config/kiray/prefs.toml.
//
// Each preference lives under its own key. The theme is stored under
// user-theme as "light" or "dark".
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/betkiray/kiray/internal/config"
)

// Theme is a persisted theme value.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme maps a stored value to a Theme. Unknown or empty values are Light.
func ParseTheme(s string) Theme {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark
	default:
		return Light
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Prefs holds user preferences.
type Prefs struct {
	Theme Theme
}

type file struct {
	Theme string `toml:"user-theme"`
}

const defaultPrefsPath = "~/.config/kiray/prefs.toml"

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Default returns the preferences used when nothing is stored.
func Default() Prefs {
	return Prefs{Theme: Light}
}

// Load reads preferences from path. A missing file is not an error. On any
// other failure Load returns the defaults together with the error so callers
// can log it and carry on.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Default(), err
	}

	data, err := os.ReadFile(resolved)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read prefs: %w", err)
	}

	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return Default(), fmt.Errorf("parse prefs %s: %w", resolved, err)
	}
	return Prefs{Theme: ParseTheme(f.Theme)}, nil
}

// Save writes preferences to path, creating directories as needed. The file
// is replaced atomically.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(file{Theme: string(ParseTheme(string(p.Theme)))})
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	resolved, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("resolve prefs path: %w", err)
	}
	return resolved, nil
}
