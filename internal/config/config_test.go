package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Variant != defaultVariant {
		t.Fatalf("Variant = %q, want %q", cfg.Variant, defaultVariant)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}

	wantLogFile, err := ExpandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("ExpandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLogFile {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLogFile)
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "kiray")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`variant = "admin"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Variant != "admin" {
		t.Fatalf("Variant = %q, want admin", cfg.Variant)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
variant = "  Admin  "
log_file = "  ~/logs/kiray.log  "
log_level = " DEBUG "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Variant != "admin" {
		t.Fatalf("Variant = %q, want %q", cfg.Variant, "admin")
	}
	if cfg.LogFile != filepath.Join(home, "logs", "kiray.log") {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
variant = "   "
log_file = ""
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Variant != defaultVariant {
		t.Fatalf("Variant = %q, want %q", cfg.Variant, defaultVariant)
	}
	if !strings.HasSuffix(cfg.LogFile, filepath.FromSlash("/kiray/kiray.log")) {
		t.Fatalf("LogFile = %q, want default", cfg.LogFile)
	}
}

func TestLoad_UnknownVariantFails(t *testing.T) {
	path := writeConfig(t, `variant = "owner"`)
	_, err := Load(path)
	if !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("Load error = %v, want ErrUnknownVariant", err)
	}
	if !strings.Contains(err.Error(), "owner") {
		t.Fatalf("Load error = %q, want it to name the variant", err.Error())
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := writeConfig(t, `variant = [`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestWithVariant(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := Default()

	got, err := cfg.WithVariant("")
	if err != nil || got.Variant != defaultVariant {
		t.Fatalf("WithVariant(\"\") = %q, %v", got.Variant, err)
	}
	got, err = cfg.WithVariant(" ADMIN")
	if err != nil || got.Variant != "admin" {
		t.Fatalf("WithVariant(ADMIN) = %q, %v", got.Variant, err)
	}
	if _, err := cfg.WithVariant("guest"); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("WithVariant(guest) error = %v, want ErrUnknownVariant", err)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := ExpandPath("   "); err == nil {
		t.Fatalf("ExpandPath returned nil error, want error")
	}
}
