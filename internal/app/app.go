package app

import (
	"context"
	"fmt"
	"io"

	"github.com/betkiray/kiray/internal/config"
	"github.com/betkiray/kiray/internal/logging"
	"github.com/betkiray/kiray/internal/nav"
	"github.com/betkiray/kiray/internal/prefs"
	"github.com/betkiray/kiray/internal/tabbar"
	"github.com/betkiray/kiray/internal/ui"
)

// Options configure the kiray application.
type Options struct {
	ConfigPath string // empty uses ~/.config/kiray/config.toml
	PrefsPath  string // empty uses ~/.config/kiray/prefs.toml
	Variant    string // overrides the configured variant when set
}

// Run boots the kiray TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	uiOpts, closer, err := setup(opts)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger := uiOpts.Logger
	logger.Info("starting", "variant", uiOpts.Variant.Name, "theme", uiOpts.ThemeName)
	if err := ui.Run(ctx, uiOpts); err != nil {
		logger.Error("ui exited", "err", err)
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("stopped")
	return nil
}

// setup loads configuration and preferences and builds everything the UI
// needs. The closer releases the log file.
func setup(opts Options) (ui.Options, io.Closer, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return ui.Options{}, nil, fmt.Errorf("load config: %w", err)
	}
	cfg, err = cfg.WithVariant(opts.Variant)
	if err != nil {
		return ui.Options{}, nil, err
	}

	variant, ok := tabbar.VariantByName(cfg.Variant)
	if !ok {
		return ui.Options{}, nil, fmt.Errorf("%w %q", config.ErrUnknownVariant, cfg.Variant)
	}

	logger, closer, err := logging.New(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return ui.Options{}, nil, fmt.Errorf("init logging: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		logger.Warn("load prefs", "path", prefsPath, "err", err)
	}

	navigator, err := nav.New(ui.ScreensFor(variant.Name)...)
	if err != nil {
		_ = closer.Close()
		return ui.Options{}, nil, fmt.Errorf("build navigator: %w", err)
	}

	return ui.Options{
		Navigator: navigator,
		Variant:   variant,
		ThemeName: ui.ThemeForPref(userPrefs.Theme),
		PrefsPath: prefsPath,
		Logger:    logger,
	}, closer, nil
}
