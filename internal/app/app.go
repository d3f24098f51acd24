package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/five82/pitchside/internal/clubs"
	"github.com/five82/pitchside/internal/config"
	"github.com/five82/pitchside/internal/state"
	"github.com/five82/pitchside/internal/ui"
)

// Options configure the Pitchside application.
type Options struct {
	ConfigPath string
	DataPath   string // overrides data_path from the config
}

// Run boots the Pitchside TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLog := newLogger(cfg.LogPath)
	defer closeLog()

	browser, err := Prepare(cfg, opts, logger)
	if err != nil {
		return err
	}

	if !slices.Contains(ui.ThemeNames(), cfg.Theme) {
		logger.Warn("unknown theme, using default", "theme", cfg.Theme, "available", ui.ThemeNames())
	}

	err = ui.Run(ctx, ui.Options{
		Browser:   browser,
		ThemeName: cfg.Theme,
		Logger:    logger,
	})
	if err != nil {
		logger.Error("ui exited with error", "error", err)
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("exit")
	return nil
}

// Prepare loads the dataset named by opts or cfg and builds the browser the
// UI drives.
func Prepare(cfg config.Config, opts Options, logger *slog.Logger) (*state.Browser, error) {
	dataPath := cfg.DataPath
	if opts.DataPath != "" {
		expanded, err := config.ExpandPath(opts.DataPath)
		if err != nil {
			return nil, fmt.Errorf("resolve data path: %w", err)
		}
		dataPath = expanded
	}

	dataset, err := clubs.Load(dataPath)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	logger.Info("dataset loaded",
		"source", dataset.Source,
		"teams", len(dataset.Teams),
		"malformed", dataset.Malformed())

	policy := state.ResetPage
	if cfg.KeepPageOnSearch {
		policy = state.KeepPage
	}
	logger.Info("view settings",
		"page_size", cfg.PageSize,
		"keep_page_on_search", cfg.KeepPageOnSearch,
		"theme", cfg.Theme)

	return state.NewBrowser(dataset.Teams, cfg.PageSize, policy), nil
}
