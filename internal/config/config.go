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

// Config captures Pitchside's settings.
type Config struct {
	// DataPath points at a club dataset; empty uses the bundled one.
	DataPath         string
	PageSize         int
	Theme            string
	KeepPageOnSearch bool
	LogPath          string
}

const (
	defaultConfigPath = "~/.config/pitchside/config.toml"
	defaultLogPath    = "~/.local/state/pitchside/pitchside.log"
	defaultPageSize   = 6
	defaultTheme      = "Nightfox"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		PageSize: defaultPageSize,
		Theme:    defaultTheme,
		LogPath:  mustExpand(defaultLogPath),
	}
}

// DefaultPath returns the config file location used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataPath         string `toml:"data_path"`
		PageSize         int    `toml:"page_size"`
		Theme            string `toml:"theme"`
		KeepPageOnSearch bool   `toml:"keep_page_on_search"`
		LogPath          string `toml:"log_path"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dataPath := strings.TrimSpace(raw.DataPath); dataPath != "" {
		cfg.DataPath, err = ExpandPath(dataPath)
		if err != nil {
			return Config{}, fmt.Errorf("data_path: %w", err)
		}
	}

	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}

	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}

	cfg.KeepPageOnSearch = raw.KeepPageOnSearch

	if logPath := strings.TrimSpace(raw.LogPath); logPath != "" {
		cfg.LogPath = mustExpand(logPath)
	}

	return cfg, nil
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

// ExpandPath resolves a leading "~" and returns an absolute path.
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
