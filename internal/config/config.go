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

// Config captures the user-tunable settings of ptable.
type Config struct {
	Theme       string
	CatalogPath string
	LogPath     string
	Mouse       bool
}

const (
	defaultConfigPath = "~/.config/ptable/config.toml"
	defaultLogPath    = "~/.local/state/ptable/ptable.log"
	defaultTheme      = "Nightfox"

	// LogDisabled as log_path turns logging off.
	LogDisabled = "-"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Theme:   defaultTheme,
		LogPath: mustExpand(defaultLogPath),
		Mouse:   true,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
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
		Theme       string `toml:"theme"`
		CatalogPath string `toml:"catalog_path"`
		LogPath     string `toml:"log_path"`
		Mouse       *bool  `toml:"mouse"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}

	if catalogPath := strings.TrimSpace(raw.CatalogPath); catalogPath != "" {
		expanded, err := expandPath(catalogPath)
		if err != nil {
			return Config{}, fmt.Errorf("catalog_path: %w", err)
		}
		cfg.CatalogPath = expanded
	}

	switch logPath := strings.TrimSpace(raw.LogPath); logPath {
	case "":
	case LogDisabled:
		cfg.LogPath = LogDisabled
	default:
		cfg.LogPath = mustExpand(logPath)
	}

	if raw.Mouse != nil {
		cfg.Mouse = *raw.Mouse
	}

	return cfg, nil
}

// LoggingEnabled reports whether a log file should be opened.
func (c Config) LoggingEnabled() bool {
	return strings.TrimSpace(c.LogPath) != "" && c.LogPath != LogDisabled
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
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
