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

// ColorMode selects when ANSI styling is written.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Format selects how the summary is printed.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config holds the settings read from logsift's config.toml.
type Config struct {
	Theme        string
	Color        ColorMode
	Format       Format
	MaxLineBytes int
}

const (
	defaultConfigPath   = "~/.config/logsift/config.toml"
	defaultColor        = ColorAuto
	defaultFormat       = FormatText
	defaultMaxLineBytes = 1024 * 1024
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{Color: defaultColor, Format: defaultFormat, MaxLineBytes: defaultMaxLineBytes}
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
		Theme        string `toml:"theme"`
		Color        string `toml:"color"`
		Format       string `toml:"format"`
		MaxLineBytes int    `toml:"max_line_bytes"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Theme = strings.TrimSpace(raw.Theme)

	if v := strings.TrimSpace(raw.Color); v != "" {
		if cfg.Color, err = ParseColorMode(v); err != nil {
			return Config{}, fmt.Errorf("invalid config: %w", err)
		}
	}
	if v := strings.TrimSpace(raw.Format); v != "" {
		if cfg.Format, err = ParseFormat(v); err != nil {
			return Config{}, fmt.Errorf("invalid config: %w", err)
		}
	}

	switch {
	case raw.MaxLineBytes < 0:
		return Config{}, fmt.Errorf("invalid config: max_line_bytes must not be negative")
	case raw.MaxLineBytes > 0:
		cfg.MaxLineBytes = raw.MaxLineBytes
	}

	return cfg, nil
}

// ParseColorMode validates a --color or config value.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("color %q: want auto, always or never", s)
	}
}

// ParseFormat validates a --format or config value.
func ParseFormat(s string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(s))); format {
	case FormatText, FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("format %q: want text or json", s)
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

// ExpandPath resolves a leading ~ to the home directory and returns an
// absolute path.
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
