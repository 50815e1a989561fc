// Package config loads the optional config.toml from the saffron data
// directory. A missing file yields the defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the persisted application configuration.
type Config struct {
	TimeoutSeconds  int    `toml:"timeout_seconds"`
	FollowRedirects bool   `toml:"follow_redirects"`
	UserAgent       string `toml:"user_agent"`
	HistoryLimit    int    `toml:"history_limit"`
	Color           string `toml:"color"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		TimeoutSeconds:  30,
		FollowRedirects: true,
		HistoryLimit:    100,
		Color:           "auto",
	}
}

// Load reads the config file at path. A missing file is not an error;
// unset fields keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	if cfg.TimeoutSeconds <= 0 {
		return cfg, fmt.Errorf("timeout_seconds must be positive, got %d", cfg.TimeoutSeconds)
	}
	if cfg.HistoryLimit < 0 {
		return cfg, fmt.Errorf("history_limit must not be negative, got %d", cfg.HistoryLimit)
	}
	switch cfg.Color {
	case "auto", "on", "off":
	default:
		return cfg, fmt.Errorf("color must be auto, on, or off, got %q", cfg.Color)
	}

	return cfg, nil
}
