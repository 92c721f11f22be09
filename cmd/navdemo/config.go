package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// navdemo config.toml key mapping. All keys are optional; a missing config
// file means defaults.
type fileConfig struct {
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`
}

// loadConfig reads NAVDEMO_CONFIG, falling back to ./navdemo.toml if present.
func loadConfig() (fileConfig, error) {
	cfg := fileConfig{LogLevel: "info"}
	path := os.Getenv("NAVDEMO_CONFIG")
	if path == "" {
		path = "navdemo.toml"
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

// newLogger builds the app logger. A TUI owns the terminal, so logs go to the
// configured file or nowhere.
func newLogger(cfg fileConfig) (zerolog.Logger, func() error, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("log_level %q: %w", cfg.LogLevel, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() error { return nil }
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	log := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return log, closeFn, nil
}
