package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadConfigDefaultsWhenUnset(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %q", cfg.LogLevel)
	}
	if cfg.LogFile != "" {
		t.Errorf("expected no log file by default, got %q", cfg.LogFile)
	}
}

func TestLoadConfigFromEnvPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "navdemo.toml")
	content := "log_file = \"/tmp/navdemo.log\"\nlog_level = \"debug\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("NAVDEMO_CONFIG", path)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.LogFile != "/tmp/navdemo.log" {
		t.Errorf("log_file: %q", cfg.LogFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log_level: %q", cfg.LogLevel)
	}
}

func TestLoadConfigMissingEnvPathFails(t *testing.T) {
	t.Setenv("NAVDEMO_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	if _, err := loadConfig(); err == nil {
		t.Error("expected error for explicitly configured missing file")
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	if _, _, err := newLogger(fileConfig{LogLevel: "chatty"}); err == nil {
		t.Error("expected error for unknown log level")
	}
}

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nav.log")
	log, closeFn, err := newLogger(fileConfig{LogFile: path, LogLevel: "debug"})
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	log.Debug().Msg("hello")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected log output in file")
	}
	if log.GetLevel() != zerolog.DebugLevel {
		t.Errorf("level: %v", log.GetLevel())
	}
}
