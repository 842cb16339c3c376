package internal

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxCallDepth != 1024 || cfg.LogLevel != "warn" || !cfg.Color || cfg.REPL.Prompt != "> " {
		t.Errorf("Unexpected defaults %+v", cfg)
	}
	if filepath.Base(cfg.REPL.HistoryFile) != ".lox_history" {
		t.Errorf("Unexpected history file %s", cfg.REPL.HistoryFile)
	}
}

func TestDecodeConfig(t *testing.T) {
	cfg := DefaultConfig()
	source := "max_call_depth: 64\nrepl:\n  prompt: \"lox> \"\n"
	if err := decodeConfig(strings.NewReader(source), &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.MaxCallDepth != 64 || cfg.REPL.Prompt != "lox> " {
		t.Errorf("Values were not read: %+v", cfg)
	}
	if cfg.LogLevel != "warn" || !cfg.Color {
		t.Errorf("Missing keys should keep their defaults: %+v", cfg)
	}

	cfg = DefaultConfig()
	if err := decodeConfig(strings.NewReader(""), &cfg); err != nil {
		t.Errorf("An empty file should be valid, found %v", err)
	}

	cfg = DefaultConfig()
	if err := decodeConfig(strings.NewReader("max_depth: 3\n"), &cfg); err == nil {
		t.Error("Expected unknown keys to be rejected")
	}

	cfg = DefaultConfig()
	if err := decodeConfig(strings.NewReader("max_call_depth: 0\n"), &cfg); err == nil {
		t.Error("Expected a non positive depth to be rejected")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lox.yaml")
	if err := os.WriteFile(path, []byte("color: false\nlog_level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Color || cfg.LogLevel != "debug" {
		t.Errorf("Values were not read: %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestNewLogger(t *testing.T) {
	var out bytes.Buffer
	cfg := DefaultConfig()
	cfg.LogLevel = "debug"
	logger := NewLogger(cfg, &out)
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level, found %v", logger.GetLevel())
	}

	cfg.LogLevel = "loud"
	logger = NewLogger(cfg, &out)
	if logger.GetLevel() != logrus.WarnLevel {
		t.Errorf("Expected warn level, found %v", logger.GetLevel())
	}
	if !strings.Contains(out.String(), "unknown log level") {
		t.Errorf("Expected a warning about the level, found %q", out.String())
	}
}
