package internal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultMaxCallDepth = 1024

// Config holds the interpreter settings read from a YAML file
type Config struct {
	MaxCallDepth int        `yaml:"max_call_depth"`
	LogLevel     string     `yaml:"log_level"`
	Color        bool       `yaml:"color"`
	REPL         REPLConfig `yaml:"repl"`
}

// REPLConfig configures the interactive prompt
type REPLConfig struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
}

// DefaultConfig returns the settings used when no file is given
func DefaultConfig() Config {
	history := ".lox_history"
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, history)
	}
	return Config{
		MaxCallDepth: defaultMaxCallDepth,
		LogLevel:     "warn",
		Color:        true,
		REPL: REPLConfig{
			Prompt:      "> ",
			HistoryFile: history,
		},
	}
}

// LoadConfig reads path on top of DefaultConfig. Unknown keys are an error,
// an empty path or an empty file give the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	if err := decodeConfig(file, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func decodeConfig(r io.Reader, cfg *Config) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return cfg.validate()
}

func (c Config) validate() error {
	if c.MaxCallDepth <= 0 {
		return fmt.Errorf("max_call_depth must be positive, got %d", c.MaxCallDepth)
	}
	return nil
}
