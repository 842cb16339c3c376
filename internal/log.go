package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the logger the session and the CLI write to.
// An unknown level falls back to warn.
func NewLogger(cfg Config, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    !cfg.Color,
	})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
		logger.WithField("log_level", cfg.LogLevel).Warn("unknown log level, using warn")
	}
	logger.SetLevel(level)
	return logger
}
