package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the root logger. Components derive child loggers
// from it with their own tag fields; the level is set on the logger
// itself rather than globally so tests can run quiet ones alongside.
func NewLogger(cfg LoggerConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
