package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/cristianadrielbraun/qrstudio/internal/config"
)

// New builds the root logger. Console output is for humans, json for
// everything else.
func New(conf *config.Config) zerolog.Logger {
	return NewWithWriter(conf, os.Stderr)
}

func NewWithWriter(conf *config.Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil || conf.Logger.Level == "" {
		level = zerolog.InfoLevel
	}

	out := w
	if conf.Logger.Format == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("app", conf.AppName).
		Logger()
}
