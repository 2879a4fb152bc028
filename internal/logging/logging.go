// SPDX-License-Identifier: MIT

// Package logging builds zerolog loggers from configuration.
package logging

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/tollnet/config"
)

// Logger is the zerolog logger threaded through the pipeline.
type Logger = zerolog.Logger

// New returns a logger writing to w at the configured level. Unknown
// levels fall back to info; Pretty switches to the console writer.
func New(cfg config.LoggingConfig, w io.Writer) Logger {
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
