// Package logging configures the global zerolog logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New returns a logger writing to w. Verbose enables debug messages,
// structured switches from the human readable console output to JSON lines.
func New(w io.Writer, verbose, structured bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := w
	if !structured {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Setup replaces the global logger and returns it.
func Setup(verbose, structured bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = New(os.Stderr, verbose, structured)
	return log.Logger
}
