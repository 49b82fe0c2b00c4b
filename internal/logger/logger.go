// Package logger configures the process-wide zerolog logger.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Usable before Init so tests and early startup code can log.
var log = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init sets up the global logger. Pretty output is meant for local
// development; production emits JSON lines.
func Init(level string, pretty bool) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	zerolog.TimeFieldFormat = time.RFC3339

	if pretty {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	} else {
		log = zerolog.New(os.Stderr)
	}
	log = log.With().Timestamp().Logger()
}

// Get returns the configured logger.
func Get() *zerolog.Logger {
	return &log
}
