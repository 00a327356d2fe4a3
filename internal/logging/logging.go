// Package logging configures the global zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures log output and level. Production writes JSON lines;
// every other environment writes human-readable console output.
func Setup(w io.Writer, production bool, level string) {
	if w == nil {
		w = os.Stderr
	}

	if production {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
	}

	lvl, known := ParseLevel(level, production)
	zerolog.SetGlobalLevel(lvl)
	if !known {
		log.Warn().Msgf("Unknown log level '%s', defaulting to info.", level)
	}
}

// ParseLevel maps a level name to a zerolog level. An empty name defaults
// to warn in production and info elsewhere; unknown names map to info and
// report false.
func ParseLevel(level string, production bool) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled":
		return zerolog.Disabled, true
	case "":
		if production {
			return zerolog.WarnLevel, true
		}
		return zerolog.InfoLevel, true
	default:
		return zerolog.InfoLevel, false
	}
}
