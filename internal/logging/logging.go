// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ParseLevel maps a config level name to a zerolog level, defaulting to info.
func ParseLevel(name string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// SetupConsole logs human-readable lines to w (stderr for CLI commands).
func SetupConsole(w io.Writer, level zerolog.Level) {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}

// SetupFile logs JSON lines to path. The TUI owns the terminal, so it logs
// here instead. The returned closer flushes and closes the file.
func SetupFile(path string, level zerolog.Level) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}

	//nolint:gosec // log path is configured by the local user
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(f).Level(level).With().Timestamp().Logger()
	return f, nil
}

// Discard silences all logging.
func Discard() {
	log.Logger = zerolog.Nop()
}
