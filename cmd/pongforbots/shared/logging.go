package shared

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rs/zerolog"
)

// SetupLogger configures zerolog with pretty console output, or JSON when
// jsonFormat is set.
func SetupLogger(level string, jsonFormat bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if jsonFormat {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		logger = zerolog.New(os.Stderr)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return logger.Level(lvl).With().Timestamp().Logger()
}

// SetupConsoleLogger returns a charmbracelet logger on stderr for headless
// clients.
func SetupConsoleLogger(level, prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          prefix,
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// SetupFileLogger logs to path so the terminal stays free for the TUI. The
// returned close function must be called on exit.
func SetupFileLogger(path, prefix string, debug bool) (*log.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          prefix,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f.Close, nil
}

// ZerologToFile returns a zerolog logger writing to the same file as a TUI
// session, for components that log through zerolog.
func ZerologToFile(path string, debug bool) (zerolog.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: f, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
	return logger, f.Close, nil
}
