// Package logging builds the slog logger used by a report run from the
// command line verbosity.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

const rule = "# ----------------------------------------------------------------------------#\n"

// Config holds logger configuration.
type Config struct {
	// Verbosity is the number of -v flags: 0 errors, 1 warnings, 2 info, 3+ debug.
	Verbosity int
	// Output receives every record. Defaults to os.Stdout.
	Output io.Writer
	// FilePath, when set and Verbosity > 1, also receives every record (appended).
	FilePath string
	// Program is written into the log file banner.
	Program string
	// Now is used for the banner timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Level maps a verbosity count to a slog level.
func Level(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return slog.LevelError
	case verbosity == 1:
		return slog.LevelWarn
	case verbosity == 2:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// Logger is a slog.Logger that may own a log file.
type Logger struct {
	*slog.Logger
	file *os.File
}

// New creates a logger. Close must be called to release the log file.
func New(config Config) (*Logger, error) {
	out := config.Output
	if out == nil {
		out = os.Stdout
	}

	l := &Logger{}

	if config.Verbosity > 1 && config.FilePath != "" {
		f, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}

		now := time.Now
		if config.Now != nil {
			now = config.Now
		}
		if _, err := io.WriteString(f, banner(config.Program, now())); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write log file header: %w", err)
		}

		l.file = f
		out = io.MultiWriter(out, f)
	}

	l.Logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: Level(config.Verbosity),
	}))

	return l, nil
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

// discardHandler mirrors slog.DiscardHandler (Go 1.24+) for older toolchains.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

func banner(program string, at time.Time) string {
	return rule +
		fmt.Sprintf("# Start %s at %s\n", program, at.Format("01/02/2006, 15:04:05")) +
		rule
}
