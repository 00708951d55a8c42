package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog with the printf-style helpers used across eventdesk
type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
}

// Log is the global logger instance
var Log = New(os.Stdout, slog.LevelInfo)

// New creates a text logger writing to w at the given level
func New(w io.Writer, level slog.Level) *Logger {
	lv := new(slog.LevelVar)
	lv.Set(level)
	return &Logger{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv})),
		level:  lv,
	}
}

// SetLevel changes the minimum level emitted
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// With returns a logger that adds the given key/value pairs to every record
func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.logger.With(args...), level: l.level}
}

// Infof logs an info level message with formatting
func (l *Logger) Infof(format string, args ...any) {
	l.logger.Info(sprintf(format, args...))
}

// Warnf logs a warning level message with formatting
func (l *Logger) Warnf(format string, args ...any) {
	l.logger.Warn(sprintf(format, args...))
}

// Errorf logs an error level message with formatting
func (l *Logger) Errorf(format string, args ...any) {
	l.logger.Error(sprintf(format, args...))
}

// Debugf logs a debug level message with formatting
func (l *Logger) Debugf(format string, args ...any) {
	l.logger.Debug(sprintf(format, args...))
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
// Unknown values fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
