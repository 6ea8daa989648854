package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// Logger -.
type Logger struct {
	*slog.Logger
}

// New -.
func New(level, env string) *Logger {
	return NewWithWriter(os.Stdout, level, env)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level, env string) *Logger {
	lev := parseLevel(level)

	var handler slog.Handler

	switch env {
	case envDev:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lev})
	case envProd:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = NewPrettyHandler(w, &slog.HandlerOptions{Level: lev})
	}

	return &Logger{slog.New(handler)}
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *Logger {
	return &Logger{slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError
	case "warn":
		return slog.LevelWarn
	case "debug":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// Printf lets the logger stand in for printf-style writers such as gorm's.
func (l *Logger) Printf(msg string, args ...interface{}) {
	l.Debug(strings.TrimSpace(fmt.Sprintf(msg, args...)))
}

// Fatal logs at error level and exits.
func (l *Logger) Fatal(err error) {
	l.Error("fatal", Err(err))
	os.Exit(1)
}

func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
