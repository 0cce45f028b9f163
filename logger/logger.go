package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var std = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// Config selects the sink format and minimum level.
type Config struct {
	Level  string
	Format string
	Output io.Writer
}

// Init replaces the package logger.
func Init(cfg Config) error {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "text":
		handler = slog.NewTextHandler(out, opts)
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	default:
		return fmt.Errorf("invalid log format: %q (allowed: text, json)", cfg.Format)
	}

	std = slog.New(handler)
	slog.SetDefault(std)
	return nil
}

// Logger returns the structured logger behind the package functions.
func Logger() *slog.Logger {
	return std
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %q (allowed: debug, info, warn, error)", s)
	}
}

func Info(message string, args ...interface{}) {
	std.Info(fmt.Sprintf(message, args...))
}

func Warn(message string, args ...interface{}) {
	std.Warn(fmt.Sprintf(message, args...))
}

func Error(message string, args ...interface{}) {
	std.Error(fmt.Sprintf(message, args...))
}

func Debug(message string, args ...interface{}) {
	std.Debug(fmt.Sprintf(message, args...))
}
