package infrastructure

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"wristweather.app/internal/ports"
)

// SlogLoggerAdapter implements the Logger port using slog.
// The level can be lowered to debug at runtime through SetDebug.
type SlogLoggerAdapter struct {
	logger    *slog.Logger
	level     *slog.LevelVar
	baseLevel slog.Level
}

// LoggerParams holds parameters for creating the slog logger
type LoggerParams struct {
	Level  string
	Format string
	Output io.Writer
}

// NewSlogLoggerAdapter creates a logger writing JSON, or colored text when Format is "text"
func NewSlogLoggerAdapter(params LoggerParams) *SlogLoggerAdapter {
	out := params.Output
	if out == nil {
		out = os.Stdout
	}

	base := ParseLevel(params.Level)
	level := new(slog.LevelVar)
	level.Set(base)

	var handler slog.Handler
	if strings.EqualFold(params.Format, "text") {
		handler = tint.NewHandler(out, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	}

	return &SlogLoggerAdapter{
		logger:    slog.New(handler).With("app", "wristweather"),
		level:     level,
		baseLevel: base,
	}
}

// ParseLevel maps a level name to a slog level, defaulting to info
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Slog exposes the underlying logger for libraries that take a *slog.Logger
func (l *SlogLoggerAdapter) Slog() *slog.Logger {
	return l.logger
}

// SetDebug implements ports.LogLevelController
func (l *SlogLoggerAdapter) SetDebug(enabled bool) {
	if enabled {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(l.baseLevel)
}

// Debug logs a debug message
func (l *SlogLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	l.logger.Debug(msg, toArgs(fields)...)
}

// Info logs an info message
func (l *SlogLoggerAdapter) Info(msg string, fields ...ports.Field) {
	l.logger.Info(msg, toArgs(fields)...)
}

// Warn logs a warning message
func (l *SlogLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	l.logger.Warn(msg, toArgs(fields)...)
}

// Error logs an error message
func (l *SlogLoggerAdapter) Error(msg string, fields ...ports.Field) {
	l.logger.Error(msg, toArgs(fields)...)
}

func toArgs(fields []ports.Field) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for _, field := range fields {
		if err, ok := field.Value.(error); ok {
			args = append(args, field.Key, err.Error())
			continue
		}
		args = append(args, field.Key, field.Value)
	}
	return args
}
