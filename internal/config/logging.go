package config

import (
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel overrides the configured log level when set.
const EnvLogLevel = "SISSIGEN_LOG_LEVEL"

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var logLevels = map[string]LogLevel{
	"debug":   LogLevelDebug,
	"info":    LogLevelInfo,
	"warn":    LogLevelWarn,
	"warning": LogLevelWarn,
	"error":   LogLevelError,
}

// NormalizeLogLevel case-folds raw and maps unknown values to info. ok is
// false when raw was non-empty and unrecognized.
func NormalizeLogLevel(raw string) (LogLevel, bool) {
	return normalize(logLevels, raw, LogLevelInfo)
}

// Slog converts the level to its slog equivalent.
func (l LogLevel) Slog() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

var logFormats = map[string]LogFormat{
	"json": LogFormatJSON,
	"text": LogFormatText,
}

// NormalizeLogFormat case-folds raw and maps unknown values to text.
func NormalizeLogFormat(raw string) (LogFormat, bool) {
	return normalize(logFormats, raw, LogFormatText)
}

// ResolveLogLevel applies the precedence verbose flag, then EnvLogLevel,
// then the configured level.
func ResolveLogLevel(verbose bool, configured LogLevel) LogLevel {
	if verbose {
		return LogLevelDebug
	}
	if raw := os.Getenv(EnvLogLevel); raw != "" {
		if lvl, ok := NormalizeLogLevel(raw); ok {
			return lvl
		}
	}
	if configured == "" {
		return LogLevelInfo
	}
	return configured
}

func normalize[T any](values map[string]T, raw string, def T) (T, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return def, true
	}
	v, ok := values[key]
	if !ok {
		return def, false
	}
	return v, true
}
