// ABOUTME: Colored structured logging setup with tint on top of log/slog.
// ABOUTME: Level comes from --log-level, then LOG_LEVEL, then the config file.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// DefaultLevel keeps CLI output quiet unless asked otherwise.
const DefaultLevel = slog.LevelWarn

// Setup configures colored logging to stderr at the first level set among
// the flag value, the LOG_LEVEL env var, and the config value.
func Setup(flagLevel, configLevel string, noColor bool) {
	SetupWithLevel(os.Stderr, Resolve(flagLevel, configLevel), noColor)
}

// SetupWithLevel configures colored logging to w at the given level.
func SetupWithLevel(w io.Writer, level slog.Level, noColor bool) {
	slog.SetDefault(slog.New(New(w, level, noColor)))
}

// New returns a tint handler writing to w.
func New(w io.Writer, level slog.Level, noColor bool) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	})
}

// Resolve picks the effective level.
func Resolve(flagLevel, configLevel string) slog.Level {
	for _, s := range []string{flagLevel, os.Getenv("LOG_LEVEL"), configLevel} {
		if level, ok := ParseLevel(s); ok {
			return level
		}
	}
	return DefaultLevel
}

// ParseLevel maps debug, info, warn, or error to a slog level.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}
