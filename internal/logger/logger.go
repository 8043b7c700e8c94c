// Package logger holds the shared structured logger.
package logger

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the shared logger. Level comes from LOG_LEVEL (debug|info|warn|error).
var Logger = New(os.Getenv("LOG_LEVEL"))

// New creates a logger writing to stderr at the given level.
func New(level string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           ParseLevel(level),
		ReportTimestamp: true,
		Prefix:          "pathdefense",
	})
}

// ParseLevel maps a level name to a log level, defaulting to info.
func ParseLevel(s string) log.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
