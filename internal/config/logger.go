package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// LogLevelEnv names the variable holding the log level (debug, info, warn, error).
const LogLevelEnv = "XEVIOUS_LOG_LEVEL"

// NewLogger creates a timestamped logger writing to w. The level comes from
// LogLevelEnv and defaults to info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(GetEnv(LogLevelEnv, "info"))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
	})
}
