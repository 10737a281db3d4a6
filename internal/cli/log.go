package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger builds a charmbracelet/log logger with timestamps, matching
// the teacher pack's internal/cli/log.go formatting choice.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// parseLogLevel maps the --log-level flag value to a charmbracelet/log
// level, defaulting to Info on an unrecognized string.
func parseLogLevel(s string) log.Level {
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel
	}

	return lvl
}
