// Package logger builds prefixed charmbracelet/log loggers for CLI output.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a prefixed logger inheriting the global level. Timestamps are
// off: this output is user-facing CLI text, not a service log.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}
