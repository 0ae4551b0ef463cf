// Package logger provides prefixed charmbracelet/log loggers for the server and CLI surfaces.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a prefixed logger on stderr that respects the global level.
// Stdout is reserved for the IPC stream, so logs must never land there.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}
