// Package logging configures the process-wide slog logger with a compact
// console format: [LEVEL] HH:MM:SS message key=value.
package logging

import (
	"log/slog"
	"os"
)

// Setup installs the compact handler as the slog default. Verbose enables
// debug output.
func Setup(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := NewCompactHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
