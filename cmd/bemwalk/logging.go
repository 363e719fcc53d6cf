// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"

	"github.com/bemwalk/bemwalk/internal/config"
)

// newLogger returns a slog.Logger backed by a charmbracelet/log handler on w.
// --verbose and ui.verbose force debug level; otherwise ui.log_level applies.
func newLogger(w io.Writer, cfg *config.Config, verbose bool) *slog.Logger {
	level := log.InfoLevel
	switch {
	case verbose || cfg.UI.Verbose:
		level = log.DebugLevel
	case cfg.UI.LogLevel != "":
		if parsed, err := log.ParseLevel(string(cfg.UI.LogLevel)); err == nil {
			level = parsed
		}
	}

	handler := log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
	return slog.New(handler)
}
