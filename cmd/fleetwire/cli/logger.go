// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// DebugEnvironmentVariable forces debug-level command logging when set
// to a non-empty value.
const DebugEnvironmentVariable = "FLEETWIRE_DEBUG"

// LoggerOptions selects the command logger's level and handler.
type LoggerOptions struct {
	// Level is the minimum level logged. FLEETWIRE_DEBUG overrides it
	// with slog.LevelDebug.
	Level slog.Level

	// Format is "text", "json", or "auto" (or empty). Auto uses
	// slog.TextHandler when the output is a terminal and
	// slog.JSONHandler otherwise.
	Format string
}

// NewCommandLogger creates a structured logger writing to w. Output to
// a terminal is human-readable text; output to a pipe or file (CI,
// scripts, log collectors) is JSON.
//
// Callers scope the logger with command-specific context via With():
//
//	logger := cli.NewCommandLogger(os.Stderr, options).With(
//	    "command", "validate",
//	    "file", path,
//	)
func NewCommandLogger(w io.Writer, options LoggerOptions) *slog.Logger {
	level := options.Level
	if os.Getenv(DebugEnvironmentVariable) != "" {
		level = slog.LevelDebug
	}
	handlerOptions := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch options.Format {
	case "text":
		handler = slog.NewTextHandler(w, handlerOptions)
	case "json":
		handler = slog.NewJSONHandler(w, handlerOptions)
	default:
		if isTerminal(w) {
			handler = slog.NewTextHandler(w, handlerOptions)
		} else {
			handler = slog.NewJSONHandler(w, handlerOptions)
		}
	}
	return slog.New(handler)
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
