// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package console prints colored messages
// on the terminal.
package console

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/muesli/termenv"
)

// Colors of the messages.
const (
	infoColor  = "6" // cyan
	errorColor = "1" // red
)

// A Console writes messages
// to an output and an error stream.
// Colors are only used if the streams are terminals.
type Console struct {
	out   *termenv.Output
	err   *termenv.Output
	quiet bool
}

// New creates a new console.
// If quiet is true,
// informative messages are not printed.
func New(stdout, stderr io.Writer, quiet bool) *Console {
	return &Console{
		out:   termenv.NewOutput(stdout),
		err:   termenv.NewOutput(stderr),
		quiet: quiet,
	}
}

// Infof prints an informative message
// on the output stream.
func (c *Console) Infof(format string, v ...any) {
	if c.quiet {
		return
	}
	s := c.out.String("  " + fmt.Sprintf(format, v...)).Foreground(c.out.Color(infoColor))
	fmt.Fprintln(c.out, s)
}

// Error prints an error message
// on the error stream.
func (c *Console) Error(err error) {
	s := c.err.String(fmt.Sprintf("  ERROR: %v", err)).Foreground(c.err.Color(errorColor))
	fmt.Fprintln(c.err, s)
}

// Logger returns a structured logger
// that writes debug records on the error stream.
// If verbose is false,
// the logger only reports warnings and errors.
func Logger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}
