package main

import (
	"fmt"
	"io"
)

// logger writes "[tinygrep] ..." diagnostics when verbose mode is on.
type logger struct {
	enabled bool
	out     io.Writer
}

func newLogger(enabled bool, out io.Writer) *logger {
	return &logger{enabled: enabled, out: out}
}

// Log prints a formatted message if verbose mode is enabled.
func (l *logger) Log(format string, args ...any) {
	if l.enabled {
		fmt.Fprintf(l.out, "[tinygrep] "+format+"\n", args...)
	}
}
