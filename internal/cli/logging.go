// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"io"
	"log"
)

// logger writes tagged progress lines. Nothing is written unless verbose.
type logger struct {
	l       *log.Logger
	verbose bool
}

func newLogger(w io.Writer, verbose bool) *logger {
	return &logger{l: log.New(w, "", log.LstdFlags), verbose: verbose}
}

func (l *logger) Debugf(format string, args ...any) {
	if l.verbose {
		l.l.Printf("[DEBUG] "+format, args...)
	}
}

func (l *logger) Infof(format string, args ...any) {
	if l.verbose {
		l.l.Printf("[INFO] "+format, args...)
	}
}
