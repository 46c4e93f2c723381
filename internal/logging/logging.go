// SPDX-License-Identifier: EPL-2.0

// Package logging defines the logger accepted by the library packages.
// *github.com/labstack/gommon/log.Logger satisfies it.
package logging

import (
	"io"

	"github.com/labstack/gommon/log"
)

// Logger is the subset of the gommon logger the packages use.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// New returns a gommon logger with the given prefix writing to w at level.
func New(prefix string, w io.Writer, level log.Lvl) *log.Logger {
	l := log.New(prefix)
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetHeader("${time_rfc3339} ${level} ${prefix}")
	return l
}

// Discard returns a logger that drops everything.
func Discard() Logger {
	return New("", io.Discard, log.OFF)
}

// Or returns l, or a discarding logger when l is nil.
func Or(l Logger) Logger {
	if l == nil {
		return Discard()
	}
	return l
}

// ParseLevel maps a level name to a gommon level. Unknown names yield
// INFO.
func ParseLevel(name string) log.Lvl {
	switch name {
	case "debug", "DEBUG":
		return log.DEBUG
	case "warn", "WARN", "warning":
		return log.WARN
	case "error", "ERROR":
		return log.ERROR
	case "off", "OFF":
		return log.OFF
	}
	return log.INFO
}
