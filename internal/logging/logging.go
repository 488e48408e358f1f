// Package logging builds the logrus loggers shared by the resolver, the
// controller and the CLI.
package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Field names used across components.
const (
	FieldComponent = "component"
	FieldRaw       = "raw"
	FieldLang      = "lang"
	FieldKey       = "key"
	FieldName      = "name"
	FieldBase      = "base"
)

// Options describes logger construction parameters.
type Options struct {
	Debug  bool
	Format string // "text" (default) or "json"
}

// New constructs a logger writing to w.
func New(w io.Writer, opts Options) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)

	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
			DisableQuote:     true,
		})
	}

	SetDebug(logger, opts.Debug)
	return logger
}

// NewNop returns a logger that discards everything.
func NewNop() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

// SetDebug toggles debug output on an existing logger.
func SetDebug(logger *logrus.Logger, debug bool) {
	if logger == nil {
		return
	}
	if debug {
		logger.SetLevel(logrus.DebugLevel)
		return
	}
	logger.SetLevel(logrus.InfoLevel)
}

// Component returns an entry tagged with the component name.
func Component(logger logrus.FieldLogger, name string) logrus.FieldLogger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.WithField(FieldComponent, name)
}
