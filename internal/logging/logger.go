// Package logging wires logrus for the library and the CLI.
package logging

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Logger is the structured logger accepted by pairing strategies.
type Logger = log.FieldLogger

// Init configures the standard logger: text output on stderr with full
// timestamps, at the given level (info when level is not recognised).
func Init(level string) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	l, err := log.ParseLevel(level)
	if err != nil {
		l = log.InfoLevel
	}
	log.SetLevel(l)
}

// L returns the standard logger.
func L() *log.Logger { return log.StandardLogger() }

// NewDefaultLogger returns the standard logger as a Logger.
func NewDefaultLogger() Logger {
	return log.StandardLogger()
}

// Discard returns a logger that drops every entry.
func Discard() Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	l.SetLevel(log.PanicLevel)

	return l
}
