// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Setup sets the standard logger's level and formatter. format is "json"
// or "text"; anything else is text.
func Setup(level, format string) error {
	return configure(log.StandardLogger(), os.Stderr, level, format)
}

func configure(l *log.Logger, out io.Writer, level, format string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	l.SetOutput(out)
	l.SetLevel(lvl)
	if format == "json" {
		l.SetFormatter(&log.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	} else {
		l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}
