// Package logging builds the logrus loggers used across boxedit.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config configures a logger.
type Config struct {
	// Level is the minimum level: debug, info, warn or error.
	Level string
	// File is the log file path. Empty logs to Output.
	File string
	// Output is used when File is empty. Defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns info-level logging to stderr.
func DefaultConfig() Config {
	return Config{Level: "info"}
}

// ParseLevel parses a level name. Unknown names select info.
func ParseLevel(s string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// New creates a logger from cfg. The returned close function releases the
// log file, if one was opened.
func New(cfg Config) (*logrus.Logger, func() error, error) {
	l := logrus.New()
	l.SetLevel(ParseLevel(cfg.Level))
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   cfg.File != "",
		TimestampFormat: "2006-01-02T15:04:05.000",
	})

	closer := func() error { return nil }
	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closer, fmt.Errorf("open log file: %w", err)
		}
		l.SetOutput(f)
		closer = f.Close
	case cfg.Output != nil:
		l.SetOutput(cfg.Output)
	default:
		l.SetOutput(os.Stderr)
	}
	return l, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// WithComponent tags log entries with the component name.
func WithComponent(l logrus.FieldLogger, name string) logrus.FieldLogger {
	if l == nil {
		l = Discard()
	}
	return l.WithField("component", name)
}
