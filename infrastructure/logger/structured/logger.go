// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Provides leveled logging with fields in text or JSON format

package structured

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	coreerrors "feedkit/core/errors"
)

// Logger implements the Logger interface using logrus
type Logger struct {
	log *logrus.Logger
}

// Options configures a Logger
type Options struct {
	// Level is a logrus level name such as "debug" or "info"
	Level string

	// Format is either "text" or "json"
	Format string

	// Output receives the log lines, os.Stderr when nil
	Output io.Writer
}

// NewLogger creates a logrus-backed logger
func NewLogger(opts Options) (*Logger, error) {
	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, &coreerrors.ValidationError{Field: "level", Message: err.Error()}
		}
		level = parsed
	}

	log := logrus.New()
	log.SetLevel(level)

	switch opts.Format {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, &coreerrors.ValidationError{Field: "format", Message: "unknown log format " + opts.Format}
	}

	if opts.Output != nil {
		log.SetOutput(opts.Output)
	} else {
		log.SetOutput(os.Stderr)
	}

	return &Logger{log: log}, nil
}

// Wrap adapts an existing logrus logger
func Wrap(log *logrus.Logger) *Logger {
	return &Logger{log: log}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
