// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Supports level filtering, text or JSON output and rotating log files via lumberjack

package structured

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a Logger
type Options struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is text or json
	Format string

	// File, when set, receives log output through a rotating writer instead of stderr
	File string
}

// Logger implements the Logger interface using logrus
type Logger struct {
	entry  *logrus.Logger
	closer io.Closer
}

// NewLogger creates a logger from the given options
func NewLogger(opts Options) (*Logger, error) {
	l := logrus.New()

	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	l.SetLevel(level)

	switch strings.ToLower(opts.Format) {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	logger := &Logger{entry: l}

	if opts.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, //days
			Compress:   true,
		}
		l.SetOutput(rotating)
		logger.closer = rotating
	} else {
		l.SetOutput(os.Stderr)
	}

	return logger, nil
}

// NewWithWriter creates a logger writing to w. Used by tests and tools.
func NewWithWriter(w io.Writer, level string, format string) (*Logger, error) {
	logger, err := NewLogger(Options{Level: level, Format: format})
	if err != nil {
		return nil, err
	}
	logger.entry.SetOutput(w)
	return logger, nil
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Error(msg)
}

// Close releases the rotating log file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func parseLevel(level string) (logrus.Level, error) {
	if level == "" {
		return logrus.InfoLevel, nil
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid log level: %w", err)
	}
	return parsed, nil
}
