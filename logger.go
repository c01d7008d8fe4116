package probability

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultLogger implements Logger using logrus
type DefaultLogger struct {
	entry *logrus.Entry
}

// NewDefaultLogger creates a logger at the given level ("debug", "info", "error", ...).
// An unknown level falls back to DefaultLogLevel.
func NewDefaultLogger(level string) *DefaultLogger {
	l := &DefaultLogger{entry: logrus.NewEntry(logrus.New()).WithField("component", "probability")}
	l.SetLevel(level)
	return l
}

// SetLevel changes the level at runtime. An unknown level falls back to DefaultLogLevel.
func (l *DefaultLogger) SetLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl, _ = logrus.ParseLevel(DefaultLogLevel)
	}
	l.entry.Logger.SetLevel(lvl)
}

// NewLoggerWithOutput creates a logger that writes text records to w
func NewLoggerWithOutput(level string, w io.Writer) *DefaultLogger {
	logger := NewDefaultLogger(level)
	logger.entry.Logger.SetOutput(w)
	logger.entry.Logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return logger
}

// Info logs an info message
func (l *DefaultLogger) Info(msg string, args ...any) { l.entry.Infof(msg, args...) }

// Error logs an error message
func (l *DefaultLogger) Error(msg string, args ...any) { l.entry.Errorf(msg, args...) }

// Debug logs a debug message
func (l *DefaultLogger) Debug(msg string, args ...any) { l.entry.Debugf(msg, args...) }

// SilentLogger implements Logger interface but does not output any logs
// This is useful for testing environments where log output is not desired
type SilentLogger struct{}

// NewSilentLogger creates a new silent logger instance
func NewSilentLogger() *SilentLogger {
	return &SilentLogger{}
}

// Info does nothing (silent)
func (l *SilentLogger) Info(msg string, args ...any) {}

// Error does nothing (silent)
func (l *SilentLogger) Error(msg string, args ...any) {}

// Debug does nothing (silent)
func (l *SilentLogger) Debug(msg string, args ...any) {}
