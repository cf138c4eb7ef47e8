package logger

import (
	"log/slog"
	"os"
)

// Logger defines the logging interface used across the service.
type Logger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}

// serviceName tags every record so aggregated logs stay attributable.
const serviceName = "plain_rsa_service"

// slogLogger adapts a slog.Logger to the Logger interface. The console and
// file loggers share it and differ only in their handler.
type slogLogger struct {
	logger *slog.Logger
}

// Info logs an informational message.
func (l *slogLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

// Warn logs a warning message.
func (l *slogLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

// Error logs an error message.
func (l *slogLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal logs a fatal message and exits.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
	os.Exit(1)
}

// Panic logs a panic message and panics with it.
func (l *slogLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Error(msg)
	panic(msg)
}
