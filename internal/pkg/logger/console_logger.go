package logger

import (
	"log/slog"
	"os"
)

// NewConsoleLogger creates a logger writing human-readable records to stdout.
func NewConsoleLogger(level string) Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return &slogLogger{
		logger: slog.New(handler).With(slog.String("service", serviceName)),
	}
}
