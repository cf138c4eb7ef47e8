package logger

import (
	"log/slog"

	"github.com/natefinch/lumberjack"
)

// NewFileLogger creates a logger writing JSON records to a rotated file.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		LocalTime:  true,
		Compress:   true,
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return &slogLogger{
		logger: slog.New(handler).With(slog.String("service", serviceName)),
	}
}
