package logger

import (
	"log/slog"
	"os"
)

// Logger emits structured JSON log lines tagged with the service name.
type Logger struct {
	service string
	handler *slog.Logger
}

// NewLogger returns a JSON logger for the given service.
func NewLogger(service string) *Logger {
	hostname, _ := os.Hostname()

	handler := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})).With(
		slog.String("service", service),
		slog.String("hostname", hostname),
	)

	return &Logger{service: service, handler: handler}
}

func (l *Logger) Info(action, message string, args ...any) {
	l.handler.Info(message, append([]any{slog.String("action", action)}, args...)...)
}

func (l *Logger) Debug(action, message string, args ...any) {
	l.handler.Debug(message, append([]any{slog.String("action", action)}, args...)...)
}

func (l *Logger) Error(action, message string, err error, args ...any) {
	attrs := []any{slog.String("action", action)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	l.handler.Error(message, append(attrs, args...)...)
}
