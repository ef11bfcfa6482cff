package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Logger writes JSON records tagged with service, hostname, action and request ID
type Logger struct {
	service  string
	hostname string
	handler  *slog.Logger
}

// NewWithWriter creates a logger writing to w at the given minimum level
func NewWithWriter(service string, w io.Writer, level slog.Level) *Logger {
	hostname, _ := os.Hostname()

	handler := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))

	return &Logger{
		service:  service,
		hostname: hostname,
		handler:  handler,
	}
}

// ParseLevel maps debug, info, warn and error to slog levels
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// GenerateRequestID returns a fresh random request ID
func GenerateRequestID() string {
	return uuid.New().String()
}

func (l *Logger) Info(action, message, requestID string, fields map[string]interface{}) {
	l.log(slog.LevelInfo, action, message, requestID, fields)
}

func (l *Logger) Debug(action, message, requestID string, fields map[string]interface{}) {
	l.log(slog.LevelDebug, action, message, requestID, fields)
}

func (l *Logger) Warn(action, message, requestID string, fields map[string]interface{}) {
	l.log(slog.LevelWarn, action, message, requestID, fields)
}

// Error logs at error level; err may be nil for failures without a cause
func (l *Logger) Error(action, message, requestID string, err error, fields map[string]interface{}) {
	attrs := l.attrs(action, requestID, fields)
	if err != nil {
		attrs = append(attrs, slog.Group("error",
			slog.String("msg", err.Error()),
			slog.String("stack", string(debug.Stack())),
		))
	}
	l.handler.LogAttrs(context.TODO(), slog.LevelError, message, attrs...)
}

func (l *Logger) log(level slog.Level, action, message, requestID string, fields map[string]interface{}) {
	l.handler.LogAttrs(context.TODO(), level, message, l.attrs(action, requestID, fields)...)
}

func (l *Logger) attrs(action, requestID string, fields map[string]interface{}) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		slog.String("service", l.service),
		slog.String("hostname", l.hostname),
		slog.String("action", action),
		slog.String("request_id", requestID),
	}
	for key, value := range fields {
		attrs = append(attrs, slog.Any(key, value))
	}
	return attrs
}
