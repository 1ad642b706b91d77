// Package log структурированные логи для бинарников lens-finder.
// Обёртка над slog: текст при разработке, JSON при GO_ENV=production.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	logger *slog.Logger
	mu     sync.Mutex
)

// ParseLevel переводит "debug", "info", "warn" и "error" в уровни slog.
// Неизвестное значение даёт info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New создаёт логгер, пишущий в w с заданным уровнем.
func New(w io.Writer, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if os.Getenv("GO_ENV") == "production" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Init задаёт глобальный логгер и делает его логгером slog по умолчанию.
func Init(level string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	logger = New(os.Stderr, level)
	slog.SetDefault(logger)
	return logger
}

// L возвращает глобальный логгер, при первом вызове создаёт его с уровнем info.
func L() *slog.Logger {
	mu.Lock()
	l := logger
	mu.Unlock()

	if l == nil {
		return Init("info")
	}
	return l
}

// Debug пишет с уровнем debug.
func Debug(msg string, args ...any) {
	L().Debug(msg, args...)
}

// Info пишет с уровнем info.
func Info(msg string, args ...any) {
	L().Info(msg, args...)
}

// Warn пишет с уровнем warn.
func Warn(msg string, args ...any) {
	L().Warn(msg, args...)
}

// Error пишет с уровнем error.
func Error(msg string, args ...any) {
	L().Error(msg, args...)
}

// With возвращает логгер с добавленными атрибутами.
func With(args ...any) *slog.Logger {
	return L().With(args...)
}
