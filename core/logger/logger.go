package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	instance *slog.Logger
	once     sync.Once
)

func get() *slog.Logger {
	once.Do(func() {
		level := slog.LevelInfo
		switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
		instance = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	})
	return instance
}

func Debug(msg string, args ...any) {
	get().Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	get().Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	get().Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	get().Error(msg, normalize(args)...)
}

// normalize tolerates call sites that pass a bare error (or any odd trailing
// value) instead of key-value pairs
func normalize(args []any) []any {
	if len(args)%2 == 0 {
		return args
	}
	out := make([]any, 0, len(args)+1)
	out = append(out, args[:len(args)-1]...)
	out = append(out, "error", args[len(args)-1])
	return out
}
